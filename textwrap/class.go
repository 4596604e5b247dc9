package textwrap

// Class is the line-break class of a single byte, following the ASCII
// subset of the Unicode Line Breaking Algorithm (UAX #14).
type Class uint8

// The classes, in the order the pair-action table expects them.
const (
	OpenPunctuation Class = iota // OP
	ClosePunctuation             // CL
	CloseParenthesis             // CP
	Quotation                    // QU
	Exclamation                  // EX
	SymbolAllowingBreakAfter     // SY
	InfixNumericSeparator        // IS
	PrefixNumeric                // PR
	PostfixNumeric               // PO
	Numeric                      // NU
	Alphabetic                   // AL
	Hyphen                       // HY
	BreakAfter                   // BA
	CombiningMark                // CM
	WordJoiner                   // WJ
	MandatoryBreak               // MB
	Space                        // SP
)

// asciiClasses maps each of the 128 ASCII bytes to its break class.
var asciiClasses = [128]Class{
	CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark,
	CombiningMark, BreakAfter, MandatoryBreak, MandatoryBreak, MandatoryBreak, Space, CombiningMark, CombiningMark,
	CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark,
	CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark, CombiningMark,
	Space, Exclamation, Quotation, Alphabetic, PrefixNumeric, PostfixNumeric, Alphabetic, Quotation,
	OpenPunctuation, CloseParenthesis, Alphabetic, PrefixNumeric, InfixNumericSeparator, Hyphen, InfixNumericSeparator, SymbolAllowingBreakAfter,
	Numeric, Numeric, Numeric, Numeric, Numeric, Numeric, Numeric, Numeric,
	Numeric, Numeric, InfixNumericSeparator, InfixNumericSeparator, Alphabetic, Alphabetic, Alphabetic, Exclamation,
	Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, OpenPunctuation, PrefixNumeric, CloseParenthesis, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic, Alphabetic,
	Alphabetic, Alphabetic, Alphabetic, OpenPunctuation, BreakAfter, ClosePunctuation, Alphabetic, CombiningMark,
}

// Classify returns the line-break class of b. Bytes outside the ASCII
// range classify as Alphabetic; no multi-byte sequences are recognized.
func Classify(b byte) Class {
	if b < 128 {
		return asciiClasses[b]
	}
	return Alphabetic
}
