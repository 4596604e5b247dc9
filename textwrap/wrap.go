package textwrap

import "strings"

// action is the break opportunity between a pair of adjacent classes.
type action uint8

const (
	directBreak        action = iota // break always allowed
	indirectBreak                    // break allowed only after a space
	prohibitedBreak                  // break never allowed
	combiningIndirect                // combining mark, indirect
	combiningProhibited              // combining mark, prohibited
)

// pairTable[before][after] gives the break action between two classes.
// Rows and columns run OP..WJ; MandatoryBreak and Space are handled by
// the scanner itself.
var pairTable = [15][15]action{
	//          OP                   CL               CP               QU             EX               SY               IS               PR             PO             NU             AL             HY             BA             CM                 WJ
	/* OP */ {prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, combiningProhibited, prohibitedBreak},
	/* CL */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, indirectBreak, indirectBreak, directBreak, directBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* CP */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* QU */ {prohibitedBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* EX */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, directBreak, directBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* SY */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, directBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* IS */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* PR */ {indirectBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* PO */ {indirectBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* NU */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* AL */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* HY */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, directBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* BA */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, directBreak, directBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* CM */ {directBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, directBreak, directBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
	/* WJ */ {indirectBreak, prohibitedBreak, prohibitedBreak, indirectBreak, prohibitedBreak, prohibitedBreak, prohibitedBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, indirectBreak, combiningIndirect, prohibitedBreak},
}

// Wrap splits text into lines no wider than width. Paragraphs (separated
// by '\n') wrap independently; an empty paragraph yields one empty line.
// Wrap is stateless: the same input always produces the same output.
//
// A line wider than width is emitted only when no break opportunity
// exists that would make it shorter.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for {
		paragraph := text
		rest := ""
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			paragraph, rest = text[:i], text[i+1:]
		}

		if paragraph == "" {
			lines = append(lines, "")
		} else {
			lines = append(lines, wrapParagraph(paragraph, width)...)
		}

		if len(paragraph) == len(text) {
			break
		}
		text = rest
	}
	return lines
}

// wrapParagraph chooses line boundaries among the paragraph's break
// opportunities by minimizing the summed squared shortfall of every
// line but the last.
func wrapParagraph(line string, width int) []string {
	offsets := []int{0}
	for b := 0; b < len(line); {
		b = nextBreak(line, b)
		offsets = append(offsets, b)
	}

	count := len(offsets) - 1

	const inf = int(^uint(0) >> 1)
	minima := make([]int, count+1)
	breaks := make([]int, count+1)
	for j := 1; j <= count; j++ {
		minima[j] = inf
	}

	for i := 0; i < count; i++ {
		if minima[i] == inf {
			continue
		}
		for j := i + 1; j <= count; j++ {
			w := offsets[j] - offsets[i]

			if w > width {
				// No shorter segment exists from this offset, so the
				// first break is taken regardless of width.
				if j == i+1 && minima[i] < minima[j] {
					minima[j] = minima[i]
					breaks[j] = i
				}
				break
			}

			for w > 0 && isSpace(line[offsets[i]+w-1]) {
				w--
			}

			cost := minima[i]
			if j < count { // the last line may be shorter
				cost += (width - w) * (width - w)
			}

			if cost < minima[j] {
				minima[j] = cost
				breaks[j] = i
			}
		}
	}

	var result []string
	for j := count; j > 0; {
		i := breaks[j]
		result = append(result, line[offsets[i]:offsets[j]])
		j = i
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// nextBreak scans from offset start and returns the offset of the next
// break opportunity in line, always at most len(line).
func nextBreak(line string, start int) int {
	pos := start
	if pos >= len(line) {
		return pos
	}

	cls := Classify(line[pos])

	// A leading space cannot be broken away from what follows it.
	if cls == Space {
		cls = WordJoiner
	}

	ncls := cls

	for pos++; pos < len(line) && cls != MandatoryBreak; pos++ {
		lcls := ncls
		ncls = Classify(line[pos])

		if ncls == MandatoryBreak {
			pos++
			break
		}
		if ncls == Space {
			continue
		}

		brk := pairTable[cls][ncls]
		if brk == directBreak || (brk == indirectBreak && lcls == Space) {
			break
		}

		cls = ncls
	}

	return pos
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
