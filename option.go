package cliconf

import (
	"fmt"
	"strconv"

	"github.com/vk/cliconf/internal/numscan"
)

// Path is a filesystem path value. It is a distinct option type, so a
// plain string query against a path option reports a type mismatch.
type Path string

// ValueType enumerates the types an option value may take. Flags take
// no value at all and are created with Flag.
type ValueType interface {
	int | int64 | uint | uint64 | float64 | string | Path
}

// Kind tags the stored value of an option. It is the closed set of
// value representations; conversions and queries dispatch on it.
type Kind uint8

const (
	KindNone   Kind = iota // flags store no value
	KindInt                // int, int64
	KindUint               // uint, uint64
	KindFloat              // float64
	KindString             // string
	KindPath               // Path
)

// optValue is one stored value, tagged by its kind.
type optValue struct {
	kind Kind
	num  int64
	unum uint64
	real float64
	str  string
}

// Option describes one configurable option. Its name and short name are
// fixed at construction; parsing only mutates the seen count and the
// stored value(s).
type Option struct {
	name      string
	shortName byte
	desc      string

	kind       Kind
	isFlag     bool
	isMulti    bool
	hasDefault bool
	hidden     bool

	seen int
	val  *optValue  // single-value options
	vals []optValue // multi options, in encounter order
}

// newOption splits a trailing ",X" suffix off name into the short name.
// A single-character name doubles as its own short form.
func newOption(name, desc string) *Option {
	o := &Option{name: name, desc: desc, isFlag: true}
	if len(o.name) == 1 {
		o.shortName = o.name[0]
	} else if len(o.name) > 2 && o.name[len(o.name)-2] == ',' {
		o.shortName = o.name[len(o.name)-1]
		o.name = o.name[:len(o.name)-2]
	}
	return o
}

// Flag creates an option that carries no value, only an occurrence count.
// The name may end in ",X" to give the option the short form -X.
func Flag(name, desc string) *Option {
	return newOption(name, desc)
}

// Opt creates a single-value option of type T without a default.
func Opt[T ValueType](name, desc string) *Option {
	o := newOption(name, desc)
	o.isFlag = false
	o.kind = kindOf[T]()
	return o
}

// OptDefault creates a single-value option of type T with a default
// value. The default counts as a present value for Has and Get until a
// parsed occurrence overwrites it.
func OptDefault[T ValueType](name string, def T, desc string) *Option {
	o := Opt[T](name, desc)
	o.hasDefault = true
	v := makeValue(def)
	o.val = &v
	return o
}

// Multi creates an option of type T that may be given repeatedly; each
// occurrence appends to an ordered list queried with GetAll.
func Multi[T ValueType](name, desc string) *Option {
	o := Opt[T](name, desc)
	o.isMulti = true
	return o
}

// Hidden marks the option as excluded from help rendering. Hidden
// options still parse normally. It returns the option for chaining.
func (o *Option) Hidden() *Option {
	o.hidden = true
	return o
}

// Name returns the long name of the option.
func (o *Option) Name() string { return o.name }

// kindOf maps a value type parameter onto its storage kind.
func kindOf[T ValueType]() Kind {
	var z T
	switch any(z).(type) {
	case int, int64:
		return KindInt
	case uint, uint64:
		return KindUint
	case float64:
		return KindFloat
	case Path:
		return KindPath
	default:
		return KindString
	}
}

// makeValue stores a Go value into the tagged representation.
func makeValue[T ValueType](v T) optValue {
	switch t := any(v).(type) {
	case int:
		return optValue{kind: KindInt, num: int64(t)}
	case int64:
		return optValue{kind: KindInt, num: t}
	case uint:
		return optValue{kind: KindUint, unum: uint64(t)}
	case uint64:
		return optValue{kind: KindUint, unum: t}
	case float64:
		return optValue{kind: KindFloat, real: t}
	case Path:
		return optValue{kind: KindPath, str: string(t)}
	default:
		return optValue{kind: KindString, str: any(v).(string)}
	}
}

// convert parses raw into the option's kind. Numeric conversion errors
// wrap ErrInvalidArgument; the float path uses the independent scanner.
func (o *Option) convert(raw string) (optValue, error) {
	switch o.kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return optValue{}, fmt.Errorf("%w: %q", ErrInvalidArgument, raw)
		}
		return optValue{kind: KindInt, num: n}, nil

	case KindUint:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return optValue{}, fmt.Errorf("%w: %q", ErrInvalidArgument, raw)
		}
		return optValue{kind: KindUint, unum: n}, nil

	case KindFloat:
		f, err := numscan.ParseFloat(raw)
		if err != nil {
			return optValue{}, fmt.Errorf("%w: %q: %v", ErrInvalidArgument, raw, err)
		}
		return optValue{kind: KindFloat, real: f}, nil

	case KindPath:
		return optValue{kind: KindPath, str: raw}, nil

	default:
		return optValue{kind: KindString, str: raw}, nil
	}
}

// setValue converts raw and stores it: single-value options overwrite,
// multi options append. Flags never reach here.
func (o *Option) setValue(raw string) error {
	v, err := o.convert(raw)
	if err != nil {
		return err
	}
	if o.isMulti {
		o.vals = append(o.vals, v)
	} else {
		o.val = &v
	}
	return nil
}

// defaultString renders the default value the way the help output shows it.
func (o *Option) defaultString() string {
	if o.val == nil {
		return ""
	}
	switch o.val.kind {
	case KindInt:
		return strconv.FormatInt(o.val.num, 10)
	case KindUint:
		return strconv.FormatUint(o.val.unum, 10)
	case KindFloat:
		return strconv.FormatFloat(o.val.real, 'g', -1, 64)
	default:
		return o.val.str
	}
}

// width is the number of columns the option's name block occupies in
// help output, including the surrounding fixed padding.
func (o *Option) width() int {
	w := len(o.name)
	if w <= 1 {
		w = 2
	} else if o.shortName != 0 {
		w += 7
	}
	if !o.isFlag {
		w += 4
		if o.hasDefault {
			w += 4 + len(o.defaultString())
		}
	}
	return w + 6
}
