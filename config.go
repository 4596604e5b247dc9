package cliconf

import "fmt"

// Config is an ordered registry of options plus the operands collected
// while parsing. Its shape is fixed by New; parsing only mutates
// descriptor state. A Config must not be shared between concurrent
// parse calls.
type Config struct {
	usage         string
	options       []*Option
	operands      []string
	ignoreUnknown bool
}

// New creates a registry over the given options. The usage line is
// printed above the option block by WriteHelp.
func New(usage string, options ...*Option) *Config {
	return &Config{usage: usage, options: options}
}

// SetUsage replaces the usage line.
func (c *Config) SetUsage(usage string) { c.usage = usage }

// SetIgnoreUnknown controls whether unknown option names are skipped
// silently instead of failing the parse. It applies to both the
// argument-vector parser and the config-file parser.
func (c *Config) SetIgnoreUnknown(ignore bool) { c.ignoreUnknown = ignore }

// lookup returns the first option with the given long name, or nil.
func (c *Config) lookup(name string) *Option {
	for _, o := range c.options {
		if o.name == name {
			return o
		}
	}
	return nil
}

// lookupShort returns the first option with the given short character, or nil.
func (c *Config) lookupShort(short byte) *Option {
	for _, o := range c.options {
		if o.shortName != 0 && o.shortName == short {
			return o
		}
	}
	return nil
}

// Has reports whether the named option carries a value: it was seen by
// a parser, or it has a default.
func (c *Config) Has(name string) bool {
	o := c.lookup(name)
	return o != nil && (o.seen > 0 || o.hasDefault)
}

// Count returns how often the named option was seen. Unregistered names
// count zero.
func (c *Config) Count(name string) int {
	if o := c.lookup(name); o != nil {
		return o.seen
	}
	return 0
}

// Operands returns the positional arguments collected by Parse, in
// encounter order.
func (c *Config) Operands() []string { return c.operands }

// GetString is shorthand for Get[string].
func (c *Config) GetString(name string) (string, error) {
	return Get[string](c, name)
}

// Get returns the value of the named single-value option as T.
// It fails with ErrUnknownOption for unregistered names,
// ErrOptionNotSpecified when the option was never seen and has no
// default, and ErrWrongTypeCast when T does not match the stored type
// (multi options only answer to GetAll).
func Get[T ValueType](c *Config, name string) (T, error) {
	var zero T

	o := c.lookup(name)
	if o == nil {
		return zero, fmt.Errorf("option %q: %w", name, ErrUnknownOption)
	}
	if o.isMulti {
		return zero, fmt.Errorf("option %q: %w", name, ErrWrongTypeCast)
	}
	if o.val == nil {
		return zero, fmt.Errorf("option %q: %w", name, ErrOptionNotSpecified)
	}
	if o.val.kind != kindOf[T]() {
		return zero, fmt.Errorf("option %q: %w", name, ErrWrongTypeCast)
	}

	project(o.val, &zero)
	return zero, nil
}

// GetAll returns all values of the named multi option, in encounter
// order. A registered multi option that was never seen yields an empty
// slice and no error.
func GetAll[T ValueType](c *Config, name string) ([]T, error) {
	o := c.lookup(name)
	if o == nil {
		return nil, fmt.Errorf("option %q: %w", name, ErrUnknownOption)
	}
	if !o.isMulti {
		return nil, fmt.Errorf("option %q: %w", name, ErrWrongTypeCast)
	}

	kind := kindOf[T]()
	out := make([]T, len(o.vals))
	for i := range o.vals {
		if o.vals[i].kind != kind {
			return nil, fmt.Errorf("option %q: %w", name, ErrWrongTypeCast)
		}
		project(&o.vals[i], &out[i])
	}
	return out, nil
}

// project copies a tagged value into a typed destination. The caller
// has already checked the kind.
func project[T ValueType](v *optValue, dst *T) {
	switch p := any(dst).(type) {
	case *int:
		*p = int(v.num)
	case *int64:
		*p = v.num
	case *uint:
		*p = uint(v.unum)
	case *uint64:
		*p = v.unum
	case *float64:
		*p = v.real
	case *Path:
		*p = Path(v.str)
	case *string:
		*p = v.str
	}
}
