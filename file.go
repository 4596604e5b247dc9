package cliconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

type cfgState int

const (
	cfgNameStart cfgState = iota
	cfgComment
	cfgName
	cfgAssign
	cfgValueStart
	cfgValue
)

// eofByte stands in for end-of-stream, which terminates a line just
// like \n or \r does.
const eofByte = -1

func isNameByte(ch int) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	case ch == '_' || ch == '-':
		return true
	}
	return false
}

func isEOLN(ch int) bool {
	return ch == '\n' || ch == '\r' || ch == eofByte
}

// ParseConfig reads a line-oriented configuration from r and records
// each directive against the registry. The grammar is one directive per
// line: `# comment`, `name` (a flag occurrence), or `name = value`,
// with no quoting and no escaping.
//
// Unlike the argument-vector parser, a repeated non-multi option keeps
// its first value; later occurrences in the same file are silently
// ignored. Multi options append on every occurrence. Parsing stops at
// the first error.
func (c *Config) ParseConfig(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	bareName := func(name string, line int) error {
		opt := c.lookup(name)
		switch {
		case opt == nil:
			if !c.ignoreUnknown {
				return fmt.Errorf("line %d: option %q: %w", line, name, ErrUnknownOption)
			}
		case !opt.isFlag:
			return fmt.Errorf("line %d: option %q: %w", line, name, ErrMissingArgumentForOption)
		default:
			opt.seen++
		}
		return nil
	}

	assign := func(name, value string, line int) error {
		opt := c.lookup(name)
		switch {
		case opt == nil:
			if !c.ignoreUnknown {
				return fmt.Errorf("line %d: option %q: %w", line, name, ErrUnknownOption)
			}
		case opt.isFlag:
			return fmt.Errorf("line %d: option %q: %w", line, name, ErrOptionDoesNotAcceptArgument)
		case value != "" && (opt.seen == 0 || opt.isMulti):
			// First occurrence wins for non-multi options.
			err := opt.setValue(value)
			opt.seen++
			if err != nil {
				return fmt.Errorf("line %d: option %q: %w", line, name, err)
			}
		}
		return nil
	}

	state := cfgNameStart
	line := 1
	var name, value []byte

	for i := 0; i <= len(data); i++ {
		ch := eofByte
		if i < len(data) {
			ch = int(data[i])
		}

		switch state {
		case cfgNameStart:
			switch {
			case isNameByte(ch):
				name = append(name[:0], byte(ch))
				value = value[:0]
				state = cfgName
			case ch == '#':
				state = cfgComment
			case ch != ' ' && ch != '\t' && !isEOLN(ch):
				return fmt.Errorf("line %d: %w", line, ErrInvalidConfigFile)
			}

		case cfgComment:
			if isEOLN(ch) {
				state = cfgNameStart
			}

		case cfgName:
			switch {
			case isNameByte(ch):
				name = append(name, byte(ch))
			case isEOLN(ch):
				if err := bareName(string(name), line); err != nil {
					return err
				}
				state = cfgNameStart
			default:
				// Reprocess this byte as part of the assignment.
				state = cfgAssign
				i--
				continue
			}

		case cfgAssign:
			switch {
			case ch == '=':
				state = cfgValueStart
			case isEOLN(ch):
				if err := bareName(string(name), line); err != nil {
					return err
				}
				state = cfgNameStart
			case ch != ' ' && ch != '\t':
				return fmt.Errorf("line %d: %w", line, ErrInvalidConfigFile)
			}

		case cfgValueStart, cfgValue:
			switch {
			case isEOLN(ch):
				if err := assign(string(name), string(value), line); err != nil {
					return err
				}
				state = cfgNameStart
			case state == cfgValue:
				value = append(value, byte(ch))
			case ch != ' ' && ch != '\t':
				value = append(value[:0], byte(ch))
				state = cfgValue
			}
		}

		if ch == '\n' {
			line++
		}
	}

	return nil
}

// ParseConfigFile locates and parses a configuration file. The file
// name defaults to defaultName; when the registered option named by
// configOption carries a value, that value is used instead. Each search
// directory is tried in order (a leading ~ expands to the home
// directory) and the first file found is parsed.
//
// When the option was given but no file exists anywhere, the result is
// ErrConfigFileNotFound. When the option was not given and no file
// exists, nothing is parsed and the result is nil.
func (c *Config) ParseConfigFile(configOption, defaultName string, searchDirs []string) error {
	fileName := defaultName
	explicit := c.Has(configOption)
	if explicit {
		if v, err := Get[string](c, configOption); err == nil {
			fileName = v
		} else if p, err := Get[Path](c, configOption); err == nil {
			fileName = string(p)
		}
	}

	for _, dir := range searchDirs {
		if expanded, err := homedir.Expand(dir); err == nil {
			dir = expanded
		}

		path := fileName
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, fileName)
		}

		f, err := os.Open(path)
		if err != nil {
			continue
		}
		err = c.ParseConfig(f)
		f.Close()
		return err
	}

	if explicit {
		return fmt.Errorf("%q: %w", fileName, ErrConfigFileNotFound)
	}
	return nil
}
