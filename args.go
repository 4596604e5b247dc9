package cliconf

import (
	"fmt"
	"strings"
)

// Parse consumes a command-line argument vector. args[0] is the program
// name and is skipped, so callers normally pass os.Args directly.
//
// Long options are --name or --name=value; short options cluster
// (-abc), and a short value option swallows the remainder of its token
// (-ovalue) or, when the remainder is empty, the next token. An empty
// inline value (--name=) likewise falls through to the next token.
// Operands may interleave with options; a literal -- makes everything
// after it an operand, and a lone - is an operand. A repeated
// single-value option overwrites its earlier value.
//
// Parsing stops at the first error. The registry's state after a failed
// parse is unspecified beyond "no further tokens were consumed".
func (c *Config) Parse(args []string) error {
	const (
		inOptions = iota
		inOperands
	)
	state := inOptions

	for i := 1; i < len(args); i++ {
		arg := args[i]

		if state == inOptions {
			// POSIX would end option processing at the first operand;
			// interleaving is what users expect, so stay in inOptions.
			if arg == "" || arg[0] != '-' || arg == "-" {
				c.operands = append(c.operands, arg)
				continue
			}
			if arg == "--" {
				state = inOperands
				continue
			}
		}

		if state == inOperands {
			c.operands = append(c.operands, arg)
			continue
		}

		var opt *Option
		var optArg string
		var optName string

		if strings.HasPrefix(arg, "--") {
			optName = arg[2:]
			if p := strings.IndexByte(optName, '='); p >= 0 {
				optName, optArg = optName[:p], optName[p+1:]
			}

			opt = c.lookup(optName)
			if opt == nil {
				if c.ignoreUnknown {
					continue
				}
				return fmt.Errorf("option %q: %w", optName, ErrUnknownOption)
			}

			if opt.isFlag {
				if optArg != "" {
					return fmt.Errorf("option %q: %w", optName, ErrOptionDoesNotAcceptArgument)
				}
				opt.seen++
				continue
			}

			// Seen is recorded before the value is bound.
			opt.seen++
		} else {
			cluster := arg[1:]
			expectArg := false

			for k := 0; k < len(cluster); k++ {
				opt = c.lookupShort(cluster[k])
				if opt == nil {
					if c.ignoreUnknown {
						continue
					}
					return fmt.Errorf("option %q: %w", string(cluster[k]), ErrUnknownOption)
				}

				opt.seen++
				if opt.isFlag {
					continue
				}

				// A value option ends the cluster; the rest of the
				// token is its inline value.
				optName = opt.name
				optArg = cluster[k+1:]
				expectArg = true
				break
			}

			if !expectArg {
				continue
			}
		}

		if optArg == "" && i+1 < len(args) {
			i++
			optArg = args[i]
		}

		if optArg == "" {
			return fmt.Errorf("option %q: %w", optName, ErrMissingArgumentForOption)
		}
		if err := opt.setValue(optArg); err != nil {
			return fmt.Errorf("option %q: %w", optName, err)
		}
	}

	return nil
}
