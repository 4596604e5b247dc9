/*
Package cliconf is an embeddable option-management engine: a fixed
registry of named options populated from a command-line argument vector,
from a line-oriented configuration file, or from both, and queried
through typed lookups.

A registry is built once from option descriptors and then parsed into:

	c := cliconf.New("usage: frob [options] file...",
		cliconf.Flag("verbose,v", "Produce more output; repeat for more"),
		cliconf.OptDefault("threads,t", 4, "Number of worker threads"),
		cliconf.Opt[cliconf.Path]("config", "Path to a config file"),
		cliconf.Multi[string]("define,D", "Add a definition"),
	)
	if err := c.Parse(os.Args); err != nil {
		...
	}
	threads, err := cliconf.Get[int](c, "threads")

Long options take their value inline (--threads=4) or from the next
token (--threads 4); short options cluster (-vvv) and take values from
the token remainder (-t4) or the next token. A literal -- ends option
processing; operands and options may otherwise interleave.

Config files hold one directive per line: `# comment`, `name` for a
flag, or `name = value`. In a config file the first occurrence of a
non-multi option wins, whereas on the command line a later occurrence
overwrites an earlier one.

All errors wrap the package's sentinel errors, so callers can branch
with errors.Is, for example to treat ErrConfigFileNotFound as fatal
only when the user named the file explicitly.

A Config is not safe for concurrent parsing; run one parse at a time.
*/
package cliconf
