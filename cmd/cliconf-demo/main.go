// Command cliconf-demo shows the intended embedding of the cliconf
// engine: options come from the command line and from a discovered
// config file, then the program queries the merged result.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/vk/cliconf"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	// Use a minimal logger until verbosity is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	c := cliconf.New("usage: cliconf-demo [options] [file...]",
		cliconf.Flag("help,h", "Show this help text and exit"),
		cliconf.Flag("verbose,v", "Produce more output; repeat for even more"),
		cliconf.Opt[cliconf.Path]("config", "Path to the config file to load"),
		cliconf.OptDefault("threads,t", 4, "Number of worker threads"),
		cliconf.OptDefault("output,o", "out.txt", "Where to write the result"),
		cliconf.Multi[string]("define,D", "Add a definition, may be repeated"),
		cliconf.Flag("dump-state", "Write internal state on exit").Hidden(),
	)

	if err := c.Parse(args); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if c.Count("verbose") > 1 {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if c.Has("help") {
		return c.WriteHelp(outW, terminalWidth())
	}

	err := c.ParseConfigFile("config", "cliconf-demo.conf",
		[]string{".", "~/.config/cliconf-demo", "/etc"})
	switch {
	case errors.Is(err, cliconf.ErrConfigFileNotFound):
		// Fatal only because the user named the file explicitly.
		return &ExitError{Code: 1, Message: err.Error()}
	case err != nil:
		return &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Config file processed.")

	threads, err := cliconf.Get[int](c, "threads")
	if err != nil {
		return err
	}
	output, err := c.GetString("output")
	if err != nil {
		return err
	}
	defines, err := cliconf.GetAll[string](c, "define")
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "threads: %d\n", threads)
	fmt.Fprintf(outW, "output: %s\n", output)
	for _, d := range defines {
		fmt.Fprintf(outW, "define: %s\n", d)
	}
	for _, operand := range c.Operands() {
		fmt.Fprintf(outW, "operand: %s\n", operand)
	}

	return nil
}

// terminalWidth returns the injected display width: $COLUMNS when set
// and sane, 80 otherwise.
func terminalWidth() int {
	if s := os.Getenv("COLUMNS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 80
}
