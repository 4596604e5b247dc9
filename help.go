package cliconf

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/cliconf/textwrap"
)

// Help renders the usage line and one aligned block per visible option.
// terminalWidth is supplied by the caller; the name column is capped at
// half of it and descriptions wrap in the remainder.
func (c *Config) Help(terminalWidth int) string {
	var b strings.Builder

	if c.usage != "" {
		b.WriteString(c.usage)
		b.WriteByte('\n')
	}

	optionsWidth := 0
	for _, o := range c.options {
		if w := o.width(); w > optionsWidth {
			optionsWidth = w
		}
	}
	if optionsWidth > terminalWidth/2 {
		optionsWidth = terminalWidth / 2
	}

	for _, o := range c.options {
		o.writeHelp(&b, optionsWidth, terminalWidth)
	}

	return b.String()
}

// WriteHelp writes Help(terminalWidth) to w.
func (c *Config) WriteHelp(w io.Writer, terminalWidth int) error {
	_, err := io.WriteString(w, c.Help(terminalWidth))
	return err
}

// writeHelp emits one option block: the name forms, the arg marker, the
// default, and the wrapped description aligned to the name column.
func (o *Option) writeHelp(b *strings.Builder, width, terminalWidth int) {
	if o.hidden {
		return
	}

	b.WriteString("  ")
	used := 2

	if o.shortName != 0 {
		b.WriteByte('-')
		b.WriteByte(o.shortName)
		used += 2
		if len(o.name) > 1 {
			fmt.Fprintf(b, " [ --%s ]", o.name)
			used += 7 + len(o.name)
		}
	} else {
		fmt.Fprintf(b, "--%s", o.name)
		used += 2 + len(o.name)
	}

	if !o.isFlag {
		b.WriteString(" arg")
		used += 4

		if o.hasDefault {
			def := o.defaultString()
			fmt.Fprintf(b, " (=%s)", def)
			used += 4 + len(def)
		}
	}

	// When the name block crowds the description column, the
	// description starts on its own line.
	leading := width
	if used+2 > width {
		b.WriteByte('\n')
	} else {
		leading = width - used
	}

	for _, line := range textwrap.Wrap(o.desc, terminalWidth-width) {
		b.WriteString(strings.Repeat(" ", leading))
		b.WriteString(line)
		b.WriteByte('\n')
		leading = width
	}
}
