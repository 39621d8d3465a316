package gcb

import (
	"strconv"
	"strings"
)

// Command is a single G-code line. A Command without Code is a comment line.
type Command struct {
	Code        GCode
	Args        []Arg
	LineComment string
}

// String formats the command. The line comment is skipped unless comments is set.
func (c *Command) String(comments bool) string {
	parts := make([]string, 0, len(c.Args)+2)
	if c.Code != "" {
		parts = append(parts, string(c.Code))
	}

	for _, arg := range c.Args {
		parts = append(parts, arg.String())
	}

	if c.LineComment != "" && comments {
		parts = append(parts, "; "+c.LineComment)
	}

	return strings.Join(parts, " ")
}

// Arg is a command argument like X12.5.
type Arg struct {
	Name  string
	Value float64
}

func (a Arg) String() string {
	return a.Name + strconv.FormatFloat(a.Value, 'f', 3, 64)
}
