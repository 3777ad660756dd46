package encode

import (
	"bytes"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"
)

// Colors holds the styles used for terminal output.
type Colors struct {
	Style *pretty.Style
	Ops   map[string]func(string, ...any) string
	Key   func(string, ...any) string
	Error func(string, ...any) string
	Warn  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Style: pretty.TerminalStyle,
		Ops: map[string]func(string, ...any) string{
			"add":     color.GreenString,
			"remove":  color.RedString,
			"replace": color.YellowString,
			"move":    color.RGB(255, 0, 196).SprintfFunc(),
			"copy":    color.CyanString,
			"test":    color.BlueString,
		},
		Key:   color.RGB(196, 96, 16).SprintfFunc(),
		Error: color.New(color.FgRed, color.Bold).SprintfFunc(),
		Warn:  color.RGB(128, 216, 236).SprintfFunc(),
	}
}

// Op colors s with the color of patch operation op.
func (c *Colors) Op(op, s string) string {
	if c == nil {
		return s
	}
	f, ok := c.Ops[op]
	if !ok {
		return s
	}
	return f("%s", s)
}

// yaml colors the keys of block mappings in YAML text.
func (c *Colors) yaml(d []byte) []byte {
	if c.Key == nil {
		return d
	}
	lines := bytes.SplitAfter(d, []byte("\n"))
	out := bytes.NewBuffer(make([]byte, 0, len(d)))
	for _, line := range lines {
		trimmed := bytes.TrimLeft(line, " -")
		i := bytes.Index(trimmed, []byte(": "))
		if i == -1 {
			i = bytes.Index(trimmed, []byte(":\n"))
		}
		if i <= 0 || trimmed[0] == '"' || trimmed[0] == '\'' {
			out.Write(line)
			continue
		}
		prefix := line[:len(line)-len(trimmed)]
		out.Write(prefix)
		out.WriteString(c.Key("%s", trimmed[:i]))
		out.Write(trimmed[i:])
	}
	return out.Bytes()
}
