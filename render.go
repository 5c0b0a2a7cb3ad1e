package irc

import (
	"strings"
)

// maxLineLength is the wire limit from spec.md §4.1: total line length
// (excluding CRLF) must be <= 512 bytes when rendering.
const maxLineLength = 512

// errLineTooLong is wrapped with the rendered command name when Render
// would exceed maxLineLength.
type errLineTooLong struct {
	Command string
	Length  int
}

func (e *errLineTooLong) Error() string {
	return "render " + e.Command + ": " + itoa(e.Length) + " bytes exceeds the 512-byte line limit"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}

// needsTrailing reports whether param must be introduced by the trailing
// colon marker: it is empty, contains a space, or begins with ':'.
func needsTrailing(param string) bool {
	return param == "" || strings.Contains(param, " ") || strings.HasPrefix(param, ":")
}

// renderLine renders a single wire line (without CRLF) from an optional
// source, a command token, and ordered parameters. Only the final parameter
// may need the trailing-colon rule; callers are responsible for ensuring no
// earlier parameter contains a space.
func renderLine(source *Source, cmd string, params ...string) (string, error) {
	var b strings.Builder
	if source != nil {
		b.WriteByte(':')
		b.WriteString(source.String())
		b.WriteByte(' ')
	}
	b.WriteString(cmd)
	for i, p := range params {
		b.WriteByte(' ')
		if i == len(params)-1 && needsTrailing(p) {
			b.WriteByte(':')
		}
		b.WriteString(p)
	}
	line := b.String()
	if len(line) > maxLineLength {
		return line, &errLineTooLong{Command: cmd, Length: len(line)}
	}
	return line, nil
}
