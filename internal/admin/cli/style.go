package cli

const (
	bold       = "\033[1m"
	red        = "\033[31m"
	green      = "\033[32m"
	yellow     = "\033[33m"
	blue       = "\033[34m"
	white      = "\033[37m"
	resetColor = "\033[0m"
)

// Style decorates operator-facing messages. Markers are always printed;
// ANSI colours only when enabled.
type Style struct {
	color bool
}

func NewStyle(color bool) Style {
	return Style{color: color}
}

func (s Style) paint(code, msg string) string {
	if !s.color {
		return msg
	}
	return bold + code + msg + resetColor
}

func (s Style) Success(msg string) string { return s.paint(green, "✅ "+msg) }
func (s Style) Warn(msg string) string    { return s.paint(yellow, "⚠️ "+msg) }
func (s Style) Fail(msg string) string    { return s.paint(red, "❌ "+msg) }
func (s Style) Prompt(msg string) string  { return s.paint(blue, msg) }

// Name highlights a user or community name inside a coloured message and
// switches back to base afterwards.
func (s Style) Name(name, base string) string {
	if !s.color {
		return name
	}
	return white + name + base
}
