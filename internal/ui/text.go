package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI content. With colors it applies color;
// without colors it wraps the text in before and after instead.
type Formatter struct {
	color  *color.Color
	before string
	after  string
}

func newFormatter(attr color.Attribute, before, after string) Formatter {
	return Formatter{color: color.New(attr), before: before, after: after}
}

// Sprint formats the arguments like fmt.Sprint and decorates the result.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats like fmt.Sprintf and decorates the result.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.before + text + f.after
	}
	return f.color.Sprint(text)
}

// noColor reports whether output must stay plain: NO_COLOR is set
// (https://no-color.org/) or fatih/color detected a dumb or non-tty output.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for ctenv output.
var (
	// Code formats commands and .env lines. `backticks` without color.
	Code = newFormatter(color.FgYellow, "`", "`")

	// Path formats file and directory paths.
	Path = newFormatter(color.FgYellow, "", "")

	// Flag formats command-line flags.
	Flag = newFormatter(color.FgYellow, "", "")

	// Success formats success markers and configured values.
	Success = newFormatter(color.FgGreen, "", "")

	// Error formats failure markers.
	Error = newFormatter(color.FgRed, "", "")

	// Warning formats warning markers.
	Warning = newFormatter(color.FgYellow, "", "")

	// Info formats hints.
	Info = newFormatter(color.FgCyan, "", "")

	// Highlight formats package names. 'single quotes' without color.
	Highlight = newFormatter(color.FgCyan, "'", "'")

	// Muted formats secondary details such as line numbers. (parentheses) without color.
	Muted = newFormatter(color.FgHiBlack, "(", ")")
)
