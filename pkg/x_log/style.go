// file:dline/pkg/x_log/style.go
package x_log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for console output.
type Styles struct {
	Out             io.Writer                 // output target
	Timestamp       lipgloss.Style            // style for timestamps
	Levels          map[Level]lipgloss.Style  // level badge styles
	Keys            map[string]lipgloss.Style // custom field keys
	DefaultKeyStyle lipgloss.Style            // fallback for unknown keys
}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light").
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Terminal Detection ----------

// colorEnabled reports whether out is an interactive terminal.
func colorEnabled(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles.
// Styling is dropped when Out is not a terminal.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	out := styles.Out
	if out == nil {
		out = os.Stderr
	}
	return consoleWriter(out, styles, colorEnabled(out))
}

func consoleWriter(out io.Writer, styles *Styles, color bool) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !color,
		TimeFormat: "01-02 15:04:05",
	}
	if !color {
		return w
	}

	w.FormatLevel = func(i any) string {
		name := strings.ToLower(fmt.Sprint(i))
		lvl, err := zerolog.ParseLevel(name)
		style, ok := styles.Levels[lvl]
		if err != nil || !ok {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
		}
		if len(name) > 3 {
			name = name[:3]
		}
		return style.Padding(0, 1).Render(strings.ToUpper(name))
	}
	w.FormatTimestamp = func(i any) string {
		return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
	}
	w.FormatFieldName = func(i any) string {
		key := fmt.Sprint(i)
		style, ok := styles.Keys[key]
		if !ok {
			style = styles.DefaultKeyStyle
		}
		eq := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
		return style.Render(key) + eq.Render("=")
	}
	w.FormatMessage = func(i any) string {
		if i == nil {
			return ""
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)).Render(fmt.Sprint(i))
	}
	return w
}

//
// ---------- Dark Theme ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue60)),
			WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"run":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"move":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"depth":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"module": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"error":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}

//
// ---------- Light Theme ----------

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"run":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"move":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"depth":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"module": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"error":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}
