package ui

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style is a text style. Colors are names or "#rrggbb"; empty means the
// terminal default.
type Style struct {
	FG        string
	BG        string
	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool
	Dim       bool
}

// Apply converts the style for the terminal.
func (s Style) Apply() tcell.Style {
	st := tcell.StyleDefault
	if s.FG != "" {
		st = st.Foreground(tcell.GetColor(s.FG))
	}
	if s.BG != "" {
		st = st.Background(tcell.GetColor(s.BG))
	}
	return st.Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Reverse(s.Reverse).
		Dim(s.Dim)
}

// Merge returns a new Style by applying the child style's non-default attributes
// over the receiver (parent) style.
func (s Style) Merge(child Style) Style {
	if child.FG == "" {
		child.FG = s.FG
	}
	if child.BG == "" {
		child.BG = s.BG
	}
	child.Bold = child.Bold || s.Bold
	child.Italic = child.Italic || s.Italic
	child.Underline = child.Underline || s.Underline
	child.Reverse = child.Reverse || s.Reverse
	child.Dim = child.Dim || s.Dim
	return child
}

// StyleGroup names a role a style plays, looked up in a Theme.
type StyleGroup int

const (
	GroupEnabled StyleGroup = iota
	GroupDisabled
	GroupHovered
	GroupFocused
	GroupPressed
	GroupBorder
	GroupAccent
)

// Theme maps style groups to styles.
type Theme struct {
	Name       string
	Foreground string
	Background string
	Border     string
	Accent     string
	Hover      string
	Selection  string
	Shadow     string
}

// Style looks up the style of a group.
func (t *Theme) Style(g StyleGroup) Style {
	base := Style{FG: t.Foreground, BG: t.Background}
	switch g {
	case GroupDisabled:
		return base.Merge(Style{FG: t.Shadow})
	case GroupHovered:
		return base.Merge(Style{FG: t.Accent, BG: t.Hover})
	case GroupFocused:
		return Style{FG: t.Background, BG: t.Accent}
	case GroupPressed:
		return Style{FG: t.Background, BG: t.Selection, Bold: true}
	case GroupBorder:
		return base.Merge(Style{FG: t.Border})
	case GroupAccent:
		return base.Merge(Style{FG: t.Accent})
	default:
		return base
	}
}

// DetectTheme picks the light theme on terminals that report a light
// background, the dark theme otherwise.
func DetectTheme() *Theme {
	if detectLightTerminal() {
		return LightTheme()
	}
	return DarkTheme()
}

// ThemeByName returns "dark", "light" or, for anything else, DetectTheme.
func ThemeByName(name string) *Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// detectLightTerminal detects if terminal has a light background via COLORFGBG.
// iTerm2 and other terminals set this as "foreground;background".
// Background 7 or 15 indicates light, 0-6 and 8 indicate dark.
func detectLightTerminal() bool {
	colorfgbg := os.Getenv("COLORFGBG")
	if colorfgbg == "" {
		return false
	}
	parts := strings.Split(colorfgbg, ";")
	if len(parts) != 2 {
		return false
	}
	bg := parts[1]
	return bg == "7" || bg == "15"
}

func LightTheme() *Theme {
	return &Theme{
		Name:       "light",
		Foreground: "#333333", // grey3
		Background: "#fbffff", // white5
		Border:     "#d9e0e4", // white2
		Accent:     "#5fb3b3", // blue2
		Hover:      "#dae0e2", // white3
		Selection:  "#6699cc", // blue
		Shadow:     "#999999", // grey2
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name:       "dark",
		Foreground: "#d8dee9", // white3
		Background: "#303841", // blue3
		Border:     "#65737e", // blue4
		Accent:     "#fac863", // orange
		Hover:      "#4e5a65",
		Selection:  "#6699cc", // blue
		Shadow:     "#a7adba", // blue6
	}
}
