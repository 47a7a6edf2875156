package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EasyDay theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMatrix  = "🗂️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconCrown   = "👑"
	IconFire    = "🔥"
	IconBrain   = "🧠"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconUndo    = "↩️"
	IconLock    = "🔒"
	IconChart   = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// Quadrant accent colors follow the matrix: Q1 red, Q2 blue, Q3 orange,
// Q4 gray.
var quadrantStyles = map[string]lipgloss.Style{
	"Q1": lipgloss.NewStyle().Bold(true).Foreground(cBad),
	"Q2": lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
	"Q3": lipgloss.NewStyle().Bold(true).Foreground(cWarn),
	"Q4": lipgloss.NewStyle().Bold(true).Foreground(cMuted),
}

func QuadrantTag(q string) string {
	if st, ok := quadrantStyles[q]; ok {
		return st.Render(q)
	}
	return Muted.Render(q)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func CheckMark(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
