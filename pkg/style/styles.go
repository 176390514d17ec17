// Package style holds the lipgloss and pterm styles used by terminal output
package style

import (
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	DirStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Result indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	SkippedIndicator = WarningStyle.Render("!")
)

var verbStyles = map[types.ActionKind]lipgloss.Style{
	types.ActionCreate: lipgloss.NewStyle().Foreground(CreateColor).Bold(true),
	types.ActionDelete: lipgloss.NewStyle().Foreground(DeleteColor).Bold(true),
	types.ActionCopy:   lipgloss.NewStyle().Foreground(CopyColor).Bold(true),
	types.ActionMove:   lipgloss.NewStyle().Foreground(MoveColor).Bold(true),
	types.ActionRename: lipgloss.NewStyle().Foreground(RenameColor).Bold(true),
}

// VerbStyle returns the style for an action verb
func VerbStyle(kind types.ActionKind) lipgloss.Style {
	if s, ok := verbStyles[kind]; ok {
		return s
	}
	return TitleStyle
}

// Verb renders the padded, uppercase verb of kind
func Verb(kind types.ActionKind, width int) string {
	return VerbStyle(kind).Render(padRight(kind.Verb(), width))
}

// Indent indents s by level steps of two spaces
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
