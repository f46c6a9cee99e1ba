package output

import "github.com/charmbracelet/lipgloss"

var (
	// AccentColor is used for form titles.
	AccentColor = lipgloss.Color("#4ECDC4")
	// LossColor highlights negative amounts and disallowed losses.
	LossColor = lipgloss.Color("#FF6B6B")
	// NoteColor is used for observations.
	NoteColor = lipgloss.Color("#FFE66D")
	// SubtleColor is used for line numbers and secondary text.
	SubtleColor = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(6)

	LabelStyle = lipgloss.NewStyle().
			Width(52)

	TotalLabelStyle = LabelStyle.
			Bold(true)

	AmountStyle = lipgloss.NewStyle().
			Width(18).
			Align(lipgloss.Right)

	NegativeAmountStyle = AmountStyle.
				Foreground(LossColor)

	NoteStyle = lipgloss.NewStyle().
			Foreground(NoteColor)

	// BoxStyle frames the headline summary.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)
)
