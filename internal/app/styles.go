package app

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Separator lipgloss.Style
	Status    lipgloss.Style
	StatusKey lipgloss.Style
	HelpBox   lipgloss.Style
}

func defaultStyles() styles {
	muted := lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	return styles{
		Separator: lipgloss.NewStyle().Foreground(muted),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "236"}),
		StatusKey: lipgloss.NewStyle().Bold(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "244", Dark: "244"}).
			Padding(1, 2),
	}
}
