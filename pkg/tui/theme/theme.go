package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Nav    NavTheme
	Footer FooterTheme
	Panel  PanelTheme
	Grid   GridTheme
	Table  TableTheme
}

// NavTheme styles the top bar that links the main screens.
type NavTheme struct {
	Bar      lipgloss.Style
	Link     lipgloss.Style
	Active   lipgloss.Style
	AppTitle lipgloss.Style
}

// FooterTheme groups styles used by the bottom help and notice line.
type FooterTheme struct {
	Help  lipgloss.Style
	Info  lipgloss.Style
	Error lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
	Focus lipgloss.Style
	Muted lipgloss.Style
}

// GridTheme styles the type buttons on the home screen.
type GridTheme struct {
	Button   lipgloss.Style
	Selected lipgloss.Style
}

// TableTheme styles movement rows.
type TableTheme struct {
	Header   lipgloss.Style
	Time     lipgloss.Style
	Name     lipgloss.Style
	Comment  lipgloss.Style
	Selected lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	link := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(18).
		Align(lipgloss.Center)

	return Theme{
		Nav: NavTheme{
			Bar:      lipgloss.NewStyle().MarginBottom(1),
			Link:     link,
			Active:   link.Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
			AppTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).PaddingRight(2),
		},
		Footer: FooterTheme{
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
			Body:  lipgloss.NewStyle(),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Focus: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Grid: GridTheme{
			Button:   button,
			Selected: button.BorderForeground(lipgloss.Color("212")).Foreground(lipgloss.Color("212")).Bold(true),
		},
		Table: TableTheme{
			Header:   lipgloss.NewStyle().Bold(true).Underline(true),
			Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10),
			Name:     lipgloss.NewStyle().Width(24),
			Comment:  lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
	}
}
