package tui

import "github.com/charmbracelet/lipgloss"

// DataProtect palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorPurple = lipgloss.Color("#8b5cf6")
	colorBrand  = lipgloss.Color("#f80000")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorMuted  = lipgloss.Color("#525252")
)

// StyleHeader is the full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleTitle is the bold product name in the header.
var StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

// StylePageTitle heads each page body.
var StylePageTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).MarginBottom(1)

// StylePanel is the rounded box around the job list, SLA panel and trend chart.
var StylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// StylePanelTitle is the section label inside a panel.
var StylePanelTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

// Navigation styles.
var (
	StyleNavActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDark).
			Background(colorWhite).
			Padding(0, 1)

	StyleNavInactive = lipgloss.NewStyle().Foreground(colorGray)
	StyleNavKey      = lipgloss.NewStyle().Foreground(colorMuted)
)

// Job status badges.
var (
	StyleBadgeCompleted = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleBadgeRunning   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	StyleBadgeFailed    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	StyleBadgeUnknown   = lipgloss.NewStyle().Foreground(colorGray)
)

// Utility styles.
var (
	StyleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorGray)
	StyleBold    = lipgloss.NewStyle().Bold(true)
	StyleSpinner = lipgloss.NewStyle().Foreground(colorBrand)
)

// Named color styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)
