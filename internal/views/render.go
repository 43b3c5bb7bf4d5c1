package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Banner     string
	Body       string
	StatusLine string
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Banner backgrounds match the notification severity palette:
	// green success, red error, blue info, orange warning.
	bannerStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#10B981")).Padding(0, 1),
		"error":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#EF4444")).Padding(0, 1),
		"info":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#3B82F6")).Padding(0, 1),
		"warning": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#F59E0B")).Padding(0, 1),
	}
	bannerDefaultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#5B67F0")).Padding(0, 1)
)

func RenderApp(data AppData) string {
	lines := []string{headerStyle.Render(data.Header)}
	if data.Banner != "" {
		lines = append(lines, data.Banner)
	}
	lines = append(lines, panelStyle.Width(62).Render(data.Body))

	if data.StatusLine != "" {
		status := statusStyle.Render(data.StatusLine)
		if strings.Contains(strings.ToLower(data.StatusLine), "error") {
			status = errorStyle.Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderBanner draws the transient notification toast for the given severity.
func RenderBanner(level, message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	style, ok := bannerStyles[level]
	if !ok {
		style = bannerDefaultStyle
	}
	return style.Render(bannerIcon(level) + " " + message)
}

func bannerIcon(level string) string {
	switch level {
	case "success":
		return "✔"
	case "error":
		return "✖"
	case "warning":
		return "⚠"
	default:
		return "ℹ"
	}
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
