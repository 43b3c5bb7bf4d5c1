package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"dayplan/internal/logging"
	"dayplan/internal/model"
	"dayplan/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.CurrentView == ViewCreate {
			return m.handleCreateKey(typed)
		}
		if m.ConfirmDeleteID != "" {
			return m.handleConfirmKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			if err := m.Tasks.Flush(context.Background()); err != nil {
				logging.Warn("final task flush failed", zap.Error(err))
			}
			return m, tea.Quit
		}
		return m.handleTasksKey(typed)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case BannerExpireMsg:
		m.Relay.Clear(typed.Seq)
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	banner := ""
	if n, _, ok := m.Relay.Current(); ok {
		banner = views.RenderBanner(string(n.Type), n.Message)
	}

	body := ""
	switch m.CurrentView {
	case ViewCreate:
		body = views.RenderCreatePanel(m.createPanelData())
	default:
		body = views.RenderTasksPanel(m.tasksPanelData())
	}
	if palette := views.RenderPalette(views.PalettePanelData(m.Palette)); palette != "" {
		body += "\n\n" + palette
	}
	if m.HelpVisible {
		body += "\n\n" + views.RenderMarkdown(helpText)
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("dayplan | %s", m.Selector.Selected()),
		Banner:     banner,
		Body:       body,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s/%s day | %s today | %s/%s move | space done | %s add | %s del | / cmd | %s help | %s quit",
			m.Keys.PrevDay, m.Keys.NextDay, m.Keys.Today, m.Keys.Down, m.Keys.Up, m.Keys.Add, m.Keys.Delete, m.Keys.Help, m.Keys.Quit),
	})
}

// bannerDwellCmd arms the dwell timer for whatever banner is currently
// showing.
func (m Model) bannerDwellCmd() tea.Cmd {
	_, seq, ok := m.Relay.Current()
	if !ok {
		return nil
	}
	return tea.Tick(bannerDwell, func(time.Time) tea.Msg {
		return BannerExpireMsg{Seq: seq}
	})
}

func (m Model) visibleTasks() []model.Task {
	return m.Tasks.TasksFor(m.Selector.Selected())
}
