package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dayplan/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()

	switch msg.String() {
	case m.Keys.PrevDay, "left":
		m.Selector.Previous()
		m.Cursor = 0
		return m, nil
	case m.Keys.NextDay, "right":
		m.Selector.Next()
		m.Cursor = 0
		return m, nil
	case m.Keys.Today:
		m.Selector.JumpToToday()
		m.Cursor = 0
		m.Status = StatusBar{Text: "jumped to today"}
		return m, nil
	case m.Keys.Down, "down":
		if m.Cursor < len(visible)-1 {
			m.Cursor++
		}
		return m, nil
	case m.Keys.Up, "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case " ", "enter":
		if m.Cursor >= 0 && m.Cursor < len(visible) {
			m.Tasks.Toggle(context.Background(), visible[m.Cursor].ID)
			return m, m.bannerDwellCmd()
		}
		return m, nil
	case m.Keys.Add:
		return m.openCreateForm(), nil
	case m.Keys.Delete:
		if m.Cursor >= 0 && m.Cursor < len(visible) {
			m.ConfirmDeleteID = visible[m.Cursor].ID
			m.Status = StatusBar{Text: fmt.Sprintf("delete %q? press y to confirm", visible[m.Cursor].Title)}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.ConfirmDeleteID
	m.ConfirmDeleteID = ""
	m.Status = StatusBar{}

	if msg.String() != "y" {
		m.Status = StatusBar{Text: "delete cancelled"}
		return m, nil
	}

	m.Tasks.Delete(context.Background(), id)
	if visible := m.visibleTasks(); m.Cursor >= len(visible) && m.Cursor > 0 {
		m.Cursor = len(visible) - 1
	}
	return m, m.bannerDwellCmd()
}

func (m Model) tasksPanelData() views.TasksPanelData {
	selected := m.Selector.Selected()

	strip := make([]views.DayData, 0, StripBefore+StripAfter+1)
	for _, d := range m.Selector.Window(StripBefore, StripAfter) {
		strip = append(strip, views.DayData{
			Date:       d.Date,
			DayOfMonth: d.DayOfMonth,
			Weekday:    d.Weekday,
			IsToday:    d.IsToday,
			IsSelected: d.Date == selected,
		})
	}

	visible := m.visibleTasks()
	rows := make([]views.TaskRowData, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, views.TaskRowData{
			ID:        t.ID,
			Title:     t.Title,
			Time:      t.Time,
			Category:  string(t.Category),
			Completed: t.Completed,
		})
	}

	confirm := ""
	if m.ConfirmDeleteID != "" {
		confirm = "press y to delete, any other key to cancel"
	}

	return views.TasksPanelData{
		Heading:     fmt.Sprintf("tasks for %s (%d)", selected, len(rows)),
		Strip:       strip,
		Rows:        rows,
		Cursor:      m.Cursor,
		ConfirmText: confirm,
	}
}
