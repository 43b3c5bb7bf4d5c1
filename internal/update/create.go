package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"dayplan/internal/model"
	"dayplan/internal/taskstore"
	"dayplan/internal/views"
)

func (m Model) openCreateForm() Model {
	m.CurrentView = ViewCreate
	m.Create.titleInput.SetValue("")
	m.Create.timeInput.SetValue("")
	m.Create.CategoryCursor = 0
	m.Create.Field = fieldTitle
	m.Create.titleInput.Focus()
	m.Create.timeInput.Blur()
	return m
}

func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewTasks
		m.Status = StatusBar{Text: "create cancelled"}
		return m, nil
	case "tab":
		return m.cycleCreateField(1), nil
	case "shift+tab":
		return m.cycleCreateField(-1), nil
	case "enter":
		return m.submitCreate()
	}

	switch m.Create.Field {
	case fieldTitle:
		var cmd tea.Cmd
		m.Create.titleInput, cmd = m.Create.titleInput.Update(msg)
		return m, cmd
	case fieldTime:
		var cmd tea.Cmd
		m.Create.timeInput, cmd = m.Create.timeInput.Update(msg)
		return m, cmd
	case fieldCategory:
		categories := model.Categories()
		switch msg.String() {
		case "left", "h":
			if m.Create.CategoryCursor > 0 {
				m.Create.CategoryCursor--
			}
		case "right", "l":
			if m.Create.CategoryCursor < len(categories)-1 {
				m.Create.CategoryCursor++
			}
		}
		return m, nil
	}
	return m, nil
}

// submitCreate adds the drafted task for the selected day. An empty title is
// ignored without feedback and the form stays open, matching the silent
// rejection in the store.
func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	categories := model.Categories()
	category := categories[0]
	if m.Create.CategoryCursor >= 0 && m.Create.CategoryCursor < len(categories) {
		category = categories[m.Create.CategoryCursor]
	}

	_, ok := m.Tasks.Add(context.Background(), taskstore.Draft{
		Title:    m.Create.titleInput.Value(),
		Time:     m.Create.timeInput.Value(),
		Category: category,
		Date:     m.Selector.Selected(),
	})
	if !ok {
		return m, nil
	}

	m.CurrentView = ViewTasks
	m.Cursor = len(m.visibleTasks()) - 1
	return m, m.bannerDwellCmd()
}

func (m Model) cycleCreateField(dir int) Model {
	order := []createField{fieldTitle, fieldTime, fieldCategory}
	idx := 0
	for i, f := range order {
		if f == m.Create.Field {
			idx = i
			break
		}
	}
	m.Create.Field = order[(idx+dir+len(order))%len(order)]

	m.Create.titleInput.Blur()
	m.Create.timeInput.Blur()
	switch m.Create.Field {
	case fieldTitle:
		m.Create.titleInput.Focus()
	case fieldTime:
		m.Create.timeInput.Focus()
	}
	return m
}

func (m Model) createPanelData() views.CreatePanelData {
	categories := model.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	return views.CreatePanelData{
		SelectedDate:   m.Selector.Selected(),
		TitleView:      m.Create.titleInput.View(),
		TimeView:       m.Create.timeInput.View(),
		Categories:     names,
		CategoryCursor: m.Create.CategoryCursor,
		ActiveField:    string(m.Create.Field),
	}
}
