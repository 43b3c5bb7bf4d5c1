package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dayplan/internal/commands"
	"dayplan/internal/taskstore"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		return m.runCommand(input)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	mutated := false
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			_, ok := m.Tasks.Add(context.Background(), taskstore.Draft{
				Title: a.Title,
				Time:  a.Time,
				Date:  m.Selector.Selected(),
			})
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires a title"}
			}
			mutated = true
			return commands.Result{Message: fmt.Sprintf("added %q", a.Title)}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			if err := m.Selector.Select(g.Date); err != nil {
				return commands.Result{}, err
			}
			m.Cursor = 0
			return commands.Result{Message: "showing " + g.Date}, nil
		},
		Today: func() (commands.Result, error) {
			m.Selector.JumpToToday()
			m.Cursor = 0
			return commands.Result{Message: "showing today"}, nil
		},
		Toggle: func() (commands.Result, error) {
			visible := m.visibleTasks()
			if m.Cursor < 0 || m.Cursor >= len(visible) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			m.Tasks.Toggle(context.Background(), visible[m.Cursor].ID)
			mutated = true
			return commands.Result{Message: "toggled " + visible[m.Cursor].Title}, nil
		},
		Delete: func() (commands.Result, error) {
			visible := m.visibleTasks()
			if m.Cursor < 0 || m.Cursor >= len(visible) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			m.Tasks.Delete(context.Background(), visible[m.Cursor].ID)
			mutated = true
			return commands.Result{Message: "deleted " + visible[m.Cursor].Title}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	m.Status = StatusBar{Text: res.Message}
	if mutated {
		return m, m.bannerDwellCmd()
	}
	return m, nil
}
