package views

import (
	"fmt"
	"strings"
)

type DayData struct {
	Date       string
	DayOfMonth int
	Weekday    string
	IsToday    bool
	IsSelected bool
}

type TaskRowData struct {
	ID        string
	Title     string
	Time      string
	Category  string
	Completed bool
}

type TasksPanelData struct {
	Heading     string
	Strip       []DayData
	Rows        []TaskRowData
	Cursor      int
	ConfirmText string
}

type CreatePanelData struct {
	SelectedDate   string
	TitleView      string
	TimeView       string
	Categories     []string
	CategoryCursor int
	ActiveField    string
}

type PalettePanelData struct {
	Active bool
	Input  string
}

// RenderDayStrip draws the navigation strip: the selected day bracketed,
// today starred.
func RenderDayStrip(days []DayData) string {
	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			b.WriteString("  ")
		}
		cell := fmt.Sprintf("%s %d", d.Weekday, d.DayOfMonth)
		if d.IsToday {
			cell += "*"
		}
		if d.IsSelected {
			cell = "[" + cell + "]"
		}
		b.WriteString(cell)
	}
	return b.String()
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString(data.Heading + "\n")
	b.WriteString(RenderDayStrip(data.Strip) + "\n")
	b.WriteString("actions: [h/l]day [t]today [j/k]move [space]done [d]delete [a]add [/]cmd\n")

	if len(data.Rows) == 0 {
		b.WriteString("\n(no tasks for this day)")
	}
	for i, row := range data.Rows {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		mark := "[ ]"
		if row.Completed {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("\n%s %s %s", cursor, mark, row.Title))
		if row.Time != "" {
			b.WriteString(fmt.Sprintf(" @%s", row.Time))
		}
		if row.Category != "" {
			b.WriteString(fmt.Sprintf(" #%s", row.Category))
		}
	}
	if data.ConfirmText != "" {
		b.WriteString("\n\n" + data.ConfirmText)
	}
	return strings.TrimSpace(b.String())
}

func RenderCreatePanel(data CreatePanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("create task for %s\n", data.SelectedDate))
	b.WriteString("actions: [tab]next field [enter]save [esc]cancel\n\n")

	b.WriteString(fieldLabel("title", data.ActiveField) + data.TitleView + "\n")
	b.WriteString(fieldLabel("time", data.ActiveField) + data.TimeView + "\n")
	b.WriteString(fieldLabel("category", data.ActiveField))
	for i, c := range data.Categories {
		cell := c
		if i == data.CategoryCursor {
			cell = "[" + cell + "]"
		}
		b.WriteString(" " + cell)
	}
	return strings.TrimSpace(b.String())
}

func RenderPalette(data PalettePanelData) string {
	if !data.Active {
		return ""
	}
	return fmt.Sprintf("command: /%s", data.Input)
}

func fieldLabel(name, active string) string {
	if name == active {
		return "> " + name + ": "
	}
	return "  " + name + ": "
}
