package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"dayplan/internal/dateview"
	"dayplan/internal/notify"
	"dayplan/internal/taskstore"
)

type View string

const (
	ViewTasks  View = "Tasks"
	ViewCreate View = "Create"
)

// StripBefore and StripAfter size the day navigation strip around the
// selected day.
const (
	StripBefore = 5
	StripAfter  = 5
)

// bannerDwell is how long a notification banner stays on screen before the
// dwell timer clears it.
const bannerDwell = 3 * time.Second

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	PrevDay string
	NextDay string
	Today   string
	Up      string
	Down    string
	Add     string
	Delete  string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type createField string

const (
	fieldTitle    createField = "title"
	fieldTime     createField = "time"
	fieldCategory createField = "category"
)

type CreateState struct {
	titleInput     textinput.Model
	timeInput      textinput.Model
	CategoryCursor int
	Field          createField
}

type Model struct {
	Tasks       *taskstore.Store
	Selector    *dateview.Selector
	Relay       *notify.Relay
	CurrentView View
	Cursor      int
	Create      CreateState
	Palette     CommandPaletteState
	// ConfirmDeleteID holds the task awaiting delete confirmation; empty
	// means no confirmation is pending.
	ConfirmDeleteID string
	HelpVisible     bool
	Status          StatusBar
	Keys            GlobalKeyMap
	Quitting        bool
	commandInput    textinput.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// BannerExpireMsg fires when a banner's dwell timer elapses. Seq identifies
// the banner the timer was armed for; a newer banner ignores stale timers.
type BannerExpireMsg struct {
	Seq int
}

func NewModel(tasks *taskstore.Store, selector *dateview.Selector, relay *notify.Relay) Model {
	title := textinput.New()
	title.Placeholder = "what needs doing"
	title.CharLimit = 120
	title.Focus()

	timeIn := textinput.New()
	timeIn.Placeholder = "e.g. 09:30 AM"
	timeIn.CharLimit = 16

	cmdIn := textinput.New()
	cmdIn.Placeholder = "add pay rent @14:00 | goto 2024-01-15 | today"
	cmdIn.CharLimit = 200

	return Model{
		Tasks:       tasks,
		Selector:    selector,
		Relay:       relay,
		CurrentView: ViewTasks,
		Create: CreateState{
			titleInput: title,
			timeInput:  timeIn,
			Field:      fieldTitle,
		},
		Keys: GlobalKeyMap{
			PrevDay: "h",
			NextDay: "l",
			Today:   "t",
			Up:      "k",
			Down:    "j",
			Add:     "a",
			Delete:  "d",
			Help:    "?",
			Quit:    "q",
		},
		commandInput: cmdIn,
	}
}
