package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrInvalidDate     = errors.New("model: invalid task date")
)

// DateLayout is the YYYY-MM-DD form every task date is stored in.
const DateLayout = "2006-01-02"

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategorySport    Category = "sport"
	CategoryIdea     Category = "idea"
	CategoryFood     Category = "food"
	CategoryMusic    Category = "music"
	CategoryOthers   Category = "others"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategorySport, CategoryIdea, CategoryFood, CategoryMusic, CategoryOthers:
		return true
	default:
		return false
	}
}

// Categories lists the categories offered on the create screen, in display order.
func Categories() []Category {
	return []Category{
		CategoryIdea,
		CategoryFood,
		CategoryWork,
		CategorySport,
		CategoryMusic,
		CategoryOthers,
	}
}

// Task is the sole persisted entity: one to-do item scoped to one calendar day.
// Time is a free-form display label, never validated as a clock time.
// CreatedAt is epoch milliseconds; Date is the day the task belongs to and is
// immutable after creation.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Time      string   `json:"time,omitempty"`
	Completed bool     `json:"completed"`
	Category  Category `json:"category,omitempty"`
	CreatedAt int64    `json:"createdAt,omitempty"`
	Date      string   `json:"date,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.Category != "" && !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.Date != "" {
		if _, err := time.Parse(DateLayout, t.Date); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
		}
	}
	return nil
}

// NewTaskID returns an identifier unique across calls, even within the same
// millisecond: the timestamp keeps ids roughly sortable, the uuid suffix
// rules out collisions from rapid successive calls.
func NewTaskID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("task_%d_%s", now.UnixMilli(), suffix)
}

// CurrentDate formats now as a task date in the local calendar.
func CurrentDate(now time.Time) string {
	return now.Format(DateLayout)
}
