package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Title:     "Buy a pack of coffee",
		Time:      "10:30 - 11:00",
		Category:  CategoryPersonal,
		CreatedAt: 1705312800000,
		Date:      "2024-01-15",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateOptionalFieldsAbsent(t *testing.T) {
	task := Task{ID: "task-2", Title: "Untimed task"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task without optionals, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankTitle(t *testing.T) {
	task := Task{ID: "task-3", Title: "   "}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank title, got nil")
	}
}

func TestTaskValidateInvalidCategory(t *testing.T) {
	task := Task{ID: "task-4", Title: "Task", Category: Category("chores")}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got: %v", err)
	}
}

func TestTaskValidateInvalidDate(t *testing.T) {
	task := Task{ID: "task-5", Title: "Task", Date: "15-01-2024"}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got: %v", err)
	}
}

func TestNewTaskIDUniqueWithinMillisecond(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTaskID(now)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
		if !strings.HasPrefix(id, "task_1705320000000_") {
			t.Fatalf("unexpected id shape: %s", id)
		}
	}
}

func TestCurrentDate(t *testing.T) {
	now := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := CurrentDate(now); got != "2024-03-07" {
		t.Fatalf("expected 2024-03-07, got %s", got)
	}
}

func TestCategoriesAllValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.IsValid() {
			t.Fatalf("category %q listed but not valid", c)
		}
	}
}
