package model

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		tasks []Task
	}{
		{"empty", []Task{}},
		{"single with all fields", []Task{
			{ID: "task_1_a", Title: "Meeting on work", Time: "14:00", Completed: true, Category: CategoryWork, CreatedAt: 1705312800000, Date: "2024-01-15"},
		}},
		{"optionals absent", []Task{
			{ID: "task_2_b", Title: "Untimed"},
			{ID: "task_3_c", Title: "Team Football", Time: "20:00", Category: CategorySport, Date: "2024-01-16"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeTasks(tc.tasks)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeTasks(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.tasks) {
				t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, tc.tasks)
			}
		})
	}
}

func TestEncodeNilCollection(t *testing.T) {
	data, err := EncodeTasks(nil)
	if err != nil {
		t.Fatalf("encode nil: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array payload, got %s", data)
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	for _, payload := range []string{`{"id":"x"}`, `null`, `"tasks"`, `{broken`} {
		if _, err := DecodeTasks([]byte(payload)); err == nil {
			t.Fatalf("expected error for payload %s, got nil", payload)
		}
	}
}
