package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EncodeTasks serializes the entire collection as a JSON array. The storage
// payload is always the whole collection, never a per-day slice.
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("model: encode tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses a stored payload back into a task collection. Anything
// that is not a JSON array is an error; callers treat that as "no stored data".
func DecodeTasks(data []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("model: decode tasks: %w", err)
	}
	if tasks == nil {
		return nil, errors.New("model: stored tasks payload is not an array")
	}
	return tasks, nil
}
