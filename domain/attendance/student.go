package attendance

import (
	"encoding/json"
	"fmt"
	"os"
)

// Attendance is a student's attendance flag. It only moves forward:
// Absent becomes Present on a matching scan and is never reverted.
type Attendance string

const (
	Absent  Attendance = "Absent"
	Present Attendance = "Present"
)

// Student is one roster entry. ID is the scan key and is never mutated.
type Student struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Branch     string     `json:"branch"`
	Class      string     `json:"class"`
	Attendance Attendance `json:"attendance"`
}

// ParseRoster decodes a roster from JSON bytes. Entries with no attendance
// value start Absent. ID uniqueness is assumed, not enforced.
func ParseRoster(data []byte) ([]Student, error) {
	var students []Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, fmt.Errorf("roster: decode: %w", err)
	}
	for i := range students {
		if students[i].Attendance == "" {
			students[i].Attendance = Absent
		}
	}
	return students, nil
}

// LoadRoster reads a roster JSON file from disk.
func LoadRoster(path string) ([]Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %s: %w", path, err)
	}
	return ParseRoster(data)
}
