package assets

import (
	_ "embed"
	"fmt"

	"github.com/classkit/badge-scan-go/domain/attendance"
)

// RosterJSON contains the raw bytes of the bundled sample roster.
//
//go:embed roster.json
var RosterJSON []byte

// Roster parses the embedded sample roster.
func Roster() ([]attendance.Student, error) {
	if len(RosterJSON) == 0 {
		return nil, fmt.Errorf("embedded roster.json is empty")
	}
	return attendance.ParseRoster(RosterJSON)
}
