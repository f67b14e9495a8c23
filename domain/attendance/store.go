package attendance

import (
	"log/slog"
	"sync"
)

// Status messages shown on the status line after a scan attempt.
const (
	ScannedPrefix = "Scanned: "
	MsgNotFound   = "Student not found for this barcode!"
)

// MatchOutcome is the result of matching decoded text against the roster.
type MatchOutcome struct {
	Found   bool
	Student *Student // snapshot of the matched student, nil when not found
}

// Store owns the roster, the last-scanned result and the status message.
// Scans may arrive from the decode goroutine while the UI thread reads
// display state, so all access goes through the mutex.
type Store struct {
	mu          sync.Mutex
	students    []Student
	lastScanned *Student
	status      string
	revision    uint64
	logger      *slog.Logger
}

// NewStore returns a Store owning the given roster slice.
func NewStore(students []Student, logger *slog.Logger) *Store {
	return &Store{students: students, logger: logger}
}

// RecordScan matches decoded barcode text against student IDs (case-sensitive,
// first match wins). On a hit the student's attendance is set to Present;
// scanning an already-present student is a value no-op but still re-displays
// them. A miss leaves the roster untouched. Either way the last-scan display
// and status message reflect this attempt.
func (s *Store) RecordScan(code string) MatchOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ScannedPrefix + code
	s.revision++

	for i := range s.students {
		if s.students[i].ID == code {
			s.students[i].Attendance = Present
			snap := s.students[i]
			s.lastScanned = &snap
			if s.logger != nil {
				s.logger.Info("student marked present", "id", snap.ID, "name", snap.Name)
			}
			return MatchOutcome{Found: true, Student: &snap}
		}
	}

	s.lastScanned = nil
	s.status = MsgNotFound
	if s.logger != nil {
		s.logger.Info("scan matched no student", "code", code)
	}
	return MatchOutcome{}
}

// Students returns a copy of the roster for display.
func (s *Store) Students() []Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Student, len(s.students))
	copy(out, s.students)
	return out
}

// LastScanned returns a snapshot of the most recently matched student,
// or nil when the last attempt missed (or nothing was scanned yet).
func (s *Store) LastScanned() *Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastScanned == nil {
		return nil
	}
	snap := *s.lastScanned
	return &snap
}

// Status returns the current human-readable status message.
func (s *Store) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetStatus overwrites the status message (used by the scan session for
// camera and image errors).
func (s *Store) SetStatus(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = msg
	s.revision++
}

// Revision increments on every mutation; presenters poll it to avoid
// rebuilding the table on every tick.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// PresentCount reports how many students are currently marked present.
func (s *Store) PresentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.students {
		if s.students[i].Attendance == Present {
			n++
		}
	}
	return n
}
