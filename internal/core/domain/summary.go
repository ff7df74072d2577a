package domain

import (
	"strconv"
	"time"
)

// Summary is a read-only view of a task and its sub-tasks.
type Summary struct {
	Path        TaskPath      `json:"path"`
	Description string        `json:"description,omitempty"`
	Note        string        `json:"note,omitempty"`
	State       TaskState     `json:"state"`
	Blocked     bool          `json:"blocked"`
	TimeTaken   time.Duration `json:"time_taken"`
	SubTasks    []Summary     `json:"sub_tasks,omitempty"`
}

// Summarize builds a summary tree rooted at t.
// Tasks held outside a Board have no names, so children are addressed by 1-based position.
func Summarize(path TaskPath, t *Task) Summary {
	s := summaryOf(path, t)
	for i, child := range t.SubTasks() {
		s.SubTasks = append(s.SubTasks, Summarize(path.Child(strconv.Itoa(i+1)), child))
	}
	return s
}

func summaryOf(path TaskPath, t *Task) Summary {
	return Summary{
		Path:        path,
		Description: t.Description(),
		Note:        t.Note(),
		State:       t.State(),
		Blocked:     t.Blocked(),
		TimeTaken:   t.TimeTaken(),
	}
}

// Total sums the time taken by the node and all of its descendants.
// It is a display aid only; task state never derives from it.
func (s Summary) Total() time.Duration {
	total := s.TimeTaken
	for _, child := range s.SubTasks {
		total += child.Total()
	}
	return total
}

// Report is the outcome of replaying one session.
type Report struct {
	RunID       string    `json:"run_id"`
	Session     string    `json:"session"`
	Fingerprint string    `json:"fingerprint"`
	Events      int       `json:"events"`
	Started     time.Time `json:"started"`
	Ended       time.Time `json:"ended"`
	Tasks       []Summary `json:"tasks"`
}
