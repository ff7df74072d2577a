package progrock

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer that keeps every vertex and its log output in memory
// so the recorded intervals can be printed after a replay.
// Updates are forwarded to next when it is set.
type Journal struct {
	mu      sync.Mutex
	next    progrock.Writer
	order   []string
	entries map[string]*journalEntry
}

type journalEntry struct {
	name   string
	done   bool
	failed string
	logs   bytes.Buffer
}

// NewJournal creates an empty Journal. next may be nil.
func NewJournal(next progrock.Writer) *Journal {
	return &Journal{
		next:    next,
		entries: make(map[string]*journalEntry),
	}
}

// WriteStatus records vertex and log updates.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	for _, v := range update.Vertexes {
		e := j.entry(v.Id)
		e.name = v.Name
		if v.Completed != nil {
			e.done = true
			if v.Error != nil {
				e.failed = *v.Error
			}
		}
	}
	for _, l := range update.Logs {
		_, _ = j.entry(l.Vertex).logs.Write(l.Data)
	}
	j.mu.Unlock()

	if j.next != nil {
		return j.next.WriteStatus(update)
	}
	return nil
}

func (j *Journal) entry(id string) *journalEntry {
	e, ok := j.entries[id]
	if !ok {
		e = &journalEntry{}
		j.entries[id] = e
		j.order = append(j.order, id)
	}
	return e
}

// Render writes the recorded vertices in the order they were first seen and empties
// the journal.
func (j *Journal) Render(w io.Writer) error {
	j.mu.Lock()
	order, entries := j.order, j.entries
	j.order, j.entries = nil, make(map[string]*journalEntry)
	j.mu.Unlock()

	var b strings.Builder
	for _, id := range order {
		e := entries[id]
		status := "open"
		switch {
		case e.failed != "":
			status = "failed: " + e.failed
		case e.done:
			status = "done"
		}
		fmt.Fprintf(&b, "%s  %s\n", e.name, status)
		for line := range strings.Lines(e.logs.String()) {
			fmt.Fprintf(&b, "  %s", line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write interval log")
	}
	return nil
}

// Close closes the forwarded writer, if any.
func (j *Journal) Close() error {
	if j.next != nil {
		return j.next.Close()
	}
	return nil
}
