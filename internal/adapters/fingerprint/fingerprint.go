// Package fingerprint computes stable digests of replay sessions.
package fingerprint

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher fingerprints sessions with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the session name, task declarations and timeline.
// Two sessions with the same fingerprint replay to the same task summaries.
func (h *Hasher) Fingerprint(session *domain.Session) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(session.Name)
	_, _ = hasher.Write([]byte{0})

	h.hashTasks(session.Tasks, hasher)
	_, _ = hasher.Write([]byte{0}) // Section separator

	h.hashEvents(session.Events, hasher)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// hashTasks hashes task specs depth-first. Each level is closed by an extra separator
// so that siblings and children cannot be confused.
func (h *Hasher) hashTasks(specs []domain.TaskSpec, hasher *xxhash.Digest) {
	for _, spec := range specs {
		_, _ = hasher.WriteString(spec.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(spec.Description)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(spec.Note)
		_, _ = hasher.Write([]byte{0})
		h.hashTasks(spec.SubTasks, hasher)
	}
	_, _ = hasher.Write([]byte{1})
}

func (h *Hasher) hashEvents(events []domain.Event, hasher *xxhash.Digest) {
	for _, ev := range events {
		_, _ = hasher.WriteString(strconv.FormatInt(int64(ev.At), 10))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(ev.Task.String())
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(string(ev.Action))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(ev.Text)
		_, _ = hasher.Write([]byte{0})
	}
}
