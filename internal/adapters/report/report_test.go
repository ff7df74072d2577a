package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stint/internal/adapters/report"
	"go.trai.ch/stint/internal/core/domain"
)

func sampleReports() []domain.Report {
	return []domain.Report{
		{
			Session:     "release",
			Fingerprint: "00000000deadbeef",
			Events:      3,
			Tasks: []domain.Summary{
				{
					Path:        domain.NewTaskPath("release"),
					Description: "Cut the release",
					State:       domain.TaskStateIdle,
					TimeTaken:   90 * time.Minute,
					SubTasks: []domain.Summary{
						{
							Path:      domain.NewTaskPath("release/docs"),
							Note:      "waiting on review",
							State:     domain.TaskStateCompleted,
							TimeTaken: 30*time.Minute + 400*time.Millisecond,
						},
						{
							Path:    domain.NewTaskPath("release/notes"),
							State:   domain.TaskStateInProgress,
							Blocked: true,
						},
					},
				},
			},
		},
		{Session: "empty", Fingerprint: "0000000000000001"},
	}
}

func TestText_Report(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewText(termenv.Ascii)

	require.NoError(t, r.Report(&buf, sampleReports()))
	out := buf.String()

	assert.Contains(t, out, "release  fingerprint=00000000deadbeef events=3")
	assert.Contains(t, out, "○ release")
	assert.Contains(t, out, "1h30m0s  Cut the release")
	assert.Contains(t, out, "✓ docs")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "30m0s")
	assert.Contains(t, out, "note: waiting on review")
	assert.Contains(t, out, "● notes")
	assert.Contains(t, out, "! blocked")
	assert.Contains(t, out, "total 2h0m0s")
	assert.Contains(t, out, "empty  fingerprint=0000000000000001 events=0")
	assert.Contains(t, out, "total 0s")
	assert.NotContains(t, out, "\x1b[", "ascii profile must not emit escape sequences")

	// Children are indented one level deeper than their parent.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "✓ docs") {
			assert.True(t, strings.HasPrefix(line, "    ✓"), "unexpected indentation: %q", line)
		}
	}
}

func TestJSON_Report(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.NewJSON().Report(&buf, sampleReports()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "release", decoded[0]["session"])

	tasks, ok := decoded[0]["tasks"].([]any)
	require.True(t, ok)
	root, ok := tasks[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "release", root["path"])
	assert.Equal(t, "idle", root["state"])
	assert.InDelta(t, float64(90*time.Minute), root["time_taken"], 0)
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) { return 0, errors.New("disk full") }

func TestReport_WriteError(t *testing.T) {
	err := report.NewText(termenv.Ascii).Report(failingWriter{}, sampleReports())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write report")

	err = report.NewJSON().Report(failingWriter{}, sampleReports())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to encode report")
}

func TestNew(t *testing.T) {
	r, err := report.New("text", false)
	require.NoError(t, err)
	assert.IsType(t, &report.Text{}, r)

	r, err = report.New("", false)
	require.NoError(t, err)
	assert.IsType(t, &report.Text{}, r)

	r, err = report.New("JSON", false)
	require.NoError(t, err)
	assert.IsType(t, &report.JSON{}, r)

	_, err = report.New("yaml", false)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownFormat.Error())
}

func TestText_Report_AlignsWideNames(t *testing.T) {
	reports := []domain.Report{{
		Session: "unicode",
		Tasks: []domain.Summary{
			{Path: domain.NewTaskPath("café"), State: domain.TaskStateIdle},
			{Path: domain.NewTaskPath("ab"), State: domain.TaskStateIdle},
			{Path: domain.NewTaskPath("日本"), State: domain.TaskStateIdle},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, report.NewText(termenv.Ascii).Report(&buf, reports))

	columns := map[int]struct{}{}
	for _, line := range strings.Split(buf.String(), "\n") {
		i := strings.Index(line, "idle")
		if i < 0 {
			continue
		}
		columns[lipgloss.Width(line[:i])] = struct{}{}
	}
	assert.Len(t, columns, 1, "state column is misaligned:\n%s", buf.String())
}

func TestTerminalText_PlainWhenNotATerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")

	var buf bytes.Buffer
	require.NoError(t, report.NewTerminalText(true).Report(&buf, sampleReports()))
	assert.Contains(t, buf.String(), "total 2h0m0s")
	assert.NotContains(t, buf.String(), "\x1b[")
}
