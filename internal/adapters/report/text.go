// Package report renders replay reports.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/stint/internal/ui/output"
	"go.trai.ch/stint/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*Text)(nil)

const indentWidth = 2

// Text renders reports as an indented task tree.
type Text struct {
	profile termenv.Profile
	detect  bool
	color   bool
}

// NewText creates a Text reporter that colors output according to profile.
func NewText(profile termenv.Profile) *Text {
	return &Text{profile: profile}
}

// NewTerminalText creates a Text reporter that picks the color profile from the writer
// it renders to. color false forces plain output.
func NewTerminalText(color bool) *Text {
	return &Text{detect: true, color: color}
}

type textStyles struct {
	header    lipgloss.Style
	idle      lipgloss.Style
	active    lipgloss.Style
	completed lipgloss.Style
	blocked   lipgloss.Style
	faint     lipgloss.Style
}

func (t *Text) styles(w io.Writer) textStyles {
	profile := t.profile
	if t.detect {
		profile = output.ColorProfile(w, t.color)
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return textStyles{
		header:    r.NewStyle().Foreground(style.Iris).Bold(true),
		idle:      r.NewStyle().Foreground(style.Slate),
		active:    r.NewStyle().Foreground(style.Yellow),
		completed: r.NewStyle().Foreground(style.Green),
		blocked:   r.NewStyle().Foreground(style.Red),
		faint:     r.NewStyle().Faint(true),
	}
}

// Report writes every report in order, separated by a blank line.
func (t *Text) Report(w io.Writer, reports []domain.Report) error {
	st := t.styles(w)
	var b strings.Builder

	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(st.header.Render(rep.Session))
		fmt.Fprintf(&b, "  %s\n", st.faint.Render(fmt.Sprintf("fingerprint=%s events=%d", rep.Fingerprint, rep.Events)))

		width := nameWidth(rep.Tasks, 0)
		var total time.Duration
		for _, s := range rep.Tasks {
			writeSummary(&b, st, s, 1, width)
			total += s.Total()
		}
		fmt.Fprintf(&b, "%stotal %s\n", strings.Repeat(" ", indentWidth), formatDuration(total))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

func writeSummary(b *strings.Builder, st textStyles, s domain.Summary, depth, width int) {
	indent := strings.Repeat(" ", depth*indentWidth)
	name := s.Path.Base()
	pad := strings.Repeat(" ", width-depth*indentWidth-lipgloss.Width(name))

	icon, iconStyle := style.Circle, st.idle
	switch s.State {
	case domain.TaskStateInProgress:
		icon, iconStyle = style.Dot, st.active
	case domain.TaskStateCompleted:
		icon, iconStyle = style.Check, st.completed
	}

	fmt.Fprintf(b, "%s%s %s%s  %-11s  %8s",
		indent, iconStyle.Render(icon), name, pad, s.State.String(), formatDuration(s.TimeTaken))
	if s.Blocked {
		fmt.Fprintf(b, "  %s", st.blocked.Render(style.Warning+" blocked"))
	}
	if s.Description != "" {
		fmt.Fprintf(b, "  %s", s.Description)
	}
	b.WriteString("\n")

	if s.Note != "" {
		fmt.Fprintf(b, "%s    %s\n", indent, st.faint.Render("note: "+s.Note))
	}

	for _, child := range s.SubTasks {
		writeSummary(b, st, child, depth+1, width)
	}
}

// nameWidth returns the widest indented name in the forest.
func nameWidth(summaries []domain.Summary, depth int) int {
	width := 0
	for _, s := range summaries {
		width = max(width, (depth+1)*indentWidth+lipgloss.Width(s.Path.Base()), nameWidth(s.SubTasks, depth+1))
	}
	return width
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
