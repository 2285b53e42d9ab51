package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/crewplan/internal/models"
	"github.com/julianstephens/crewplan/internal/phase"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return &parsed
}

func TestPrintTimeline_NoScheduledTasks(t *testing.T) {
	var buf bytes.Buffer
	PrintTimeline(&buf, []models.Task{{Code: "A", Label: "Unscheduled"}})

	if !strings.Contains(buf.String(), "No scheduled tasks") {
		t.Errorf("expected hint about missing schedule, got: %s", buf.String())
	}
}

func TestPrintTimeline_RendersEachTask(t *testing.T) {
	tasks := []models.Task{
		{
			Code: "FOUND-01", Label: "Pour foundation",
			ScheduledStart: ts(t, "2026-01-05 08:00"), ScheduledEnd: ts(t, "2026-01-07 17:00"),
		},
		{
			Code: "FRAME-01", Label: "Frame walls",
			ScheduledStart: ts(t, "2026-01-08 08:00"), ScheduledEnd: ts(t, "2026-01-12 17:00"),
		},
		{Code: "PAINT-01", Label: "Paint"},
	}

	var buf bytes.Buffer
	PrintTimeline(&buf, tasks)
	out := buf.String()

	for _, want := range []string{"Pour foundation", "Frame walls", "█", "Not scheduled:", "PAINT-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintPhaseSummary(t *testing.T) {
	seq := phase.Sequence([]models.LineItem{
		{Description: "Pour concrete foundation", Quantity: 10, Unit: "cy", Rate: 150},
		{Description: "Paint interior walls", Quantity: 400, Unit: "sf", Rate: 2},
	})
	groups := phase.Groups(seq)

	var buf bytes.Buffer
	PrintPhaseSummary(&buf, groups, "renovation")
	out := buf.String()

	for _, want := range []string{"renovation", "foundation", "painting", "subtotal: 1500.00", "subtotal: 800.00", "Total: 2300.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
