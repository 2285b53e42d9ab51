// Package report renders schedules and phase summaries as styled text.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/crewplan/internal/models"
	"github.com/julianstephens/crewplan/internal/phase"
)

// barWidth is the number of columns the timeline span is scaled into.
const barWidth = 48

// Styles holds the report rendering styles
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Bar    lipgloss.Style
	Dates  lipgloss.Style
	Trade  lipgloss.Style
	Total  lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Label:  lipgloss.NewStyle().Width(24),
		Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Dates:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Trade:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Total:  lipgloss.NewStyle().Bold(true),
	}
}

// PrintTimeline renders the scheduled tasks as horizontal bars scaled
// to the overall span, in the order given (callers pass topologically
// ordered sets). Unscheduled tasks are listed below the chart.
func PrintTimeline(out io.Writer, tasks []models.Task) {
	styles := NewStyles()

	var scheduled, unscheduled []models.Task
	for _, t := range tasks {
		if t.IsScheduled() {
			scheduled = append(scheduled, t)
		} else {
			unscheduled = append(unscheduled, t)
		}
	}

	if len(scheduled) == 0 {
		fmt.Fprintln(out, "No scheduled tasks. Run 'crewplan schedule' first.")
		return
	}

	spanStart := *scheduled[0].ScheduledStart
	spanEnd := *scheduled[0].ScheduledEnd
	for _, t := range scheduled[1:] {
		if t.ScheduledStart.Before(spanStart) {
			spanStart = *t.ScheduledStart
		}
		if t.ScheduledEnd.After(spanEnd) {
			spanEnd = *t.ScheduledEnd
		}
	}
	span := spanEnd.Sub(spanStart)
	if span <= 0 {
		span = time.Hour
	}

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("Schedule %s – %s",
		spanStart.Format("Mon Jan 2"), spanEnd.Format("Mon Jan 2 2006"))))
	fmt.Fprintln(out)

	for _, t := range scheduled {
		offset := int(float64(t.ScheduledStart.Sub(spanStart)) / float64(span) * barWidth)
		length := int(float64(t.ScheduledEnd.Sub(*t.ScheduledStart)) / float64(span) * barWidth)
		if length < 1 {
			length = 1
		}
		if offset+length > barWidth {
			length = barWidth - offset
		}

		label := t.Label
		if label == "" {
			label = t.Code
		}
		bar := strings.Repeat(" ", offset) + styles.Bar.Render(strings.Repeat("█", length))
		dates := styles.Dates.Render(fmt.Sprintf("%s → %s",
			t.ScheduledStart.Format("01-02 15:04"), t.ScheduledEnd.Format("01-02 15:04")))
		fmt.Fprintf(out, "%s %-*s %s\n", styles.Label.Render(label), barWidth, bar, dates)
	}

	if len(unscheduled) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Header.Render("Not scheduled:"))
		for _, t := range unscheduled {
			fmt.Fprintf(out, "  %s  %s\n", t.Code, t.Label)
		}
	}
}

// PrintPhaseSummary renders sequenced line-item groups in build order
// with per-phase subtotals.
func PrintPhaseSummary(out io.Writer, groups []phase.Group, projectType string) {
	styles := NewStyles()

	if projectType != "" {
		fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("Project type: %s", projectType)))
		fmt.Fprintln(out)
	}

	var grand float64
	for _, g := range groups {
		fmt.Fprintln(out, styles.Trade.Render(fmt.Sprintf("%d. %s", g.PhaseOrder+1, g.Phase)))
		for _, it := range g.Items {
			fmt.Fprintf(out, "    %-40s %8.2f %-6s @ %9.2f  %10.2f\n",
				it.Description, it.Quantity, it.Unit, it.Rate, it.Total())
		}
		fmt.Fprintf(out, "    %s\n", styles.Total.Render(fmt.Sprintf("subtotal: %.2f", g.Total)))
		grand += g.Total
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Total.Render(fmt.Sprintf("Total: %.2f", grand)))
}
