package phase

import (
	"sort"
	"strings"

	"github.com/julianstephens/crewplan/internal/models"
)

// Item is a line item annotated with its construction phase.
// SequenceOrder is PhaseOrder*100 plus the item's original index, which
// keeps input order stable within a phase and gives a unique global
// sort key for sets of up to 100 items.
type Item struct {
	models.LineItem
	Phase         Phase `json:"phase"`
	PhaseOrder    int   `json:"phase_order"`
	SequenceOrder int   `json:"sequence_order"`
}

// Sequence classifies each line item into its construction phase and
// returns the items sorted into build order. The input is not mutated.
func Sequence(items []models.LineItem) []Item {
	out := make([]Item, 0, len(items))
	for i, li := range items {
		p := Classify(li.Description)
		rank := p.Order()
		out = append(out, Item{
			LineItem:      li,
			Phase:         p,
			PhaseOrder:    rank,
			SequenceOrder: rank*100 + i,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SequenceOrder < out[j].SequenceOrder
	})
	return out
}

// Group is a run of sequenced items that share a phase, with the sum of
// their line totals.
type Group struct {
	Phase      Phase   `json:"phase"`
	PhaseOrder int     `json:"phase_order"`
	Items      []Item  `json:"items"`
	Total      float64 `json:"total"`
}

// Groups partitions sequenced items into per-phase groups ordered by
// build order.
func Groups(items []Item) []Group {
	byPhase := make(map[Phase]*Group)
	for _, it := range items {
		g, ok := byPhase[it.Phase]
		if !ok {
			g = &Group{Phase: it.Phase, PhaseOrder: it.PhaseOrder}
			byPhase[it.Phase] = g
		}
		g.Items = append(g.Items, it)
		g.Total += it.Total()
	}

	groups := make([]Group, 0, len(byPhase))
	for _, g := range byPhase {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].PhaseOrder < groups[j].PhaseOrder
	})
	return groups
}

// projectTypes are checked in order against the combined item text.
var projectTypes = []struct {
	label    string
	keywords []string
}{
	{"kitchen_remodel", []string{"kitchen"}},
	{"bathroom_remodel", []string{"bathroom", "bath ", "shower", "vanity"}},
	{"roofing", []string{"roof", "shingle"}},
	{"addition", []string{"addition", "bump-out", "bump out"}},
}

// DetectProjectType inspects the combined description text for coarse
// project categories. Informational only; it does not affect
// sequencing.
func DetectProjectType(items []models.LineItem) string {
	var sb strings.Builder
	for _, li := range items {
		sb.WriteString(strings.ToLower(li.Description))
		sb.WriteString(" ")
	}
	combined := sb.String()

	for _, pt := range projectTypes {
		for _, kw := range pt.keywords {
			if strings.Contains(combined, kw) {
				return pt.label
			}
		}
	}
	return "renovation"
}
