package cli

import (
	"os"

	"github.com/julianstephens/crewplan/internal/phase"
	"github.com/julianstephens/crewplan/internal/report"
)

// SequenceCmd classifies and orders line items from a file without
// persisting anything.
type SequenceCmd struct {
	File string `arg:"" help:"JSON file containing an array of line items." type:"existingfile"`
}

func (c *SequenceCmd) Run(ctx *Context) error {
	items, err := readLineItems(c.File)
	if err != nil {
		return err
	}

	sequenced := phase.Sequence(items)
	groups := phase.Groups(sequenced)
	report.PrintPhaseSummary(os.Stdout, groups, phase.DetectProjectType(items))
	return nil
}
