package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/crewplan/internal/models"
	"github.com/julianstephens/crewplan/internal/phase"
	"github.com/julianstephens/crewplan/internal/report"
)

type EstimateImportCmd struct {
	File   string `arg:"" help:"JSON file containing an array of line items." type:"existingfile"`
	Name   string `short:"n" help:"Estimate name." required:""`
	Client string `short:"c" help:"Client name."`
}

func (c *EstimateImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := readLineItems(c.File)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
	}

	est := models.Estimate{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Client:    c.Client,
		Items:     items,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddEstimate(est); err != nil {
		return err
	}

	fmt.Printf("Imported estimate %q with %s (ID: %s)\n",
		est.Name, pluralize(len(est.Items), "line item", "line items"), est.ID)
	fmt.Printf("Subtotal: %.2f\n", est.Subtotal())
	return nil
}

type EstimateShowCmd struct {
	ID        string `arg:"" help:"Estimate ID."`
	Sequenced bool   `short:"s" help:"Reorder line items into construction phases."`
}

func (c *EstimateShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	est, err := ctx.Store.GetEstimate(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Estimate: %s", est.Name)
	if est.Client != "" {
		fmt.Printf(" (client: %s)", est.Client)
	}
	fmt.Println()
	fmt.Println()

	if !c.Sequenced {
		for _, li := range est.Items {
			fmt.Printf("  %-40s %8.2f %-6s @ %9.2f  %10.2f\n",
				li.Description, li.Quantity, li.Unit, li.Rate, li.Total())
		}
		fmt.Printf("\nSubtotal: %.2f\n", est.Subtotal())
		return nil
	}

	sequenced := phase.Sequence(est.Items)
	groups := phase.Groups(sequenced)
	report.PrintPhaseSummary(os.Stdout, groups, phase.DetectProjectType(est.Items))
	return nil
}

type EstimateListCmd struct{}

func (c *EstimateListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	estimates, err := ctx.Store.GetAllEstimates()
	if err != nil {
		return fmt.Errorf("failed to get estimates: %w", err)
	}

	if len(estimates) == 0 {
		fmt.Println("No estimates found. Import one with 'crewplan estimate import'.")
		return nil
	}

	for _, est := range estimates {
		fmt.Printf("%s  %-24s %3d items  %10.2f  %s\n",
			est.ID, est.Name, len(est.Items), est.Subtotal(), est.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func readLineItems(path string) ([]models.LineItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse line items from %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no line items in %s", path)
	}
	return items, nil
}
