package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized crewplan storage at %s\n", ctx.Store.GetStorePath())
	fmt.Println("Default calendar: Monday-Friday, 08:00-12:00 and 13:00-17:00")
	fmt.Println("Adjust it with 'crewplan calendar import' or 'crewplan calendar set-hours'.")
	return nil
}
