package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/crewplan/internal/models"
)

type CalendarShowCmd struct{}

func (c *CalendarShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cal := settings.Calendar

	fmt.Println("Working hours:")
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		windows := cal.Hours[wd]
		if len(windows) == 0 {
			fmt.Printf("  %-10s -\n", wd)
			continue
		}
		var spans []string
		for _, win := range windows {
			spans = append(spans, fmt.Sprintf("%s-%s", win.Start, win.End))
		}
		fmt.Printf("  %-10s %s\n", wd, strings.Join(spans, ", "))
	}

	if len(cal.Holidays) == 0 {
		fmt.Println("No holidays configured.")
		return nil
	}
	holidays := append([]string(nil), cal.Holidays...)
	sort.Strings(holidays)
	fmt.Printf("Holidays: %s\n", strings.Join(holidays, ", "))
	return nil
}

// calendarFile is the YAML shape for calendar import, with weekdays by
// name.
type calendarFile struct {
	Hours    map[string][]models.Window `yaml:"hours"`
	Holidays []string                   `yaml:"holidays"`
}

type CalendarImportCmd struct {
	File string `arg:"" help:"YAML calendar file (hours by weekday name, plus holidays)." type:"existingfile"`
}

func (c *CalendarImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	var file calendarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse calendar file: %w", err)
	}

	cal := models.Calendar{
		Hours:    models.WorkingHours{},
		Holidays: file.Holidays,
	}
	for name, windows := range file.Hours {
		wd, err := parseWeekday(name)
		if err != nil {
			return err
		}
		cal.Hours[wd] = windows
	}

	if result := ctx.Validator.ValidateCalendar(cal); result.HasErrors() {
		return result.Error()
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.Calendar = cal
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Imported calendar from %s (%s, %s)\n", c.File,
		pluralize(len(cal.Hours), "working day", "working days"),
		pluralize(len(cal.Holidays), "holiday", "holidays"))
	return nil
}

type CalendarSetHoursCmd struct {
	Day     string   `arg:"" help:"Weekday name or number (0=Sunday)."`
	Windows []string `arg:"" optional:"" help:"Windows as HH:MM-HH:MM; none clears the day."`
}

func (c *CalendarSetHoursCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	wd, err := parseWeekday(c.Day)
	if err != nil {
		return err
	}

	var windows []models.Window
	for _, spec := range c.Windows {
		parts := strings.SplitN(spec, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid window %q, expected HH:MM-HH:MM", spec)
		}
		windows = append(windows, models.Window{Start: parts[0], End: parts[1]})
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Calendar.Hours == nil {
		settings.Calendar.Hours = models.WorkingHours{}
	}
	if len(windows) == 0 {
		delete(settings.Calendar.Hours, wd)
	} else {
		settings.Calendar.Hours[wd] = windows
	}

	if result := ctx.Validator.ValidateCalendar(settings.Calendar); result.HasErrors() {
		return result.Error()
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	if len(windows) == 0 {
		fmt.Printf("Cleared working hours for %s\n", wd)
	} else {
		fmt.Printf("Set working hours for %s\n", wd)
	}
	return nil
}

type HolidayAddCmd struct {
	Dates []string `arg:"" help:"Holiday dates (YYYY-MM-DD)."`
}

func (c *HolidayAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	existing := settings.Calendar.HolidaySet()
	added := 0
	for _, day := range c.Dates {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return fmt.Errorf("invalid holiday date %q (expected YYYY-MM-DD)", day)
		}
		if !existing[day] {
			settings.Calendar.Holidays = append(settings.Calendar.Holidays, day)
			existing[day] = true
			added++
		}
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Added %s\n", pluralize(added, "holiday", "holidays"))
	return nil
}
