package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/render"
	"github.com/terraincognita07/rangepicker/internal/services"
)

// RunPrintCommand builds a throwaway session from args and writes its
// terminal rendering to out.
func RunPrintCommand(args []string, out io.Writer, today time.Time) error {
	flags := flag.NewFlagSet("print", flag.ContinueOnError)
	flags.SetOutput(out)

	todayDate := models.DateFromTime(today)
	from := flags.String("from", fmt.Sprintf("%04d-01-01", todayDate.Year), "horizon start (YYYY-MM-DD)")
	to := flags.String("to", fmt.Sprintf("%04d-12-31", todayDate.Year), "horizon end (YYYY-MM-DD)")
	panes := flags.Int("panes", models.DefaultPaneCount, "number of month panes (1-12)")
	start := flags.String("start", "", "selection start (YYYY-MM-DD)")
	end := flags.String("end", "", "selection end (YYYY-MM-DD)")
	pick := flags.String("pick", "", "comma separated dates to pick in order after construction")

	if err := flags.Parse(args); err != nil {
		return err
	}

	horizon, err := parseHorizon(*from, *to)
	if err != nil {
		return err
	}
	selection, err := parseSelection(*start, *end)
	if err != nil {
		return err
	}

	session, err := services.NewPickerSession(services.SessionOptions{
		Horizon:   horizon,
		PaneCount: *panes,
		Selection: selection,
	}, nil)
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}

	if *pick != "" {
		for _, raw := range strings.Split(*pick, ",") {
			date, err := models.ParseCalendarDate(raw)
			if err != nil {
				return fmt.Errorf("parse -pick: %w", err)
			}
			if _, err := session.PickDate(date); err != nil {
				return fmt.Errorf("pick %s: %w", date, err)
			}
		}
	}

	view, err := session.View()
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}

	_, err = fmt.Fprintln(out, render.Session(view))
	return err
}

func parseHorizon(from string, to string) (models.Horizon, error) {
	start, err := models.ParseCalendarDate(from)
	if err != nil {
		return models.Horizon{}, fmt.Errorf("parse -from: %w", err)
	}
	end, err := models.ParseCalendarDate(to)
	if err != nil {
		return models.Horizon{}, fmt.Errorf("parse -to: %w", err)
	}
	return models.NewHorizon(start, end)
}

func parseSelection(start string, end string) (models.Selection, error) {
	if start == "" && end == "" {
		return models.Selection{}, nil
	}
	if start == "" {
		return models.Selection{}, errors.New("-end requires -start")
	}

	selection := models.Selection{}
	date, err := models.ParseCalendarDate(start)
	if err != nil {
		return models.Selection{}, fmt.Errorf("parse -start: %w", err)
	}
	selection.Start = date

	if end != "" {
		date, err := models.ParseCalendarDate(end)
		if err != nil {
			return models.Selection{}, fmt.Errorf("parse -end: %w", err)
		}
		selection.End = date
	}
	return selection.Normalized(), nil
}
