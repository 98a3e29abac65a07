package api

import (
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func buildSessionViewResponse(view services.SessionView) sessionViewResponse {
	panes := make([]paneResponse, 0, len(view.Panes))
	for _, pane := range view.Panes {
		weeks := make([]weekResponse, 0, len(pane.Grid.Weeks))
		for _, row := range pane.Grid.Weeks {
			cells := services.ClassifyWeek(row, pane.Month, view.Horizon, view.Selection, view.Preview)
			days := make([]dayResponse, 0, len(cells))
			for _, cell := range cells {
				days = append(days, dayResponse{
					Date:      cell.Date.String(),
					Day:       cell.Date.Day,
					InMonth:   cell.InMonth,
					InHorizon: cell.InHorizon,
					Selected:  cell.Selected,
					Previewed: cell.Previewed,
					Border:    cell.Border,
				})
			}
			weeks = append(weeks, weekResponse{Week: row.WeekNumber, Days: days})
		}

		panes = append(panes, paneResponse{
			Index:   pane.Index,
			Year:    pane.Month.Year,
			Month:   pane.Month.Month,
			Label:   pane.Month.Label(),
			Blocked: pane.Blocked,
			Weeks:   weeks,
		})
	}

	return sessionViewResponse{
		State:        view.State.String(),
		Horizon:      buildRangeResponse(view.Horizon.Start, view.Horizon.End),
		Panes:        panes,
		Selection:    buildRangeResponse(view.Selection.Start, view.Selection.End),
		Preview:      buildRangeResponse(view.Preview.Start, view.Preview.End),
		OutOfHorizon: view.OutOfHorizon,
	}
}

func buildRangeResponse(start models.CalendarDate, end models.CalendarDate) rangeResponse {
	return rangeResponse{Start: dateOrNil(start), End: dateOrNil(end)}
}

func dateOrNil(date models.CalendarDate) *string {
	if date.IsZero() {
		return nil
	}
	value := date.String()
	return &value
}

func buildPresetResponse(preset models.PickerPreset) presetResponse {
	return presetResponse{
		ID:           preset.ID,
		Name:         preset.Name,
		HorizonStart: preset.HorizonStart,
		HorizonEnd:   preset.HorizonEnd,
		Panes:        preset.PaneCount,
		CreatedAt:    preset.CreatedAt,
	}
}
