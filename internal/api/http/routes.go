package httpapi

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tempmap/internal/forecast"
	"tempmap/internal/render"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. tz is the civil
// timezone selection timestamps are parsed in.
func RegisterRoutes(app *fiber.App, service *forecast.Service, tz *time.Location) {
	v1 := app.Group("/api/v1")

	v1.Get("/dataset", func(c *fiber.Ctx) error {
		snap := service.Snapshot(c.Context())
		return c.JSON(datasetSummary(snap))
	})

	v1.Get("/columns", func(c *fiber.Ctx) error {
		var q columnsQuery
		q.Time = c.Query("time")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		selected, err := parseSelection(q.Time, tz)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap := service.Snapshot(c.Context())

		// Exact-match filter: a timestamp absent from the dataset yields
		// zero rows, not an error.
		matched := snap.Data.FilterByTime(selected)
		rows := render.Rows(matched)

		table := make([]tableRow, 0, len(matched))
		for _, s := range matched {
			table = append(table, tableRow{
				Location:    s.Location,
				Temperature: s.Temperature,
			})
		}

		return c.JSON(fiber.Map{
			"time":     selected.Format(forecast.HourLayout),
			"rows":     rows,
			"table":    table,
			"warnings": snap.Failures,
		})
	})

	v1.Post("/refresh", func(c *fiber.Ctx) error {
		snap := service.Refresh(c.Context())
		return c.JSON(datasetSummary(snap))
	})

	v1.Get("/view", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"view":    render.DefaultView,
			"radius":  render.ColumnRadius,
			"tooltip": render.TooltipHTML,
		})
	})
}

// columnsQuery holds query parameters for the columns endpoint.
type columnsQuery struct {
	Time string `validate:"required"`
}

// tableRow is one line of the companion display table.
type tableRow struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
}

// datasetResponse summarizes the retrieved time grid for the UI. Empty is
// the "no data" state the frontend uses to disable the time selector.
type datasetResponse struct {
	Empty    bool                    `json:"empty"`
	Times    []string                `json:"times"`
	Min      string                  `json:"min,omitempty"`
	Max      string                  `json:"max,omitempty"`
	Warnings []forecast.FetchFailure `json:"warnings,omitempty"`
}

func datasetSummary(snap forecast.Snapshot) datasetResponse {
	resp := datasetResponse{
		Times:    []string{},
		Warnings: snap.Failures,
	}

	min, max, ok := snap.Data.TimeBounds()
	if !ok {
		resp.Empty = true
		return resp
	}

	resp.Min = min.Format(forecast.HourLayout)
	resp.Max = max.Format(forecast.HourLayout)
	for _, ts := range snap.Data.Timestamps() {
		resp.Times = append(resp.Times, ts.Format(forecast.HourLayout))
	}
	return resp
}

// parseSelection tries the hourly wire layout first, then RFC3339.
func parseSelection(s string, tz *time.Location) (time.Time, error) {
	if ts, err := time.ParseInLocation(forecast.HourLayout, s, tz); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.In(tz), nil
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid time format; use YYYY-MM-DDTHH:MM or RFC3339")
}
