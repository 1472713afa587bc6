package formatter

import (
	"fmt"

	"github.com/penwyp/go-oat-search/internal/core/model"
	"github.com/penwyp/go-oat-search/internal/util"
)

// DetectedLayout is how detection times are shown in the table
const DetectedLayout = "2006-01-02 15:04:05"

// DetectionRow is one table line derived from a detection
type DetectionRow struct {
	Detected string
	Risk     string
	Filter   string
	Entity   string
	Source   string
}

// BuildRows flattens a detection page into table rows, in response order
func BuildRows(list model.DetectionList, tp *util.TimeProvider) []DetectionRow {
	rows := make([]DetectionRow, 0, len(list.Items))
	for _, d := range list.Items {
		filter := ""
		if len(d.Filters) > 0 {
			filter = d.Filters[0].Name
			if extra := len(d.Filters) - 1; extra > 0 {
				filter = fmt.Sprintf("%s (+%d)", filter, extra)
			}
		}

		rows = append(rows, DetectionRow{
			Detected: tp.FormatRFC3339(d.DetectedDateTime, DetectedLayout),
			Risk:     d.HighestRisk(),
			Filter:   filter,
			Entity:   d.DisplayEntity(),
			Source:   d.Source,
		})
	}
	return rows
}
