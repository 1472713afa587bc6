package formatter

import (
	"encoding/csv"
	"io"

	"github.com/penwyp/go-oat-search/internal/core/model"
	"github.com/penwyp/go-oat-search/internal/util"
)

type CSVFormatter struct {
	w  io.Writer
	tp *util.TimeProvider
}

func NewCSVFormatter(w io.Writer, tp *util.TimeProvider) *CSVFormatter {
	return &CSVFormatter{w: w, tp: tp}
}

// Format writes one record per detection. Cells are never truncated.
func (f *CSVFormatter) Format(list model.DetectionList) error {
	w := csv.NewWriter(f.w)

	if err := w.Write([]string{"Detected", "Risk", "Filter", "Entity", "Source"}); err != nil {
		return err
	}
	for _, row := range BuildRows(list, f.tp) {
		record := []string{row.Detected, row.Risk, row.Filter, row.Entity, row.Source}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
