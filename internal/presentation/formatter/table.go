package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-oat-search/internal/core/model"
	"github.com/penwyp/go-oat-search/internal/util"
)

// MaxCellWidth caps every table cell, in display columns
const MaxCellWidth = 40

type TableFormatter struct {
	w       io.Writer
	tp      *util.TimeProvider
	headers []string
}

func NewTableFormatter(w io.Writer, tp *util.TimeProvider) *TableFormatter {
	return &TableFormatter{
		w:       w,
		tp:      tp,
		headers: []string{"Detected", "Risk", "Filter", "Entity", "Source"},
	}
}

func (f *TableFormatter) Format(list model.DetectionList) error {
	rows := BuildRows(list, f.tp)
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Detected,
			strings.ToUpper(row.Risk),
			util.TruncateString(row.Filter, MaxCellWidth),
			util.TruncateString(row.Entity, MaxCellWidth),
			util.TruncateString(row.Source, MaxCellWidth),
		})
	}

	widths := f.calculateColumnWidths(cells)

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, c := range cells {
		f.writeRow(&b, c, widths)
	}
	f.writeBorder(&b, widths, "bottom")

	writeFooter(&b, list)

	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *TableFormatter) calculateColumnWidths(cells [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range cells {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeBorder draws top, middle or bottom table borders
func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	default:
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" ")
		b.WriteString(util.PadString(value, widths[i], true))
		b.WriteString(" │")
	}
	b.WriteString("\n")
}

// writeFooter reports page size against the total and whether more pages exist
func writeFooter(b *strings.Builder, list model.DetectionList) {
	count := list.Count
	if count == 0 {
		count = len(list.Items)
	}
	fmt.Fprintf(b, "Showing %s of %s detections\n", util.FormatCount(count), util.FormatCount(list.TotalCount))
	if list.NextLink != "" {
		b.WriteString("More results available (nextLink present)\n")
	}
}
