package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/penwyp/go-oat-search/internal/core/model"
	"github.com/penwyp/go-oat-search/internal/util"
)

// SummaryFormatter prints detection counts by risk level and by source.
type SummaryFormatter struct {
	w io.Writer
}

func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

func (f *SummaryFormatter) Format(list model.DetectionList) error {
	byRisk := make(map[string]int)
	bySource := make(map[string]int)
	for _, d := range list.Items {
		risk := d.HighestRisk()
		if model.RiskWeight(risk) == 0 {
			risk = "unknown"
		}
		byRisk[risk]++

		source := d.Source
		if source == "" {
			source = "unknown"
		}
		bySource[source]++
	}

	var b strings.Builder
	b.WriteString("Detections by risk level:\n")
	levels := []string{model.RiskCritical, model.RiskHigh, model.RiskMedium, model.RiskLow, model.RiskInfo, "unknown"}
	for _, level := range levels {
		if n, ok := byRisk[level]; ok {
			fmt.Fprintf(&b, "  %s %d\n", util.PadString(level, 10, true), n)
		}
	}

	b.WriteString("\nDetections by source:\n")
	sources := make([]string, 0, len(bySource))
	width := 0
	for source := range bySource {
		sources = append(sources, source)
		if w := util.GetDisplayWidth(source); w > width {
			width = w
		}
	}
	// Most frequent first, then by name
	sort.Slice(sources, func(i, j int) bool {
		if bySource[sources[i]] != bySource[sources[j]] {
			return bySource[sources[i]] > bySource[sources[j]]
		}
		return sources[i] < sources[j]
	})
	for _, source := range sources {
		fmt.Fprintf(&b, "  %s %d\n", util.PadString(source, width, true), bySource[source])
	}
	b.WriteString("\n")

	writeFooter(&b, list)

	_, err := io.WriteString(f.w, b.String())
	return err
}
