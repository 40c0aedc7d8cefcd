package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const defaultBarWidth = 40

// RenderSummary prints the dataset summary as an aligned table. NaN
// rows (undefined for the dataset size) are omitted.
func RenderSummary(w io.Writer, s Summary) error {
	type row struct {
		label string
		value float64
		isInt bool
	}
	rows := []row{
		{label: "Count", value: float64(s.Count), isInt: true},
		{label: "Sum", value: s.Sum},
		{label: "Minimum", value: s.Min},
		{label: "Maximum", value: s.Max},
		{label: "Range", value: s.Range},
		{label: "Mean", value: s.Mean},
		{label: "Median", value: s.Median},
		{label: "Std Deviation", value: s.StdDev},
		{label: "Variance", value: s.Variance},
		{label: "Sample Std Dev", value: s.SampleStdDev},
		{label: "Quartile 1", value: s.Q1},
		{label: "Quartile 3", value: s.Q3},
		{label: "IQR", value: s.IQR},
		{label: "Skewness", value: s.Skewness},
		{label: "Kurtosis", value: s.Kurtosis},
	}

	if _, err := fmt.Fprintln(w, "Dataset Summary"); err != nil {
		return err
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		if math.IsNaN(r.value) {
			continue
		}
		formatted := fmt.Sprintf("%.6g", r.value)
		if r.isInt {
			formatted = fmt.Sprintf("%d", int(r.value))
		}
		cells = append(cells, []string{r.label, formatted})
	}
	for _, line := range formatTable(nil, cells, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistogram prints horizontal frequency bars for the buckets.
func RenderHistogram(w io.Writer, buckets []Bucket, barWidth int) error {
	if len(buckets) == 0 {
		return nil
	}
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if _, err := fmt.Fprintln(w, "Histogram"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		bar := ""
		if maxCount > 0 {
			n := int(math.Round(float64(b.Count) / float64(maxCount) * float64(barWidth)))
			if b.Count > 0 && n == 0 {
				n = 1
			}
			bar = strings.Repeat("#", n)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%.4g .. %.4g", b.Lo, b.Hi),
			fmt.Sprintf("%d", b.Count),
			bar,
		})
	}
	for _, line := range formatTable(nil, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
