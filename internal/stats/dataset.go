package stats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDataset reads numeric samples from text. Values may be separated
// by commas, whitespace, or newlines, matching what users paste into
// the statistics pane.
func ParseDataset(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})
	data := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q", field)
		}
		data = append(data, v)
	}
	return data, nil
}

// ReadDataset parses samples from a reader, for file or stdin import.
func ReadDataset(r io.Reader) ([]float64, error) {
	var data []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parsed, err := ParseDataset(scanner.Text())
		if err != nil {
			return nil, err
		}
		data = append(data, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return data, nil
}
