package stats

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 6})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	if s.Mean != 4 {
		t.Fatalf("expected mean 4, got %v", s.Mean)
	}
	if s.Median != 4 {
		t.Fatalf("expected median 4, got %v", s.Median)
	}
	if s.Min != 2 || s.Max != 6 || s.Range != 4 {
		t.Fatalf("unexpected min/max/range: %v/%v/%v", s.Min, s.Max, s.Range)
	}
	// Population variance of {2,4,6} is 8/3.
	if math.Abs(s.Variance-8.0/3.0) > 1e-12 {
		t.Fatalf("expected variance 8/3, got %v", s.Variance)
	}
	// Sample variance is 4.
	if math.Abs(s.SampleVariance-4) > 1e-12 {
		t.Fatalf("expected sample variance 4, got %v", s.SampleVariance)
	}
	if math.Abs(s.Skewness) > 1e-12 {
		t.Fatalf("expected zero skewness for symmetric data, got %v", s.Skewness)
	}
}

func TestSummarizeSingleElement(t *testing.T) {
	s, err := Summarize([]float64{5})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.StdDev != 0 {
		t.Fatalf("expected population stddev 0 for one sample, got %v", s.StdDev)
	}
	if s.Median != 5 {
		t.Fatalf("expected median 5, got %v", s.Median)
	}
	if !math.IsNaN(s.SampleStdDev) || !math.IsNaN(s.Q1) || !math.IsNaN(s.Skewness) {
		t.Fatalf("expected NaN sample stats for one sample: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
	if _, err := Mean(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset from Mean, got %v", err)
	}
	if _, err := Histogram(nil, 5); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset from Histogram, got %v", err)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tc := range cases {
		if got := Percentile(sorted, tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Percentile(%v) = %v, expected %v", tc.p, got, tc.want)
		}
	}
}

func TestHistogram(t *testing.T) {
	buckets, err := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, 5)
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}
	if len(buckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(buckets))
	}
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != 10 {
		t.Fatalf("expected all samples bucketed, got %d", total)
	}
	// The maximum lands in the last bucket, not past it.
	if buckets[4].Count == 0 {
		t.Fatalf("expected last bucket to include the maximum")
	}
}

func TestHistogramConstantDataset(t *testing.T) {
	buckets, err := Histogram([]float64{3, 3, 3}, 10)
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected single bucket for constant data, got %d", len(buckets))
	}
	if buckets[0].Count != 3 {
		t.Fatalf("expected count 3, got %d", buckets[0].Count)
	}
}

func TestParseDataset(t *testing.T) {
	data, err := ParseDataset("1, 2.5 3\t-4;5\n6")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []float64{1, 2.5, 3, -4, 5, 6}
	if len(data) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("sample %d = %v, expected %v", i, data[i], want[i])
		}
	}
}

func TestParseDatasetError(t *testing.T) {
	if _, err := ParseDataset("1, two, 3"); err == nil {
		t.Fatalf("expected invalid sample error")
	}
}

func TestReadDataset(t *testing.T) {
	data, err := ReadDataset(strings.NewReader("1 2\n3, 4\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(data))
	}
}
