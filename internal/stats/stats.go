// Package stats computes dataset summaries and histogram buckets for
// statistics mode.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyDataset is returned when a summary is requested for no data.
var ErrEmptyDataset = errors.New("empty dataset")

// Summary holds the descriptive statistics for a dataset. Variance and
// StdDev are population figures; the sample variants are NaN for fewer
// than two samples. Quartiles, skewness, and kurtosis are NaN for a
// single sample.
type Summary struct {
	Count          int
	Sum            float64
	Min            float64
	Max            float64
	Range          float64
	Mean           float64
	Median         float64
	Variance       float64
	StdDev         float64
	SampleVariance float64
	SampleStdDev   float64
	Q1             float64
	Q3             float64
	IQR            float64
	Skewness       float64
	Kurtosis       float64
}

// Summarize computes the full summary for a dataset.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrEmptyDataset
	}
	n := float64(len(data))
	s := Summary{Count: len(data), Min: data[0], Max: data[0]}
	for _, v := range data {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Range = s.Max - s.Min
	s.Mean = s.Sum / n

	var m2, m3, m4 float64
	for _, v := range data {
		d := v - s.Mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m3 /= n
	m4 /= n
	s.Variance = m2
	s.StdDev = math.Sqrt(m2)

	if len(data) > 1 {
		s.SampleVariance = m2 * n / (n - 1)
		s.SampleStdDev = math.Sqrt(s.SampleVariance)
	} else {
		s.SampleVariance = math.NaN()
		s.SampleStdDev = math.NaN()
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	s.Median = Percentile(sorted, 50)

	if len(data) > 1 {
		s.Q1 = Percentile(sorted, 25)
		s.Q3 = Percentile(sorted, 75)
		s.IQR = s.Q3 - s.Q1
		if m2 > 0 {
			s.Skewness = m3 / math.Pow(m2, 1.5)
			s.Kurtosis = m4/(m2*m2) - 3
		}
	} else {
		s.Q1 = math.NaN()
		s.Q3 = math.NaN()
		s.IQR = math.NaN()
		s.Skewness = math.NaN()
		s.Kurtosis = math.NaN()
	}
	return s, nil
}

// Percentile computes the p-th percentile of already-sorted data using
// linear interpolation between closest ranks.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi >= len(sorted) {
		hi = len(sorted) - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Mean is a convenience wrapper for the arithmetic mean.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

// Bucket is one histogram bin. Lo is inclusive; Hi is exclusive except
// for the last bucket, which includes the dataset maximum.
type Bucket struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram distributes data into n equal-width buckets spanning
// [min, max]. A constant dataset collapses into a single bucket.
func Histogram(data []float64, n int) ([]Bucket, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if n <= 0 {
		n = 10
	}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if minVal == maxVal {
		return []Bucket{{Lo: minVal, Hi: maxVal, Count: len(data)}}, nil
	}
	width := (maxVal - minVal) / float64(n)
	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i].Lo = minVal + float64(i)*width
		buckets[i].Hi = minVal + float64(i+1)*width
	}
	buckets[n-1].Hi = maxVal
	for _, v := range data {
		idx := int((v - minVal) / width)
		if idx >= n {
			idx = n - 1
		}
		buckets[idx].Count++
	}
	return buckets, nil
}
