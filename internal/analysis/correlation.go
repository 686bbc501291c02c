package analysis

import (
	"math"
	"sort"
)

// CorrelationMatrix is a symmetric Pearson matrix. A nil entry means the
// pair had fewer than two complete observations or zero variance.
type CorrelationMatrix struct {
	Metrics []Metric
	Values  [][]*float64
}

type CorrelationPair struct {
	A, B Metric
	R    float64
}

// Correlate computes pairwise-complete Pearson correlation over the metric
// columns the dataset provides.
func Correlate(ds Dataset) CorrelationMatrix {
	metrics := make([]Metric, 0, len(CorrelationMetrics))
	for _, m := range CorrelationMetrics {
		if ds.Has(m) {
			metrics = append(metrics, m)
		}
	}

	values := make([][]*float64, len(metrics))
	for i := range values {
		values[i] = make([]*float64, len(metrics))
	}

	for i := range metrics {
		for j := i; j < len(metrics); j++ {
			r := pearson(ds.Rows, metrics[i], metrics[j])
			if i == j && r != nil {
				r = ptr(1.0)
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return CorrelationMatrix{Metrics: metrics, Values: values}
}

func pearson(rows []GameRow, a, b Metric) *float64 {
	var n int
	var meanX, meanY, cov, varX, varY float64

	for _, row := range rows {
		x, okX := row.Value(a)
		y, okY := row.Value(b)
		if !okX || !okY {
			continue
		}
		n++
		dx := x - meanX
		meanX += dx / float64(n)
		dy := y - meanY
		meanY += dy / float64(n)
		cov += dx * (y - meanY)
		varX += dx * (x - meanX)
		varY += dy * (y - meanY)
	}

	if n < 2 || varX <= 0 || varY <= 0 {
		return nil
	}

	r := cov / math.Sqrt(varX*varY)
	return ptr(math.Max(-1, math.Min(1, r)))
}

// Get returns the coefficient for two metrics, nil when either is absent.
func (c CorrelationMatrix) Get(a, b Metric) *float64 {
	i, j := c.index(a), c.index(b)
	if i < 0 || j < 0 {
		return nil
	}
	return c.Values[i][j]
}

// Strongest lists off-diagonal pairs with |r| above threshold, strongest
// first, each pair once.
func (c CorrelationMatrix) Strongest(threshold float64, limit int) []CorrelationPair {
	var pairs []CorrelationPair
	for i := range c.Metrics {
		for j := i + 1; j < len(c.Metrics); j++ {
			r := c.Values[i][j]
			if r == nil || math.Abs(*r) <= threshold {
				continue
			}
			pairs = append(pairs, CorrelationPair{A: c.Metrics[i], B: c.Metrics[j], R: *r})
		}
	}

	sort.SliceStable(pairs, func(x, y int) bool {
		return math.Abs(pairs[x].R) > math.Abs(pairs[y].R)
	})

	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

func (c CorrelationMatrix) index(m Metric) int {
	for i, metric := range c.Metrics {
		if metric == m {
			return i
		}
	}
	return -1
}
