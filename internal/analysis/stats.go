package analysis

import "math"

// accumulator keeps running count, mean and variance (Welford) plus extremes.
type accumulator struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (a *accumulator) add(v float64) {
	a.n++
	if a.n == 1 {
		a.min, a.max = v, v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	delta := v - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (v - a.mean)
}

func (a *accumulator) addIfPresent(v float64, ok bool) {
	if ok {
		a.add(v)
	}
}

func (a *accumulator) Mean() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(a.mean)
}

func (a *accumulator) Min() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(a.min)
}

func (a *accumulator) Max() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(a.max)
}

// Std is the sample standard deviation, null below two observations.
func (a *accumulator) Std() *float64 {
	if a.n < 2 {
		return nil
	}
	return ptr(math.Sqrt(a.m2 / float64(a.n-1)))
}

func ptr[T any](v T) *T {
	return &v
}
