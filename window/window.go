package window

import (
	"time"

	"weather-term/models"
)

const (
	// SampleInterval is the spacing of the 15-minutely series
	SampleInterval = 15 * time.Minute

	// SamplesPerHour is the number of 15-minute samples in an hour
	SamplesPerHour = 4

	// DefaultNowIndex is used when no sample matches the clock: six hours of
	// samples in.
	DefaultNowIndex = 6 * SamplesPerHour
)

// Strides are the allowed downsampling steps, finest first
var Strides = []int{4, 6, 8, 12}

// FindNowIndex returns the last index i with 0 <= now - times[i] <= 900s,
// or DefaultNowIndex when none qualifies. times must be ascending.
func FindNowIndex(times []int64, now time.Time) int {
	unix := now.Unix()
	limit := int64(SampleInterval / time.Second)

	for i := len(times) - 1; i >= 0; i-- {
		d := unix - times[i]
		if d < 0 {
			continue
		}
		if d <= limit {
			return i
		}
		// ascending series: everything earlier is older still
		break
	}
	return DefaultNowIndex
}

// bounds clamps [nowIndex-before, nowIndex+after) into [0, n]
func bounds(n, nowIndex, before, after int) (int, int) {
	lo := nowIndex - before
	if lo < 0 {
		lo = 0
	}
	hi := nowIndex + after
	if hi > n {
		hi = n
	}
	if hi < 0 {
		hi = 0
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// SelectWindow returns series[max(0, nowIndex-before) : min(len, nowIndex+after)].
// Both ends are clamped; it never panics and never wraps around.
func SelectWindow[T any](series []T, nowIndex, before, after int) []T {
	lo, hi := bounds(len(series), nowIndex, before, after)
	return series[lo:hi]
}

// Downsample returns every stride-th element starting at the first one.
// A stride of one or less returns a copy.
func Downsample[T any](s []T, stride int) []T {
	if stride <= 1 {
		out := make([]T, len(s))
		copy(out, s)
		return out
	}
	out := make([]T, 0, (len(s)+stride-1)/stride)
	for i := 0; i < len(s); i += stride {
		out = append(out, s[i])
	}
	return out
}

// StrideFor picks the finest stride whose row count fits availableRows.
// When nothing fits the coarsest stride is returned.
func StrideFor(windowSamples, availableRows int) int {
	for _, s := range Strides {
		rows := (windowSamples + s - 1) / s
		if rows <= availableRows {
			return s
		}
	}
	return Strides[len(Strides)-1]
}

// Frame is a windowed, downsampled view of a series. Index i refers to the
// same instant in every field.
type Frame struct {
	Time                     []int64
	Temperature              []float64
	RelativeHumidity         []float64
	DewPoint                 []float64
	PrecipitationProbability []float64
	WeatherCode              []int
	WindSpeed                []float64
	WindDirection            []float64

	// NowRow is the row holding the "now" sample, or -1 if it fell outside
	NowRow int
	Stride int
}

// Len returns the number of rows in the frame
func (f Frame) Len() int {
	return len(f.Time)
}

// Slice applies the window and stride to every field of s in lockstep. The
// downsampling phase is aligned so that the now sample is always kept when
// it lies inside the window.
func Slice(s models.Series, nowIndex, before, after, stride int) Frame {
	if stride < 1 {
		stride = 1
	}
	lo, hi := bounds(s.Len(), nowIndex, before, after)

	nowRow := -1
	if nowIndex >= lo && nowIndex < hi {
		lo += (nowIndex - lo) % stride
		nowRow = (nowIndex - lo) / stride
	}

	pick := func(v []float64) []float64 {
		if len(v) < hi {
			return nil
		}
		return Downsample(v[lo:hi], stride)
	}

	f := Frame{
		Time:                     Downsample(s.Time[lo:hi], stride),
		Temperature:              pick(s.Temperature),
		RelativeHumidity:         pick(s.RelativeHumidity),
		DewPoint:                 pick(s.DewPoint),
		PrecipitationProbability: pick(s.PrecipitationProbability),
		WindSpeed:                pick(s.WindSpeed),
		WindDirection:            pick(s.WindDirection),
		NowRow:                   nowRow,
		Stride:                   stride,
	}
	if len(s.WeatherCode) >= hi {
		f.WeatherCode = Downsample(s.WeatherCode[lo:hi], stride)
	}
	return f
}
