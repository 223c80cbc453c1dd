package window

import (
	"reflect"
	"testing"
	"time"

	"weather-term/models"
)

func quarterHours(start int64, n int) []int64 {
	times := make([]int64, n)
	for i := range times {
		times[i] = start + int64(i)*900
	}
	return times
}

func TestFindNowIndex(t *testing.T) {
	const t0 = 1750500000
	times := quarterHours(t0, 16)

	tests := []struct {
		name string
		now  int64
		want int
	}{
		{"exactly on a sample", t0 + 5*900, 5},
		{"between samples", t0 + 5*900 + 450, 5},
		{"just before the next sample", t0 + 6*900 - 1, 5},
		{"first sample", t0, 0},
		{"within 900s after the last sample", t0 + 15*900 + 900, 15},
		{"more than 900s after the last sample", t0 + 15*900 + 901, DefaultNowIndex},
		{"before the series", t0 - 1, DefaultNowIndex},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FindNowIndex(times, time.Unix(tc.now, 0)); got != tc.want {
				t.Errorf("FindNowIndex() = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestFindNowIndexPrefersLatest(t *testing.T) {
	// samples closer than 900s apart: several qualify
	times := []int64{0, 300, 600, 1200}
	if got := FindNowIndex(times, time.Unix(700, 0)); got != 2 {
		t.Errorf("FindNowIndex() = %d; want 2", got)
	}
}

func TestFindNowIndexEmpty(t *testing.T) {
	if got := FindNowIndex(nil, time.Unix(0, 0)); got != DefaultNowIndex {
		t.Errorf("FindNowIndex(nil) = %d; want %d", got, DefaultNowIndex)
	}
}

func TestSelectWindow(t *testing.T) {
	series := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name          string
		now           int
		before, after int
		want          []int
	}{
		{"centered", 5, 2, 3, []int{3, 4, 5, 6, 7}},
		{"clamped low", 0, 4, 3, []int{0, 1, 2}},
		{"clamped high", 8, 2, 10, []int{6, 7, 8, 9}},
		{"now past the end", 24, 4, 4, []int{}},
		{"negative now", -5, 2, 3, []int{}},
		{"whole series", 5, 100, 100, series},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectWindow(series, tc.now, tc.before, tc.after)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SelectWindow() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestSelectWindowNeverOutOfBounds(t *testing.T) {
	series := make([]float64, 37)
	for now := -40; now < 80; now++ {
		for _, span := range []int{0, 1, 7, 36, 50} {
			got := SelectWindow(series, now, span, span)
			if len(got) > len(series) {
				t.Fatalf("now=%d span=%d: window of %d exceeds series", now, span, len(got))
			}
		}
	}
}

func TestDownsample(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := Downsample(s, 4); !reflect.DeepEqual(got, []int{0, 4, 8}) {
		t.Errorf("Downsample(4) = %v", got)
	}
	if got := Downsample(s, 1); !reflect.DeepEqual(got, s) {
		t.Errorf("Downsample(1) = %v", got)
	}
	if got := Downsample(s, 0); !reflect.DeepEqual(got, s) {
		t.Errorf("Downsample(0) = %v", got)
	}
	if got := Downsample([]int{}, 4); len(got) != 0 {
		t.Errorf("Downsample(empty) = %v", got)
	}
}

func TestStrideFor(t *testing.T) {
	tests := []struct {
		samples, rows int
		want          int
	}{
		{96, 30, 4},  // 24 rows
		{96, 20, 6},  // 16 rows
		{96, 12, 8},  // 12 rows
		{96, 9, 12},  // 8 rows
		{96, 3, 12},  // nothing fits
		{96, 0, 12},  // no room at all
		{10, 100, 4}, // short window
	}

	for _, tc := range tests {
		if got := StrideFor(tc.samples, tc.rows); got != tc.want {
			t.Errorf("StrideFor(%d, %d) = %d; want %d", tc.samples, tc.rows, got, tc.want)
		}
	}
}

func testSeries(n int) models.Series {
	s := models.Series{Time: quarterHours(1750500000, n)}
	for i := 0; i < n; i++ {
		v := float64(i)
		s.Temperature = append(s.Temperature, v)
		s.RelativeHumidity = append(s.RelativeHumidity, v)
		s.PrecipitationProbability = append(s.PrecipitationProbability, v)
		s.WeatherCode = append(s.WeatherCode, i)
		s.WindSpeed = append(s.WindSpeed, v)
		s.WindDirection = append(s.WindDirection, v)
	}
	return s
}

func TestSliceKeepsNowRow(t *testing.T) {
	s := testSeries(40)

	f := Slice(s, 21, 10, 12, 4)
	if f.NowRow < 0 {
		t.Fatal("now sample should be inside the frame")
	}
	if got := f.WeatherCode[f.NowRow]; got != 21 {
		t.Errorf("now row holds sample %d; want 21", got)
	}
	for i := range f.Time {
		if f.Temperature[i] != float64(f.WeatherCode[i]) || f.WindDirection[i] != float64(f.WeatherCode[i]) {
			t.Fatalf("row %d fields out of lockstep", i)
		}
		if i > 0 && f.Time[i]-f.Time[i-1] != 4*900 {
			t.Fatalf("row %d not spaced by the stride", i)
		}
	}
	if f.DewPoint != nil {
		t.Error("absent dew point should stay absent")
	}
}

func TestSliceNowOutsideSeries(t *testing.T) {
	s := testSeries(10)
	f := Slice(s, DefaultNowIndex, 8, 8, 4)
	if f.NowRow != -1 {
		t.Errorf("NowRow = %d; want -1", f.NowRow)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d; want 0", f.Len())
	}
}

func TestSliceClampedAtStart(t *testing.T) {
	s := testSeries(16)
	f := Slice(s, 2, 8, 8, 1)
	if f.Len() != 10 {
		t.Errorf("Len() = %d; want 10", f.Len())
	}
	if f.NowRow != 2 {
		t.Errorf("NowRow = %d; want 2", f.NowRow)
	}
}
