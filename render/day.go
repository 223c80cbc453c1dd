package render

import (
	"strings"
	"time"

	"weather-term/models"
	"weather-term/window"
)

// DayTable renders the 15-minute series from hoursBefore to hoursAfter around
// now, downsampled to fit the terminal
func (r *Renderer) DayTable(doc *models.ForecastDocument, hoursBefore, hoursAfter int) string {
	u := unitsOf(doc)
	zone := doc.Zone()

	nowIndex := window.FindNowIndex(doc.Minutely15.Time, r.now)
	stride := r.layout.Stride(hoursBefore, hoursAfter)
	frame := window.Slice(doc.Minutely15, nowIndex,
		hoursBefore*window.SamplesPerHour, hoursAfter*window.SamplesPerHour, stride)

	lo, hi := minMax(frame.Temperature)
	scale := rowScale{lo: lo, hi: hi}

	lines := []string{r.dayHeader()}
	for i := 0; i < frame.Len(); i++ {
		t := time.Unix(frame.Time[i], 0)
		temp := at(frame.Temperature, i)
		hum := at(frame.RelativeHumidity, i)

		code := 0
		if i < len(frame.WeatherCode) {
			code = frame.WeatherCode[i]
		}
		label, color := DecodeWeatherCode(code, IsDaytime(doc.Daily, t), MoonPhaseAt(t), r.style)

		row := Row{
			Now:                      i == frame.NowRow,
			Past:                     frame.NowRow >= 0 && i < frame.NowRow,
			Time:                     t.In(zone),
			Temperature:              temp,
			RelativeHumidity:         hum,
			WetBulb:                  WetBulb(temp, hum, u.temp),
			PrecipitationProbability: at(frame.PrecipitationProbability, i),
			WindSpeed:                at(frame.WindSpeed, i),
			WindDirection:            at(frame.WindDirection, i),
			Label:                    label,
			LabelColor:               color,
		}
		lines = append(lines, r.renderRow(row, u, scale))
	}
	return strings.Join(lines, "\n")
}
