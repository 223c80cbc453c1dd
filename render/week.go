package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weather-term/models"
)

const oneDay = 24 * time.Hour

func (r *Renderer) weekHeader() string {
	bw := r.layout.BarWidth
	return r.painter.Bold(fmt.Sprintf("%-6s %5s %-*s %5s %4s %-10s %4s %-11s %s",
		"Day", "Low", bw, "", "High", "Rain", "Wind", "UV", "Sun", "Weather"))
}

// WeekTable renders one row per forecast day
func (r *Renderer) WeekTable(doc *models.ForecastDocument) string {
	u := unitsOf(doc)
	zone := doc.Zone()
	d := doc.Daily
	p := r.painter
	bw := r.layout.BarWidth

	weekLo, _ := minMax(d.TemperatureMin)
	_, weekHi := minMax(d.TemperatureMax)

	lines := []string{r.weekHeader()}
	for i := 0; i < d.Len(); i++ {
		start := time.Unix(d.Time[i], 0)
		low, high := at(d.TemperatureMin, i), at(d.TemperatureMax, i)

		name := fmt.Sprintf("%-6s", start.In(zone).Format("Mon 02"))
		if !r.now.Before(start) && r.now.Before(start.Add(oneDay)) {
			name = p.Bold(name)
		}

		sun := "-"
		if i < len(d.Sunrise) && i < len(d.Sunset) {
			sun = time.Unix(d.Sunrise[i], 0).In(zone).Format("15:04") + "-" +
				time.Unix(d.Sunset[i], 0).In(zone).Format("15:04")
		}

		code := 0
		if i < len(d.WeatherCode) {
			code = d.WeatherCode[i]
		}
		label, labelColor := DecodeWeatherCode(code, true, MoonPhaseAt(start.Add(oneDay/2)), r.style)

		pp := at(d.PrecipitationProbabilityMax, i)
		wind := at(d.WindSpeedMax, i)
		uv := at(d.UVIndexMax, i)
		uvText := "-"
		if !math.IsNaN(uv) {
			uvText = fmt.Sprintf("%.1f", uv)
		}

		lines = append(lines, fmt.Sprintf("%s %s %s %s %s %s %s %s %s",
			name,
			p.Paint(fmt.Sprintf("%5s", whole(low)+u.tempSymbol), ColorFor(low, u.tempScale)),
			p.Paint(Bar(high, weekLo, weekHi, 1, bw), ColorFor(high, u.tempScale)),
			p.Paint(fmt.Sprintf("%5s", whole(high)+u.tempSymbol), ColorFor(high, u.tempScale)),
			p.Paint(fmt.Sprintf("%4s", percent(pp)), ColorFor(pp, Precipitation)),
			p.Paint(fmt.Sprintf("%-10s", withUnit(wind, u.windLabel)), ColorFor(wind, u.windScale)),
			p.Paint(fmt.Sprintf("%4s", uvText), ColorFor(uv, UVIndex)),
			fmt.Sprintf("%-11s", sun),
			p.Paint(label, labelColor),
		))
	}
	return strings.Join(lines, "\n")
}

func percent(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return whole(v) + "%"
}

func withUnit(v float64, unit string) string {
	if math.IsNaN(v) {
		return "-"
	}
	return whole(v) + unit
}
