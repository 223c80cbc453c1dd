package render

import (
	"fmt"
	"strings"
	"time"

	"weather-term/models"
	"weather-term/window"
)

// Sample is one instant of the forecast
type Sample struct {
	Time                     time.Time
	Temperature              float64
	RelativeHumidity         float64
	PrecipitationProbability float64
	WeatherCode              int
	WindSpeed                float64
	WindDirection            float64
}

// SampleAt returns the 15-minute sample at index i. When i is outside the
// series the current snapshot is used instead.
func SampleAt(doc *models.ForecastDocument, i int) Sample {
	s := doc.Minutely15
	if i < 0 || i >= s.Len() || i >= len(s.WeatherCode) {
		c := doc.Current
		return Sample{
			Time:             time.Unix(c.Time, 0),
			Temperature:      c.Temperature,
			RelativeHumidity: c.RelativeHumidity,
			WeatherCode:      c.WeatherCode,
			WindSpeed:        c.WindSpeed,
			WindDirection:    c.WindDirection,
		}
	}
	return Sample{
		Time:                     time.Unix(s.Time[i], 0),
		Temperature:              at(s.Temperature, i),
		RelativeHumidity:         at(s.RelativeHumidity, i),
		PrecipitationProbability: at(s.PrecipitationProbability, i),
		WeatherCode:              s.WeatherCode[i],
		WindSpeed:                at(s.WindSpeed, i),
		WindDirection:            at(s.WindDirection, i),
	}
}

// Summary renders the one-line status-bar view of the sample at now
func (r *Renderer) Summary(doc *models.ForecastDocument) string {
	u := unitsOf(doc)
	s := SampleAt(doc, window.FindNowIndex(doc.Minutely15.Time, r.now))

	label, labelColor := DecodeWeatherCode(s.WeatherCode, IsDaytime(doc.Daily, r.now), MoonPhaseAt(r.now), r.style)
	wb := WetBulb(s.Temperature, s.RelativeHumidity, u.temp)
	p := r.painter

	return fmt.Sprintf("%s %s %s wb %s rain %s wind %s %s",
		p.Paint(strings.TrimSpace(label), labelColor),
		p.Paint(whole(s.Temperature)+u.tempSymbol, ColorFor(s.Temperature, u.tempScale)),
		p.Paint(whole(s.RelativeHumidity)+"%", ColorFor(s.RelativeHumidity, Humidity)),
		p.Paint(whole(wb)+u.tempSymbol, ColorFor(wb, u.tempScale)),
		p.Paint(whole(s.PrecipitationProbability)+"%", ColorFor(s.PrecipitationProbability, Precipitation)),
		p.Paint(whole(s.WindSpeed)+u.windLabel, ColorFor(s.WindSpeed, u.windScale)),
		WindDirectionLabel(s.WindDirection),
	)
}
