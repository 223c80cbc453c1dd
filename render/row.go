package render

import (
	"fmt"
	"time"
)

const nowMarker = "▶"

// Row is one line of the day table
type Row struct {
	Now                      bool
	Past                     bool
	Time                     time.Time
	Temperature              float64
	RelativeHumidity         float64
	WetBulb                  float64
	PrecipitationProbability float64
	WindSpeed                float64
	WindDirection            float64
	Label                    string
	LabelColor               Color
}

// rowScale is the temperature range the row's bar is drawn against
type rowScale struct {
	lo, hi float64
}

func (r *Renderer) dayHeader() string {
	bw := r.layout.BarWidth
	return r.painter.Bold(fmt.Sprintf("  %-5s %5s %-*s %4s %5s %4s %-*s %-10s %s",
		"Time", "Temp", bw, "", "Hum", "WB", "Rain", bw, "", "Wind", "Weather"))
}

// renderRow formats a row. Cells are padded before they are painted so escape
// codes never shift the columns.
func (r *Renderer) renderRow(row Row, u units, scale rowScale) string {
	p := r.painter
	bw := r.layout.BarWidth

	marker := " "
	if row.Now {
		marker = p.Bold(nowMarker)
	}
	clock := row.Time.Format("15:04")
	if row.Past {
		clock = p.Faint(clock)
	}

	temp := fmt.Sprintf("%5s", whole(row.Temperature)+u.tempSymbol)
	hum := fmt.Sprintf("%4s", whole(row.RelativeHumidity)+"%")
	wb := fmt.Sprintf("%5s", whole(row.WetBulb)+u.tempSymbol)
	pp := fmt.Sprintf("%4s", whole(row.PrecipitationProbability)+"%")
	wind := fmt.Sprintf("%-10s", whole(row.WindSpeed)+u.windLabel+" "+WindDirectionLabel(row.WindDirection))

	tempColor := ColorFor(row.Temperature, u.tempScale)
	ppColor := ColorFor(row.PrecipitationProbability, Precipitation)

	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s %s",
		marker,
		clock,
		p.Paint(temp, tempColor),
		p.Paint(Bar(row.Temperature, scale.lo, scale.hi, 1, bw), tempColor),
		p.Paint(hum, ColorFor(row.RelativeHumidity, Humidity)),
		p.Paint(wb, ColorFor(row.WetBulb, u.tempScale)),
		p.Paint(pp, ppColor),
		p.Paint(Bar(row.PrecipitationProbability, 0, 100, 0, bw), ppColor),
		p.Paint(wind, ColorFor(row.WindSpeed, u.windScale)),
		p.Paint(row.Label, row.LabelColor),
	)
}
