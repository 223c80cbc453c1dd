package render

import "math"

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// WindDirectionLabel returns the compass octant for a bearing in degrees.
// Each octant spans 45° centred on its point.
func WindDirectionLabel(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return "-"
	}
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return compassPoints[int(math.Floor((d+22.5)/45))%len(compassPoints)]
}
