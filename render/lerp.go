package render

// Lerp maps value from [domainLo, domainHi] onto [rangeLo, rangeHi]. It is not
// clamped: values outside the domain extrapolate. A degenerate domain maps
// everything to rangeLo.
func Lerp(value, domainLo, domainHi, rangeLo, rangeHi float64) float64 {
	if domainHi == domainLo {
		return rangeLo
	}
	t := (value - domainLo) / (domainHi - domainLo)
	// weighted form is exact at both ends
	return rangeLo*(1-t) + rangeHi*t
}
