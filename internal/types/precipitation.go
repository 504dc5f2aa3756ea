package types

const MmToInches = 0.0393701

// Precipitation carries an amount in both display systems so callers never
// re-derive one from the other.
type Precipitation struct {
	Mm     float64 `json:"mm"`
	Inches float64 `json:"inches"`
}

func NewPrecipitationFromMm(amountInMm float64) Precipitation {
	return Precipitation{
		Mm:     amountInMm,
		Inches: amountInMm * MmToInches,
	}
}
