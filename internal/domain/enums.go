package domain

type RateKind string

const (
	RateNone   RateKind = ""
	RateHourly RateKind = "hourly"
	RateFixed  RateKind = "fixed"
)

// Valid reports whether k is one of the known rate kinds.
func (k RateKind) Valid() bool {
	switch k {
	case RateNone, RateHourly, RateFixed:
		return true
	default:
		return false
	}
}
