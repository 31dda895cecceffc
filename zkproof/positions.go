package zkproof

// PublicPositions is the disclosed astronomical output of the chart
// calculation: ecliptic longitudes in centi-degrees (1/100 of a degree).
// The struct is an explicit fixed-field record so that the hash-input
// order is positional and never depends on map iteration.
type PublicPositions struct {
	Sun       int64  `json:"sun"`
	Moon      int64  `json:"moon"`
	Mercury   int64  `json:"mercury"`
	Venus     int64  `json:"venus"`
	Mars      int64  `json:"mars"`
	Jupiter   int64  `json:"jupiter"`
	Saturn    int64  `json:"saturn"`
	Ascendant int64  `json:"ascendant"`
	Midheaven int64  `json:"midheaven"`
	Algo      string `json:"algo"` // calculation algorithm version tag, not hashed
}

// Longitudes returns the position values in the protocol's hash-input
// order: the seven bodies, then ascendant, then midheaven.
func (p PublicPositions) Longitudes() [9]int64 {
	return [9]int64{
		p.Sun,
		p.Moon,
		p.Mercury,
		p.Venus,
		p.Mars,
		p.Jupiter,
		p.Saturn,
		p.Ascendant,
		p.Midheaven,
	}
}
