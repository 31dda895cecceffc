package zkproof

import (
	"time"

	"github.com/pkg/errors"
)

// BirthInput is the private birth data behind a commitment. It exists only
// in the process generating a proof and is deliberately left without
// serialization tags: it must never be written out or sent over the wire.
type BirthInput struct {
	DOB       string // calendar date, 2006-01-02
	TOB       string // local wall-clock time, 15:04
	Timezone  string // IANA zone name, e.g. America/New_York
	Latitude  float64
	Longitude float64
}

const (
	dobLayout = "2006-01-02"
	tobLayout = "15:04"
)

// canonicalFields validates the input and renders it in the fixed
// positional order [dob, tob, tz, lat, lon] hashed by the commitment.
func (in BirthInput) canonicalFields() ([]string, error) {
	if _, err := time.Parse(dobLayout, in.DOB); err != nil {
		return nil, errors.Wrapf(ErrEncoding, "date of birth %q", in.DOB)
	}
	if _, err := time.Parse(tobLayout, in.TOB); err != nil {
		return nil, errors.Wrapf(ErrEncoding, "time of birth %q", in.TOB)
	}
	if in.Timezone == "" {
		return nil, errors.Wrap(ErrEncoding, "empty timezone")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return nil, errors.Wrapf(ErrEncoding, "latitude %v out of range", in.Latitude)
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return nil, errors.Wrapf(ErrEncoding, "longitude %v out of range", in.Longitude)
	}
	return []string{
		in.DOB,
		in.TOB,
		in.Timezone,
		CanonicalCoord(in.Latitude),
		CanonicalCoord(in.Longitude),
	}, nil
}
