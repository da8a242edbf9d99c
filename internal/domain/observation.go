package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Tier is one of the four ordinal crowd-density labels, ordered
// Low < Medium < High < VeryHigh.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierVeryHigh
)

var tierNames = [...]string{"Low", "Medium", "High", "VeryHigh"}

// String returns the tier's export label.
func (t Tier) String() string {
	if t < TierLow || t > TierVeryHigh {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier converts an export label back into a Tier.
func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if s == name {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown density tier %q", s)
}

// MarshalJSON encodes the tier as its label.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier label.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Context is the feature tuple footfall is estimated from.
type Context struct {
	Location    string  `json:"location"`
	Hour        int     `json:"hour"`
	Weather     string  `json:"weather"`
	Temperature float64 `json:"temperature"`
	IsFestival  bool    `json:"is_festival"`
	IsHoliday   bool    `json:"is_holiday"`
}

// Observation is one synthetic (context, footfall) sample. Density is nil
// until the observation has been classified against quartile boundaries, and
// may be reassigned if the boundaries are recomputed.
type Observation struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Date        string    `json:"date"`
	DayOfWeek   string    `json:"day_of_week"`
	Month       int       `json:"month"`
	Hour        int       `json:"hour"`
	Location    string    `json:"location"`
	Weather     string    `json:"weather"`
	Temperature float64   `json:"temperature"`
	IsFestival  bool      `json:"is_festival"`
	IsHoliday   bool      `json:"is_holiday"`
	Footfall    int       `json:"footfall"`
	Density     *Tier     `json:"density,omitempty"`
}

// Context returns the observation's feature tuple for re-estimation.
func (o Observation) Context() Context {
	return Context{
		Location:    o.Location,
		Hour:        o.Hour,
		Weather:     o.Weather,
		Temperature: o.Temperature,
		IsFestival:  o.IsFestival,
		IsHoliday:   o.IsHoliday,
	}
}

// ObservationID produces a deterministic ID from an observation's key fields.
// Deterministic IDs make sink writes idempotent — regenerating with the same
// seed produces the same IDs, so replays dedupe downstream.
func ObservationID(location string, ts time.Time) string {
	input := fmt.Sprintf("%s|%d|%d", location, ts.Unix(), ts.Hour())
	hash := sha256.Sum256([]byte(input))
	return "obs-" + hex.EncodeToString(hash[:8])
}

// Corpus is the ordered collection of all current observations. The
// generator owns the only mutable reference; everything downstream works on
// the snapshot it is handed.
type Corpus []Observation

// Footfalls extracts the footfall column as a float sample.
func (c Corpus) Footfalls() []float64 {
	out := make([]float64, len(c))
	for i := range c {
		out[i] = float64(c[i].Footfall)
	}
	return out
}

// AtLocation returns the subset of observations recorded at one site.
func (c Corpus) AtLocation(location string) Corpus {
	var out Corpus
	for i := range c {
		if c[i].Location == location {
			out = append(out, c[i])
		}
	}
	return out
}
