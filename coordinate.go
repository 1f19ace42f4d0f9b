package scout

import "strings"

// Coordinate is a successfully geocoded point of interest.
type Coordinate struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Result is the outcome of resolving a list of entities. Every entity ends up
// in exactly one of Coordinates or Unresolved, in input order.
type Result struct {
	Coordinates []Coordinate `json:"coordinates"`
	Unresolved  []string     `json:"no_coordinates"`
}

// NewResult returns an empty Result whose slices encode as [] rather than null.
func NewResult() *Result {
	return &Result{
		Coordinates: []Coordinate{},
		Unresolved:  []string{},
	}
}

// Len returns the number of entities accounted for by the result.
func (r *Result) Len() int {
	return len(r.Coordinates) + len(r.Unresolved)
}

// EntityName returns the display name of a "Name, City, Country" entity:
// the text before the first comma, or the whole string when there is none.
func EntityName(entity string) string {
	name, _, _ := strings.Cut(entity, ",")
	return strings.TrimSpace(name)
}
