package walstat

import (
	"encoding/json"
	"strconv"
)

// This file encodes the model as JSON. JSON object keys must be strings, so
// the year keys of a measure are stringified on the way out even though the
// in-memory key is an int.

// MarshalJSON encodes the measure as an object of year-string keys to
// values.
func (m *Measure) MarshalJSON() ([]byte, error) {
	obj := make(map[string]float64, len(m.values))
	for y, v := range m.values {
		obj[strconv.Itoa(y)] = v
	}
	return json.Marshal(obj)
}

// MarshalJSON encodes the area as its names map and its measures map.
func (a *Area) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Names    map[string]string   `json:"names"`
		Measures map[string]*Measure `json:"measures"`
	}{Names: a.names, Measures: a.measures})
}

// MarshalJSON encodes the store as an object keyed by authority code. An
// empty store encodes to the empty object.
func (as *Areas) MarshalJSON() ([]byte, error) {
	return json.Marshal(as.areas)
}

// ToJSON serializes the whole store. An empty store serializes to "{}".
func (as *Areas) ToJSON() (string, error) {
	buf, err := json.Marshal(as)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
