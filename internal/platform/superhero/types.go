package superhero

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ResponseSuccess is the value of SearchResponse.Response when the directory
// found at least one candidate.
const ResponseSuccess = "success"

// SearchResponse is the body of GET {base}/{token}/search/{name}.
type SearchResponse struct {
	Response   string   `json:"response"`
	Error      string   `json:"error,omitempty"`
	ResultsFor string   `json:"results-for,omitempty"`
	Results    []Result `json:"results"`
}

// Succeeded reports whether the directory returned candidates.
func (r *SearchResponse) Succeeded() bool {
	return r.Response == ResponseSuccess
}

// FirstMatch returns the first result whose name equals name ignoring case.
func (r *SearchResponse) FirstMatch(name string) (Result, bool) {
	for _, res := range r.Results {
		if strings.EqualFold(res.Name, name) {
			return res, true
		}
	}
	return Result{}, false
}

// Result is a single directory entry. Only the fields the service stores are
// decoded.
type Result struct {
	ID         FlexInt    `json:"id"`
	Name       string     `json:"name"`
	Powerstats Powerstats `json:"powerstats"`
}

// Powerstats holds the numeric attributes of a directory entry.
type Powerstats struct {
	Intelligence FlexInt `json:"intelligence"`
	Strength     FlexInt `json:"strength"`
	Speed        FlexInt `json:"speed"`
	Durability   FlexInt `json:"durability"`
	Power        FlexInt `json:"power"`
	Combat       FlexInt `json:"combat"`
}

// FlexInt decodes an integer sent either as a JSON number or as a string.
// JSON null, the empty string and the string "null" decode to 0.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid integer string: %w", err)
		}
		raw = strings.TrimSpace(s)
		if raw == "" || strings.EqualFold(raw, "null") {
			*f = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", raw, err)
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the value as an int.
func (f FlexInt) Int() int {
	return int(f)
}
