package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Author represents a content creator attached to a media item
type Author struct {
	Name       string `json:"profile_name"`
	PictureURL string `json:"profile_picture"`
}

// MediaStats holds the secondary numbers of a media item ("others" in the API)
type MediaStats struct {
	Views ViewCount `json:"views"`
}

// MediaItem represents a single card
type MediaItem struct {
	Title     string     `json:"title"`
	Thumbnail string     `json:"thumbnail"`
	Authors   []Author   `json:"authors"`
	Others    MediaStats `json:"others"`
}

// Views returns the numeric sort key of the item's view count
func (m MediaItem) Views() int64 {
	return m.Others.Views.Value
}

// GetDisplayTitle returns the title with line breaks and tabs flattened
func (m MediaItem) GetDisplayTitle() string {
	return cleanText(m.Title)
}

// ViewCount is a view counter as sent by the API. The API is not consistent
// about the type: some records carry a JSON number, others a display string
// such as "100K". Text keeps what is shown to the user; Value is the sort key.
type ViewCount struct {
	Text    string
	Value   int64
	Numeric bool // the API sent a JSON number
}

// Views builds a numeric ViewCount.
func Views(n int64) ViewCount {
	return ViewCount{Text: strconv.FormatInt(n, 10), Value: n, Numeric: true}
}

// String returns the display text
func (v ViewCount) String() string {
	return v.Text
}

// UnmarshalJSON accepts a number, a string, or null.
func (v *ViewCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ViewCount{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("views: %w", err)
		}
		*v = ParseViewCount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("views: %w", err)
	}
	*v = ViewCount{Text: string(data), Value: roundCount(f), Numeric: true}
	return nil
}

// MarshalJSON writes numeric counts as numbers and everything else as text.
func (v ViewCount) MarshalJSON() ([]byte, error) {
	if v.Numeric {
		return []byte(strconv.FormatInt(v.Value, 10)), nil
	}
	return json.Marshal(v.Text)
}

// the suffix must end its word so "12 minutes" stays 12
var viewCountPattern = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(?:([kKmMbB])\b)?`)

var viewCountSuffix = map[string]float64{
	"k": 1e3,
	"m": 1e6,
	"b": 1e9,
}

// ParseViewCount extracts the first number from display text like "100K",
// "1.1M" or "Views: 42". Text without a number has Value 0.
func ParseViewCount(s string) ViewCount {
	v := ViewCount{Text: strings.TrimSpace(s)}
	m := viewCountPattern.FindStringSubmatch(v.Text)
	if m == nil {
		return v
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return v
	}
	if mult, ok := viewCountSuffix[strings.ToLower(m[2])]; ok {
		f *= mult
	}
	v.Value = roundCount(f)
	return v
}

// roundCount converts f to a count within [0, MaxInt64]
func roundCount(f float64) int64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(math.Round(f))
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
