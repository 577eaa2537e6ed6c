package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Project is one entry in the project showcase list. IDs are assigned as
// max(existing ids, 0)+1 on create and are never reused after a delete.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	VideoURL    string   `json:"videoUrl"`
	Tags        []string `json:"tags"`
	Year        Year     `json:"year"`
}

// Normalize trims the project's tags and drops whitespace-only entries.
func (p *Project) Normalize() {
	p.Tags = NormalizeTags(p.Tags)
}

// NormalizeTags returns tags with surrounding whitespace trimmed and
// whitespace-only entries removed. A nil input yields an empty slice so
// the tags key always serializes as a JSON array.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Year is a project year. Older documents stored the year as either a
// JSON number or a numeric string; Year accepts both on load and always
// marshals as a number. Zero means unset.
type Year int

// ParseYear coerces a textual year into a Year. The empty string is the
// zero Year; anything else must parse as an integer or the result is an
// ErrValidation wrap.
func ParseYear(s string) (Year, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not a number", ErrValidation, s)
	}
	return Year(n), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseYear(s)
		if err != nil {
			return err
		}
		*y = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: year %s is not a number", ErrValidation, data)
	}
	*y = Year(n)
	return nil
}
