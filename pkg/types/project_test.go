package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{name: "nil becomes empty", tags: nil, want: []string{}},
		{name: "trims whitespace", tags: []string{" 2d ", "animation"}, want: []string{"2d", "animation"}},
		{name: "drops whitespace-only entries", tags: []string{"art", "  ", "", "\t"}, want: []string{"art"}},
		{name: "preserves order", tags: []string{"c", "a", "b"}, want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.tags))
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Year
		wantErr bool
	}{
		{name: "plain number", input: "2024", want: 2024},
		{name: "padded number", input: " 2024 ", want: 2024},
		{name: "empty is zero", input: "", want: 0},
		{name: "whitespace only is zero", input: "  ", want: 0},
		{name: "text rejected", input: "twenty twenty-four", wantErr: true},
		{name: "mixed rejected", input: "2024ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYear(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Year
		wantErr bool
	}{
		{name: "json number", raw: `{"year": 2023}`, want: 2023},
		{name: "numeric string", raw: `{"year": "2023"}`, want: 2023},
		{name: "empty string", raw: `{"year": ""}`, want: 0},
		{name: "non-numeric string", raw: `{"year": "unknown"}`, wantErr: true},
		{name: "float rejected", raw: `{"year": 20.5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Project
			err := json.Unmarshal([]byte(tt.raw), &p)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Year)
		})
	}
}

func TestYearMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(Project{ID: 1, Year: 2024, Tags: []string{}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"year":2024`)
}
