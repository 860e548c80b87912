package features_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cardio-risk-service/internal/features"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	require.NoError(t, dec.Decode(&raw))
	return raw
}

func TestNormalize_VectorShape(t *testing.T) {
	vec, err := features.Normalize(map[string]any{})
	require.NoError(t, err)
	assert.Len(t, vec, features.Count)
	for i, v := range vec {
		assert.Zero(t, v, "position %d", i)
	}
}

func TestNormalize_EndToEndExample(t *testing.T) {
	raw := decode(t, `{"age": 55, "gender": "male", "chest_pain": "Yes"}`)

	vec, err := features.Normalize(raw)
	require.NoError(t, err)

	expected := features.Vector{55, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, expected, vec)
}

func TestNormalize_FlagPositions(t *testing.T) {
	names := features.FieldNames()
	for pos := 2; pos < features.Count; pos++ {
		field := names[pos]
		t.Run(field, func(t *testing.T) {
			vec, err := features.Normalize(map[string]any{field: "Yes"})
			require.NoError(t, err)
			for i, v := range vec {
				if i == pos {
					assert.Equal(t, 1.0, v)
				} else {
					assert.Zero(t, v, "position %d set by %s", i, field)
				}
			}
		})
	}
}

func TestNormalize_FlagExactness(t *testing.T) {
	values := []struct {
		name  string
		value any
		want  float64
	}{
		{"Yes", "Yes", 1},
		{"lowercase yes", "yes", 0},
		{"uppercase YES", "YES", 0},
		{"padded Yes", " Yes", 0},
		{"No", "No", 0},
		{"empty", "", 0},
		{"bool true", true, 0},
		{"number 1", json.Number("1"), 0},
		{"null", nil, 0},
	}

	for _, field := range features.FieldNames()[2:] {
		pos, ok := features.Index(field)
		require.True(t, ok)
		for _, tt := range values {
			t.Run(field+"/"+tt.name, func(t *testing.T) {
				vec, err := features.Normalize(map[string]any{field: tt.value})
				require.NoError(t, err)
				assert.Equal(t, tt.want, vec[pos])
			})
		}
	}
}

func TestNormalize_Gender(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"male", "male", 1},
		{"Male", "Male", 0},
		{"MALE", "MALE", 0},
		{"female", "female", 0},
		{"m", "m", 0},
		{"empty", "", 0},
		{"null", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := features.Normalize(map[string]any{"gender": tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.want, vec[1])
		})
	}

	vec, err := features.Normalize(map[string]any{})
	require.NoError(t, err)
	assert.Zero(t, vec[1], "absent gender")
}

func TestNormalize_Age(t *testing.T) {
	tests := []struct {
		body    string
		want    float64
		wantErr bool
	}{
		{body: `{}`, want: 0},
		{body: `{"age": 55}`, want: 55},
		{body: `{"age": 0}`, want: 0},
		{body: `{"age": 55.9}`, want: 55},
		{body: `{"age": "61"}`, want: 61},
		{body: `{"age": " 42 "}`, want: 42},
		{body: `{"age": true}`, want: 1},
		{body: `{"age": null}`, wantErr: true},
		{body: `{"age": "abc"}`, wantErr: true},
		{body: `{"age": "55.5"}`, wantErr: true},
		{body: `{"age": ""}`, wantErr: true},
		{body: `{"age": [55]}`, wantErr: true},
		{body: `{"age": {"years": 55}}`, wantErr: true},
		{body: `{"age": 1e400}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			vec, err := features.Normalize(decode(t, tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, features.ErrInvalidField)
				assert.Contains(t, err.Error(), "age")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, vec[0])
		})
	}
}

func TestNormalize_IgnoresUnknownFields(t *testing.T) {
	vec, err := features.Normalize(map[string]any{"heart_rate": "Yes", "Chest_Pain": "Yes"})
	require.NoError(t, err)
	assert.Equal(t, make(features.Vector, features.Count), vec)
}

func TestFieldAndColumnNames(t *testing.T) {
	fields := features.FieldNames()
	columns := features.ColumnNames()
	require.Len(t, fields, features.Count)
	require.Len(t, columns, features.Count)

	assert.Equal(t, "age", fields[0])
	assert.Equal(t, "chronic_stress", fields[features.Count-1])
	assert.Equal(t, "Pain_Arms_Jaw_Back", columns[8])
	assert.Equal(t, "Sedentary_Lifestyle", columns[15])

	_, ok := features.Index("unknown")
	assert.False(t, ok)
}
