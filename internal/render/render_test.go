package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"lukechampine.com/uint128"

	"argseval/result"
)

func sample() *result.Map {
	m := result.New()
	m.Set("name", "svc")
	m.Set("count", 3)
	m.Set("timeout", 5*time.Second)
	m.Set("big", big.NewInt(12345678901234))
	m.Set("wide", uint128.From64(7))
	m.Set("raw", []byte("bytes"))
	m.Set("cmd", []any{"kub", 14, 2 * time.Minute})
	m.Set(result.VariadicKey, []string{"x", "y"})
	m.SetOutcome(9, []string{"left"})

	return m
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "spew", want: FormatSpew},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sample(), nil)

	want := Document{
		Values: map[string]any{
			"name":             "svc",
			"count":            3,
			"timeout":          "5s",
			"big":              "12345678901234",
			"wide":             "7",
			"raw":              "bytes",
			"cmd":              []any{"kub", 14, "2m0s"},
			result.VariadicKey: []string{"x", "y"},
		},
		Remaining: []string{"left"},
		Consumed:  9,
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDocument_NilMapAndError(t *testing.T) {
	doc := NewDocument(nil, errors.New("boom"))

	assert.Empty(t, doc.Values)
	assert.NotNil(t, doc.Remaining)
	assert.Equal(t, "boom", doc.Error)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample(), nil))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	values := got["values"].(map[string]any)
	assert.Equal(t, "5s", values["timeout"])
	assert.Equal(t, float64(3), values["count"])
	assert.Equal(t, float64(9), got["consumed"])
	assert.NotContains(t, got, "error")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sample(), errors.New("boom")))

	var got Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "svc", got.Values["name"])
	assert.Equal(t, []string{"left"}, got.Remaining)
	assert.Equal(t, "boom", got.Error)
}

func TestWrite_Spew(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatSpew, sample(), errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, `(string) (len=3) "svc"`)
	assert.Contains(t, out, "(time.Duration) 5s")
	assert.Contains(t, out, "error: boom")
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), sample(), nil))
}

func TestLine(t *testing.T) {
	line := Line(sample(), nil)
	assert.NotContains(t, string(line), "\n")
	assert.Contains(t, string(line), `"consumed":9`)
}

func TestPlain_NonFiniteFloats(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
		{"float32 nan", float32(math.NaN()), "NaN"},
		{"float32 infinity", float32(math.Inf(-1)), "-Inf"},
		{"finite float64", 1.5, 1.5},
		{"finite float32", float32(2.5), float32(2.5)},
		{"slice", []float64{1, math.Inf(1)}, []any{1.0, "+Inf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(tt.in))
		})
	}
}

func TestWrite_JSON_NonFiniteFloat(t *testing.T) {
	m := result.New()
	m.Set("x", math.NaN())
	m.SetOutcome(1, nil)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, m, nil))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "NaN", doc.Values["x"])
}

func TestLine_EncodingFailure(t *testing.T) {
	tests := []struct {
		name    string
		evalErr error
		want    string
	}{
		{"no evaluation error", nil, "failed to encode values: "},
		{"with evaluation error", errors.New("boom"), "boom; failed to encode values: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := result.New()
			m.Set("ch", make(chan int))
			m.SetOutcome(2, []string{"left"})

			var doc Document
			require.NoError(t, json.Unmarshal(Line(m, tt.evalErr), &doc))
			assert.Empty(t, doc.Values)
			assert.Equal(t, []string{"left"}, doc.Remaining)
			assert.Equal(t, 2, doc.Consumed)
			assert.Contains(t, doc.Error, tt.want)
		})
	}
}
