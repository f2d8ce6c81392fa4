// Package render writes evaluation results as JSON, YAML or a spew dump.
package render

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"argseval/result"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatSpew Format = "spew"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatSpew:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Document is the serialized form of one evaluation.
type Document struct {
	Values    map[string]any `json:"values" yaml:"values"`
	Remaining []string       `json:"remaining" yaml:"remaining"`
	Consumed  int            `json:"consumed" yaml:"consumed"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument captures m and err. Values are converted with Plain.
func NewDocument(m *result.Map, err error) Document {
	doc := Document{Values: map[string]any{}, Remaining: []string{}}

	if m != nil {
		for k, v := range m.All() {
			doc.Values[k] = Plain(v)
		}

		if rest := m.Remaining(); rest != nil {
			doc.Remaining = rest
		}

		doc.Consumed = m.Consumed()
	}

	if err != nil {
		doc.Error = err.Error()
	}

	return doc
}

// Plain converts a resolved value to a form every encoder writes the same
// way: text marshalers and stringers become strings, byte slices become
// strings, NaN and infinities become "NaN", "+Inf" and "-Inf", and slices
// are converted element-wise.
func Plain(v any) any {
	switch x := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return x
	case float32:
		if nonFinite(float64(x)) {
			return strconv.FormatFloat(float64(x), 'g', -1, 32)
		}

		return x
	case float64:
		if nonFinite(x) {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}

		return x
	case []byte:
		return string(x)
	case []string:
		return x
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return fmt.Sprint(x)
		}

		return string(text)
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Plain(rv.Index(i).Interface())
		}

		return out
	}

	return v
}

func nonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Write renders m and err to w in format. The spew format dumps the raw
// values with their Go types.
func Write(w io.Writer, format Format, m *result.Map, err error) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(NewDocument(m, err))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if e := enc.Encode(NewDocument(m, err)); e != nil {
			return e
		}

		return enc.Close()
	case FormatSpew:
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}

		var values map[string]any
		if m != nil {
			values = m.All()
		}

		cfg.Fdump(w, values)

		if err != nil {
			_, e := fmt.Fprintf(w, "error: %v\n", err)
			return e
		}

		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Line renders m and err as a single line of JSON. Values that cannot be
// encoded are dropped and the encoding failure is reported in the error field.
func Line(m *result.Map, err error) []byte {
	doc := NewDocument(m, err)

	line, encErr := json.Marshal(doc)
	if encErr == nil {
		return line
	}

	msg := fmt.Sprintf("failed to encode values: %v", encErr)
	if doc.Error != "" {
		msg = doc.Error + "; " + msg
	}

	// Only strings and ints are left, which always encode.
	line, _ = json.Marshal(Document{
		Values:    map[string]any{},
		Remaining: doc.Remaining,
		Consumed:  doc.Consumed,
		Error:     msg,
	})

	return line
}
