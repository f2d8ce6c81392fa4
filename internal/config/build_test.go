package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argseval/resolver"
	"argseval/result"
	"argseval/spec"
)

func TestFile_Engine(t *testing.T) {
	for _, name := range []string{"kub.yaml", "kub.toml"} {
		t.Run(name, func(t *testing.T) {
			f, err := LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)

			e, err := f.Engine(nil)
			require.NoError(t, err)
			assert.Empty(t, e.MissingTypes())

			m, err := e.Evaluate([]string{
				"edit", "<!1234567890>", "res/cells.db", "4",
				"label", "app=web",
				"--timeout", "5s",
				"path=./a/../b", "port=8080",
				"help", "--dry", "--run",
				"svc", "3", "extra", "more",
			})
			require.NoError(t, err)

			assert.Equal(t, []any{"edit", int64(1234567890), "res/cells.db", 4}, m.Value("command"))
			assert.Equal(t, []any{"label", "web"}, m.Value("label"))
			assert.Equal(t, 5*time.Second, m.Value("--timeout"))
			assert.Equal(t, "b", m.Value("path"))
			assert.Equal(t, uint16(8080), m.Value("port"))
			assert.Equal(t, []string{"help"}, m.Value("help"))
			assert.Equal(t, []string{"--dry", "--run"}, m.Value("dry run"))
			assert.Equal(t, "svc", m.Value("target"))
			assert.Equal(t, 3, m.Value("replicas"))
			assert.Equal(t, []string{"extra", "more"}, m.Variadic())
			assert.False(t, m.Has("-n"))
			assert.Empty(t, m.Remaining())
		})
	}
}

func TestFile_AliasConversionError(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "kub.yaml"))
	require.NoError(t, err)

	e, err := f.Engine(nil)
	require.NoError(t, err)

	_, err = e.Evaluate([]string{"port=http"})
	require.ErrorIs(t, err, resolver.ErrConversion)

	var ce *resolver.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, resolver.TypeID("port"), ce.Type)
	assert.NotErrorIs(t, ce.Err, resolver.ErrConversion)
}

func TestFile_Builder_Order(t *testing.T) {
	on, off := true, false

	tests := []struct {
		name       string
		file       File
		wantOrder  []spec.Style
		wantMixing bool
	}{
		{
			name:       "defaults",
			file:       File{},
			wantOrder:  spec.DefaultOrder(),
			wantMixing: true,
		},
		{
			name:       "order implies strict",
			file:       File{Order: []string{"named", "tagged", "named"}},
			wantOrder:  []spec.Style{spec.StyleNamed, spec.StyleTagged, spec.StyleNamed},
			wantMixing: false,
		},
		{
			name:       "order with mixing",
			file:       File{Order: []string{"word"}, Mixing: &on},
			wantOrder:  []spec.Style{spec.StyleChained},
			wantMixing: true,
		},
		{
			name:       "strict default order",
			file:       File{Mixing: &off},
			wantOrder:  spec.DefaultOrder(),
			wantMixing: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.file.Builder(nil)
			require.NoError(t, err)

			set := b.Set()
			assert.Equal(t, tt.wantOrder, set.Order)
			assert.Equal(t, tt.wantMixing, set.Mixing)
		})
	}
}

func TestFile_Builder_Separator(t *testing.T) {
	f, err := Parse([]byte("separator: \":\"\nnamed:\n  - name: k\n"), FormatYAML)
	require.NoError(t, err)

	e, err := f.Engine(nil)
	require.NoError(t, err)

	m, err := e.Evaluate([]string{"k:v"})
	require.NoError(t, err)
	assert.Equal(t, "v", result.AsOr(m, "k", ""))
}

func TestFile_Builder_Errors(t *testing.T) {
	lit := "x"

	tests := []struct {
		name    string
		file    File
		message string
	}{
		{
			name:    "unknown style",
			file:    File{Order: []string{"positional"}},
			message: `unknown argument style "positional"`,
		},
		{
			name: "two matchers",
			file: File{Expressions: []Expression{{
				Name:     "e",
				Elements: []Element{{Literal: &lit, Prefix: "-"}},
			}}},
			message: `expression "e" element 0: want exactly one matcher, got 2`,
		},
		{
			name: "no matcher",
			file: File{Expressions: []Expression{{
				Name:     "e",
				Elements: []Element{{Literal: &lit}, {}},
			}}},
			message: `expression "e" element 1: want exactly one matcher, got 0`,
		},
		{
			name: "bad pattern",
			file: File{Expressions: []Expression{{
				Name:     "e",
				Elements: []Element{{Pattern: "("}},
			}}},
			message: "failed to compile pattern",
		},
		{
			name:    "self alias",
			file:    File{Aliases: map[string]string{"a": "a"}},
			message: `alias "a" refers to itself`,
		},
		{
			name:    "alias cycle",
			file:    File{Aliases: map[string]string{"a": "b", "b": "a"}},
			message: "alias cycle a -> b -> a",
		},
		{
			name:    "alias cycle reached through another alias",
			file:    File{Aliases: map[string]string{"c": "d", "d": "b", "b": "a", "a": "d"}},
			message: "alias cycle a -> d -> b -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Builder(nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFile_Builder_AliasCycleReportedOnce(t *testing.T) {
	f := File{
		Aliases: map[string]string{"a": "b", "b": "a", "c": "a"},
		Indexed: []Arg{{Name: "x", Type: "a"}},
	}

	reg := resolver.NewDefaultRegistry()

	_, err := f.Engine(reg)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "alias cycle"))
	assert.False(t, reg.Has("a"))
	assert.False(t, reg.Has("c"))
}

func TestFile_Engine_AliasChain(t *testing.T) {
	f, err := Parse([]byte("aliases:\n  temp: celsius\n  celsius: float64\nindexed:\n  - name: x\n    type: temp\n"), FormatYAML)
	require.NoError(t, err)

	e, err := f.Engine(nil)
	require.NoError(t, err)

	m, err := e.Evaluate([]string{"21.5"})
	require.NoError(t, err)
	assert.InDelta(t, 21.5, m.Value("x"), 1e-9)
}

func TestFile_Engine_MalformedChain(t *testing.T) {
	f := File{Chains: []Chain{{Name: "empty"}}}

	_, err := f.Engine(nil)
	require.ErrorIs(t, err, spec.ErrMalformedSpec)
}

func TestFile_Engine_SharedRegistry(t *testing.T) {
	reg := resolver.NewDefaultRegistry()
	f := File{Aliases: map[string]string{"celsius": "float64"}}

	e, err := f.Engine(reg)
	require.NoError(t, err)
	assert.Same(t, reg, e.Registry())
	assert.True(t, reg.Has("celsius"))
}
