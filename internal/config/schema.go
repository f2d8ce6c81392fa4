package config

// File is the root of an engine definition.
type File struct {
	// Version of the definition schema.
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`

	// Order lists the pass styles by name. Empty keeps the default order.
	Order []string `yaml:"order,omitempty" toml:"order,omitempty"`

	// Mixing is nil when the file leaves the mode to the order.
	Mixing *bool `yaml:"mixing,omitempty" toml:"mixing,omitempty"`

	RequireAllIndexed bool   `yaml:"require_all_indexed,omitempty" toml:"require_all_indexed,omitempty"`
	Variadic          bool   `yaml:"variadic,omitempty" toml:"variadic,omitempty"`
	Separator         string `yaml:"separator,omitempty" toml:"separator,omitempty"`

	// Aliases maps a new type identifier onto an existing one.
	Aliases map[string]string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`

	Indexed     []Arg        `yaml:"indexed,omitempty" toml:"indexed,omitempty"`
	Named       []Arg        `yaml:"named,omitempty" toml:"named,omitempty"`
	Tagged      []Arg        `yaml:"tagged,omitempty" toml:"tagged,omitempty"`
	Words       []string     `yaml:"words,omitempty" toml:"words,omitempty"`
	Chains      []Chain      `yaml:"chains,omitempty" toml:"chains,omitempty"`
	Expressions []Expression `yaml:"expressions,omitempty" toml:"expressions,omitempty"`
}

// Arg declares an indexed, named or tagged argument.
type Arg struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type,omitempty" toml:"type,omitempty"`
}

// Chain declares a fixed run of literals.
type Chain struct {
	Name     string   `yaml:"name" toml:"name"`
	Literals []string `yaml:"literals" toml:"literals"`
}

// Expression declares a run of element matchers.
type Expression struct {
	Name     string    `yaml:"name" toml:"name"`
	Elements []Element `yaml:"elements" toml:"elements"`
}

// Element is one expression element. Exactly one matcher field is set, except
// that Type may accompany Pattern.
type Element struct {
	Literal     *string  `yaml:"literal,omitempty" toml:"literal,omitempty"`
	Type        string   `yaml:"type,omitempty" toml:"type,omitempty"`
	Pattern     string   `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	OneOf       []string `yaml:"one_of,omitempty" toml:"one_of,omitempty"`
	Prefix      string   `yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Suffix      string   `yaml:"suffix,omitempty" toml:"suffix,omitempty"`
	StripPrefix string   `yaml:"strip_prefix,omitempty" toml:"strip_prefix,omitempty"`
}

// matchers counts the matcher fields that are set, not counting a Type paired
// with a Pattern.
func (e Element) matchers() int {
	n := 0

	if e.Literal != nil {
		n++
	}

	if e.Pattern != "" {
		n++
	} else if e.Type != "" {
		n++
	}

	if len(e.OneOf) > 0 {
		n++
	}

	if e.Prefix != "" {
		n++
	}

	if e.Suffix != "" {
		n++
	}

	if e.StripPrefix != "" {
		n++
	}

	return n
}
