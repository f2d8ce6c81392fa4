// Package config loads declarative engine definitions from YAML or TOML
// files and turns them into engine builders.
//
// A definition file has the following structure:
//
//	version: "1"
//	order: [expression, chained, tagged, named]
//	mixing: true
//	require_all_indexed: false
//	variadic: true
//	separator: "="
//	aliases:
//	  port: uint16
//	indexed:
//	  - name: source
//	  - name: count
//	    type: int
//	named:
//	  - name: path
//	    type: path
//	tagged:
//	  - name: --timeout
//	    type: duration
//	words: [help, version]
//	chains:
//	  - name: dry run
//	    literals: [--dry, --run]
//	expressions:
//	  - name: listen
//	    elements:
//	      - literal: listen
//	      - one_of: [tcp, udp]
//	      - pattern: ':(\d+)'
//	        type: port
//
// # Expression elements
//
// Each element sets exactly one of:
//
//   - literal: the token must equal the text
//   - type: a resolver must be registered under the identifier
//   - pattern: the regular expression must match the whole token; with type
//     the first capture group (or the whole token) is resolved
//   - one_of: the token must be one of the listed values
//   - prefix / suffix: the token must start / end with the text
//   - strip_prefix: the token must start with the text, which is removed
//     from the emitted value
//
// # Defaults
//
// Omitted argument types are "string". An explicit order turns mixing off
// unless mixing is also set.
package config
