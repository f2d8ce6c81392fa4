// Package diagnostic collects structured findings about an evaluation for
// the command line to report.
//
// Key capabilities:
//   - Unconsumed token warnings with "did you mean" suggestions
//   - Tags left without a value
//   - Indexed arguments that received no token
//   - Type identifiers that have no resolver
package diagnostic
