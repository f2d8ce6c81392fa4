// Package match ranks declared argument names against a token that nothing
// consumed, to suggest what the user may have meant.
//
// Key functions:
//   - NormalizeName: folds a flag, key or literal to a comparable form
//   - Distance: computes the edit distance between strings, rune-wise
//   - Suggest: ranks candidates by fuzzy subsequence match, falling back to
//     normalized edit-distance similarity
package match
