// Package match ranks and classifies candidate methods found on a variant
// against a blueprint member.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Classify / ClassifyResults: compare result types through a TypeRelation
//   - RankNearMatches: orders same-named candidates for diagnostics
package match
