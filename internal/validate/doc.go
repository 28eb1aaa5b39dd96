// Package validate decides whether a blueprint and its permitted variants can
// be sealed.
//
// Validate is pure: it reads the model, compares types through the supplied
// TypeRelation and returns every violation it finds. It never stops at the
// first problem, so one run reports the complete list.
//
// Failures (generation is skipped for the blueprint):
//   - more than one generic variant, or a generic arity mismatch
//   - unreachable, duplicate or interface-typed variants
//   - non-final variants in strict mode
//   - blueprint methods a variant does not implement (see MatchMember)
//
// Advisories (generation proceeds):
//   - non-final variants in lenient mode
package validate
