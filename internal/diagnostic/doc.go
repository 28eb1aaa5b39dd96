// Package diagnostic provides structured failures and advisories reported
// while validating blueprints and synthesizing their type graphs.
//
// Key capabilities:
//   - Failures that stop generation for one blueprint
//   - Advisories that are reported while generation proceeds
//   - A locus naming the blueprint, variant and member concerned
//   - A stable code per rule, grouped into kinds
package diagnostic
