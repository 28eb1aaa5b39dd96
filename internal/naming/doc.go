// Package naming derives identifiers for generated declarations.
package naming
