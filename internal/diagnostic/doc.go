// Package diagnostic provides structured errors, warnings and notes
// produced while checking field declarations.
//
// Key capabilities:
//   - Stable codes per problem kind (e.g. "duplicate_member")
//   - Location by schema and member name
package diagnostic
