// Package naming derives Go identifiers from declared field names and
// value labels, and ranks candidate names for "did you mean" hints.
//
// Declared names are free text (API keys such as "platform" or
// "in-progress"), while generated code needs exported identifiers.
// The derivation pipeline:
//  1. Split on separators (anything that is not a letter or digit).
//  2. Split CamelCase boundaries.
//  3. Upper-case the first rune of every token and join.
//  4. Prefix "V" when the result still cannot start an exported name.
package naming
