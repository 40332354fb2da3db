// Package schema models the catalog of configurable game parameters: their
// sections, default values, and human descriptions.
//
// Values are a small tagged union (Int, Float, Bool, String) whose kind is
// inferred from literal text with a fixed, order-sensitive rule: boolean words
// first, then anything containing a dot as Float, then Int, falling back to
// String when parsing fails. The same rule is used for preset files so a value
// reads back the way it was written.
//
// A Schema is loaded once and never mutated; section and key order follow the
// source file.
package schema
