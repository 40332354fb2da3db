// Package session holds the live values of one editing session and the
// diff/validation engine that runs over them.
//
// A Session has exactly one entry per schema key. Non-boolean entries store
// the raw text the user typed, unvalidated, so intermediate keystrokes can be
// invalid; boolean entries are toggles. The sync flag ties BaseTurnRate and
// BaseLookUpRate together while it is on.
//
// Validation classifies each entry as valid or invalid from its text and the
// kind of its schema default. Diff produces a preset holding exactly the keys
// whose rendering differs from the default, plus the sync flag when it is on.
package session
