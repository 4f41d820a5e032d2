// Package uischema loads the prompt overlay for the intake topics: labels,
// help texts, widgets and visibility conditions keyed by field path. The
// profile types stay free of presentation details; the terminal runner
// consults the overlay while walking a record.
package uischema
