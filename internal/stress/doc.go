// Package stress classifies a self-reported stress level into a UI-density
// tier and maps each tier onto the interface affordances a presentation layer
// should expose.
//
// Classify is the single entry point for turning a level into a Tier.
// VisibleAffordances and ReadingTypography replace scattered show/hide
// conditionals with one table that callers and tests can enumerate.
package stress
