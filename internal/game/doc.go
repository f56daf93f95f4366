// Package game provides the core schedule model for LCMHL games.
//
// The package turns free-text feed event descriptions into typed game
// records, derives a stable identifier from where and when each game is
// played, and compares two schedules keyed by that identifier to surface
// reschedules, venue swaps and cancellations across runs.
package game
