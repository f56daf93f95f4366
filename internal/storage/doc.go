// Package storage persists league schedule snapshots as flat CSV files,
// one file per league, for later comparison against a freshly fetched
// schedule.
package storage
