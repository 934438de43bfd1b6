// Package constants provides shared constants used throughout the cinetech
// codebase. This includes timeouts, storage keys, and the defaults applied
// when normalizing records imported from the external metadata service.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for requests to the
	// external metadata service
	DefaultHTTPTimeout = 10 * time.Second
)

// Storage constants define the persistence sink keys for the two collections
const (
	// FilmsKey is the sink key for the serialized film collection
	FilmsKey = "cinetech.films"

	// DirectorsKey is the sink key for the serialized director collection
	DirectorsKey = "cinetech.directors"
)

// Snapshot constants
const (
	// SnapshotVersion is the version string written into exported snapshots
	SnapshotVersion = "1.0"
)

// Import defaults are applied when the external metadata service returns a
// "not available" marker instead of real data
const (
	// DefaultDuration is the fallback runtime in minutes
	DefaultDuration = 120

	// DefaultRating is the fallback rating
	DefaultRating = 7.0

	// DefaultGenre is the fallback genre label
	DefaultGenre = "Unspecified"

	// PlaceholderPoster is the fallback poster URI
	PlaceholderPoster = "https://via.placeholder.com/300x450?text=Poster+not+available"
)

// Limit constants define various limits and capacities
const (
	// MaxSearchDetails is the maximum number of external search candidates
	// that are resolved to full records per query
	MaxSearchDetails = 8

	// TopDirectorsCount is the default size of the top-directors aggregate
	TopDirectorsCount = 5

	// RecentFilmsCount is the default size of the recent-films view
	RecentFilmsCount = 5
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
