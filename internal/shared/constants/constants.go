// Package constants defines application-wide constants.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	// MaxSerialOfDay is the upper bound of the per-day UUT sequence space.
	// Requesting a sequence past it is a hard capacity failure.
	MaxSerialOfDay = 9999

	// DefaultAllocatorMaxAttempts bounds the confirm retry loop.
	DefaultAllocatorMaxAttempts = 5
)
