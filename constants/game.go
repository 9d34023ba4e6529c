package constants

import "time"

// Attempts and scoring
const (
	// MaxAttempts is how many submissions a level allows before it is failed
	MaxAttempts = 2

	// PointsPerStar is the score awarded for each star earned on a level
	PointsPerStar = 100

	// FeedbackDuration is how long a feedback message stays on screen
	FeedbackDuration = 3500 * time.Millisecond

	// OverlayDelay is the pause between the end of a sequence and the result overlay
	OverlayDelay = 1000 * time.Millisecond
)

// Coefficient input limits
const (
	CoefficientMin = -15
	CoefficientMax = 15
)

// Level generation
const (
	// MaxTier caps the difficulty tier derived from the level number
	MaxTier = 5

	// BaseRange is the vertex coordinate range at tier 0
	BaseRange = 3

	// MaxRange caps the vertex coordinate range
	MaxRange = 8

	// MaxSlopeOffset is the largest horizontal distance of the slope point from the vertex
	MaxSlopeOffset = 3

	// MinHalfExtent and MaxHalfExtent clamp the fitted viewing box
	MinHalfExtent = 7
	MaxHalfExtent = 14

	// BoundsPadding is the margin added around the furthest target coordinate
	BoundsPadding = 2

	// MinFitCoord keeps small levels from zooming in too far
	MinFitCoord = 6
)
