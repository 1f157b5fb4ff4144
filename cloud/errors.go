package cloud

import "errors"

var (
	// ErrMismatchedColors is returned by AddPoints when an explicit color
	// array does not pair 1:1 with the point array.
	ErrMismatchedColors = errors.New("points and colors must have same length")

	// ErrEmptyCloud is returned by queries that need at least one point.
	ErrEmptyCloud = errors.New("cloud has no points")

	// ErrMemberType is returned by group construction when a member does
	// not carry point-cloud data.
	ErrMemberType = errors.New("all members must be point clouds")
)
