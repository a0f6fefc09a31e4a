package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownSport = errors.New("unknown sport")
)
