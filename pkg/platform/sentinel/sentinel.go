package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Provider adapters and stores
// return these (optionally wrapped) so callers can translate them into domain
// results instead of leaking transport errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the store or registry
// - ErrUnavailable: service or resource temporarily unreachable
// - ErrInvalidState: entity in wrong state for the requested operation
var (
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("unavailable")
	ErrInvalidState = errors.New("invalid state")
)
