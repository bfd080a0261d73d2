package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: row does not exist in the store
// - ErrConflict: a uniqueness constraint rejected the write
// - ErrAlreadyPublished: the verified email already has a published entry
// - ErrUnavailable: backend temporarily unreachable
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrAlreadyPublished = errors.New("already published")
	ErrUnavailable      = errors.New("unavailable")
)
