package dto

// Request is the envelope every write endpoint expects: the payload lives
// under a "data" property. A body without it is rejected before any
// domain validation runs.
type Request[T any] struct {
	Data *T `json:"data" validate:"required"`
}
