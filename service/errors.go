package service

import "errors"

// ErrInvalidParameters is returned, wrapped with the offending field, when
// loan parameters fail validation. It is never returned once a schedule has
// started building.
var ErrInvalidParameters = errors.New("invalid loan parameters")

// ErrInvalidPlan covers saved-plan metadata such as an empty name.
var ErrInvalidPlan = errors.New("invalid plan")
