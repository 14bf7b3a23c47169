package domain

import "errors"

// Error taxonomy shared by the models and the API layer. Handlers translate
// these to HTTP statuses at the boundary.
var (
	ErrEmailRequired        = errors.New("email field is required")
	ErrInvalidUnit          = errors.New("unit must be one of DAY, WEEK, MONTH, YEAR")
	ErrInvalidPrice         = errors.New("price must be positive with at most 5 digits and 2 decimal places")
	ErrNotFound             = errors.New("record not found")
	ErrDuplicate            = errors.New("record already exists")
	ErrUnableToAuthenticate = errors.New("unable to authenticate with provided credentials")
)
