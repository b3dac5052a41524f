package domain

import "errors"

// Precondition violations abort assembly entirely. A malformed input must
// never degrade into an incomplete legal document.
var (
	ErrInvalidMode        = errors.New("invalid_document_mode")
	ErrInvalidCountryCode = errors.New("invalid_country_code")
	ErrNegativeAmount     = errors.New("negative_amount")
)
