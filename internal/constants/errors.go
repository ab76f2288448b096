package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, run 'lulu configure' or set LULU_API_KEY")
	ErrEmptyAPIKey       = errors.New("API key cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Flag errors.
var (
	ErrInvalidStatus   = errors.New("invalid value for --status")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidLevel    = errors.New("invalid value for --level")
	ErrMissingArgument = errors.New("missing required argument")
)
