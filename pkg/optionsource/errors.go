package optionsource

import "errors"

var (
	// ErrNilClient is returned by sources built without a backing client.
	ErrNilClient = errors.New("optionsource: nil client")

	ErrEmptyQuery          = errors.New("optionsource: empty query")
	ErrConnectionFailed    = errors.New("optionsource: connection failed")
	ErrFailedToParseConfig = errors.New("optionsource: failed to parse connection config")
	ErrSearchFailed        = errors.New("optionsource: search request failed")
)
