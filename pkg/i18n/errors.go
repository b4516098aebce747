package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter     = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage  = errors.New("i18n: empty language code")
	ErrNoTranslations = errors.New("i18n: no translations found")

	ErrFailedToParseJSON = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")
	ErrParsingCancelled  = errors.New("i18n: parsing cancelled")

	ErrUnsupportedFile  = errors.New("i18n: unsupported translation file")
	ErrFailedToReadFile = errors.New("i18n: failed to read translation file")
	ErrLoadingCancelled = errors.New("i18n: loading translations cancelled")
)

// ErrLanguageNotSupported indicates that the requested language is not available.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("i18n: language not supported: %s", e.Lang)
}
