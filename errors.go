package wad

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is in callers; every one of them arrives wrapped
// in either a *FormatError or a *ConfigError.
var (
	// ErrBadMagic means the archive does not start with IWAD or PWAD.
	ErrBadMagic = errors.New("unrecognized archive tag")
	// ErrTruncated means a header, table or record ends past the end of its buffer.
	ErrTruncated = errors.New("truncated data")
	// ErrDirectoryBounds means a directory entry points outside the archive.
	ErrDirectoryBounds = errors.New("directory entry out of bounds")
	// ErrMissingLump means a mandatory lump such as PNAMES or TEXTURE1 is absent.
	ErrMissingLump = errors.New("mandatory lump missing")
	// ErrBadPatchIndex means a kept texture references a patch outside PNAMES.
	ErrBadPatchIndex = errors.New("patch index outside name table")

	// ErrLevelNotFound means the level to keep has no marker in the archive.
	ErrLevelNotFound = errors.New("level not found")
	// ErrUnpairedFlats means only one of the canonical floor and ceiling flats was given.
	ErrUnpairedFlats = errors.New("canonical floor and ceiling flats must be provided together")
	// ErrLightRange means the minimum sector light is neither -1 nor within 0..255.
	ErrLightRange = errors.New("minimum sector light must be -1 or within 0..255")
	// ErrUnknownTexture means a canonical wall texture is not defined by any texture table.
	ErrUnknownTexture = errors.New("canonical wall texture not found")
	// ErrUnknownFlat means a canonical flat is not present between the flat markers.
	ErrUnknownFlat = errors.New("canonical flat not found")
	// ErrBadPattern means a user supplied drop pattern does not compile.
	ErrBadPattern = errors.New("invalid drop pattern")
)

// FormatError reports an archive that cannot be parsed or lacks required content.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return "wad format: " + e.Msg
	}
	return fmt.Sprintf("wad format: %v: %v", e.Msg, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ConfigError reports options that are invalid on their own or for the given archive.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "configuration: " + e.Msg
	}
	return fmt.Sprintf("configuration: %v: %v", e.Msg, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func formatErrorf(err error, format string, a ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, a...), Err: err}
}

func configErrorf(err error, format string, a ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, a...), Err: err}
}

// IsFormatError reports whether err is or wraps a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
