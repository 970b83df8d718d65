// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"errors"
	"strings"
)

const (
	// LevelNone prints the message without decoration.
	LevelNone Level = "none"
	// LevelInfo is selected by "info" or "0".
	LevelInfo Level = "info"
	// LevelWarning is selected by "warning" or "-1".
	LevelWarning Level = "warning"
	// LevelError is selected by "error" or "1".
	LevelError Level = "error"
	// LevelFatal is selected by "fatal" or "2".
	LevelFatal Level = "fatal"
)

// ErrInvalidLevel is the sentinel behind InvalidLevelError.
var ErrInvalidLevel = errors.New("Invalid level option") //nolint:staticcheck // user-facing message

type (
	// Level is the severity of a message.
	Level string

	// InvalidLevelError reports a level argument that names no known level.
	InvalidLevelError struct {
		Value string
	}
)

var levelCodes = map[string]Level{
	"":   LevelNone,
	"0":  LevelInfo,
	"-1": LevelWarning,
	"1":  LevelError,
	"2":  LevelFatal,
}

// Error implements the error interface.
func (e *InvalidLevelError) Error() string { return ErrInvalidLevel.Error() }

// Unwrap returns ErrInvalidLevel for errors.Is() compatibility.
func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }

// ParseLevel accepts either a level name or its numeric code. An empty
// string selects LevelNone.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if l, ok := levelCodes[s]; ok {
		return l, nil
	}
	l := Level(strings.ToLower(s))
	if err := l.Validate(); err != nil {
		return "", &InvalidLevelError{Value: s}
	}
	return l, nil
}

// Validate returns an error if the level is not one of the defined levels.
func (l Level) Validate() error {
	switch l {
	case LevelNone, LevelInfo, LevelWarning, LevelError, LevelFatal:
		return nil
	default:
		return &InvalidLevelError{Value: string(l)}
	}
}

// Code returns the numeric code of the level. LevelNone has no code and
// reports false.
func (l Level) Code() (int, bool) {
	switch l {
	case LevelInfo:
		return 0, true
	case LevelWarning:
		return -1, true
	case LevelError:
		return 1, true
	case LevelFatal:
		return 2, true
	case LevelNone:
		return 0, false
	}
	return 0, false
}

// String returns the level name.
func (l Level) String() string { return string(l) }
