package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalid is wrapped by every validation failure of a decoded entity.
var ErrInvalid = errors.New("invalid entity")

// MinScore and MaxScore bound impact and confidence scores.
const (
	MinScore Score = 0
	MaxScore Score = 10
)

// Score is an impact magnitude or a confidence value in [0,10].
type Score float64

// Valid reports whether the score lies in [MinScore, MaxScore].
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// String formats the score as "7/10".
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64) + "/10"
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func checkScore(path string, s Score) error {
	if !s.Valid() {
		return invalidf("%s: score %v out of range [0,10]", path, float64(s))
	}
	return nil
}
