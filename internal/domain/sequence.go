package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidBit = errors.New("invalid bit character")

// BitSequence is an immutable string over the alphabet {'0', '1'}
type BitSequence string

// ParseBitSequence validates s and returns it as a BitSequence
func ParseBitSequence(s string) (BitSequence, error) {
	if i := strings.IndexFunc(s, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
		return "", fmt.Errorf("%w %q at offset %d", ErrInvalidBit, s[i], i)
	}
	return BitSequence(s), nil
}

func (s BitSequence) Len() int {
	return len(s)
}

// Ones returns the number of '1' characters in the sequence
func (s BitSequence) Ones() int {
	return strings.Count(string(s), "1")
}

func (s BitSequence) String() string {
	return string(s)
}

// FrequencyPValue returns the p-value of the monobit frequency test,
// erfc(|S_n| / sqrt(2n)) where S_n counts +1 for every '1' and -1 for every
// '0'. An empty sequence yields 1.
func (s BitSequence) FrequencyPValue() float64 {
	n := s.Len()
	if n == 0 {
		return 1
	}
	sum := 2*s.Ones() - n
	return math.Erfc(math.Abs(float64(sum)) / math.Sqrt(2*float64(n)))
}
