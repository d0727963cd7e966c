// Package seed turns user input into the uint32 that drives generation.
//
// Input arrives as a number, a string, or nothing at all. Numbers are used
// as given, strings are hashed, and absent input falls back to the clock.
// The same rules apply to the -seed flag, ORRERY_SEED and the ?seed= query
// parameter of a share link.
package seed

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-orrery/internal/rng"
)

// QueryParam is the share-link query key.
const QueryParam = "seed"

// Kind says how an Input was supplied.
type Kind int

const (
	KindNone Kind = iota
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Input is a seed before resolution.
type Input struct {
	Kind   Kind
	Number uint32
	Text   string
}

// Number wraps a numeric seed.
func Number(n uint32) Input {
	return Input{Kind: KindNumber, Number: n}
}

// Text wraps a string seed.
func Text(s string) Input {
	return Input{Kind: KindText, Text: s}
}

// None is the absent seed.
func None() Input {
	return Input{}
}

// Parse classifies a raw string. Surrounding whitespace is ignored.
// Strings that parse as a uint32 are numbers, the empty string is absent,
// and anything else is text. Text keeps its original bytes so hashing stays
// case- and whitespace-sensitive inside the value.
func Parse(s string) Input {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None()
	}
	if n, err := strconv.ParseUint(trimmed, 10, 32); err == nil {
		return Number(uint32(n))
	}
	return Text(trimmed)
}

// Resolve produces the final seed. now is only consulted for KindNone.
func Resolve(in Input, now time.Time) uint32 {
	switch in.Kind {
	case KindNumber:
		return in.Number
	case KindText:
		return rng.SeedFromString(in.Text)
	default:
		return FromTime(now)
	}
}

// FromTime folds a wall-clock reading to 32 bits.
func FromTime(now time.Time) uint32 {
	return uint32(now.UnixMilli() & 0xffffffff)
}

// String renders the input the way it would be typed back in.
func (in Input) String() string {
	switch in.Kind {
	case KindNumber:
		return strconv.FormatUint(uint64(in.Number), 10)
	case KindText:
		return in.Text
	default:
		return ""
	}
}

// FromQuery reads the seed parameter from decoded query values.
func FromQuery(q url.Values) Input {
	return Parse(q.Get(QueryParam))
}

// FromLink extracts the seed from a share link or a bare query string.
func FromLink(link string) (Input, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return None(), nil
	}

	if strings.HasPrefix(link, "?") {
		q, err := url.ParseQuery(link[1:])
		if err != nil {
			return None(), fmt.Errorf("parse query %q: %w", link, err)
		}
		return FromQuery(q), nil
	}

	u, err := url.Parse(link)
	if err != nil {
		return None(), fmt.Errorf("parse link %q: %w", link, err)
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return None(), fmt.Errorf("parse query %q: %w", u.RawQuery, err)
	}
	return FromQuery(q), nil
}

// ShareURL returns base with the seed query parameter set. Other parameters
// on base are preserved.
func ShareURL(base string, s uint32) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base %q: %w", base, err)
	}
	q := u.Query()
	q.Set(QueryParam, strconv.FormatUint(uint64(s), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
