package item

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Kind tags the catalog variant of an item (book, album, movie).
// All variants share the same price/stock contract; variant-specific payload
// (author, artist, director) is presentation data and stays outside the core.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Book is a printed or electronic book catalog entry.
	Book

	// Album is a music album catalog entry.
	Album

	// Movie is a movie catalog entry.
	Movie
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Book:        "Book",
		Album:       "Album",
		Movie:       "Movie",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Book:  "Book",
		Album: "Album",
		Movie: "Movie",
	}
}

// Validate checks if the Kind value is one of the known catalog variants.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid item kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements fmt.Stringer and is safe on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a kind name as used by the catalog API.
// The match is exact; unknown names are rejected.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid item kind", s))
}
