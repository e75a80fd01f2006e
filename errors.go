package linkel

import "errors"

// Sentinel errors for component operations.
var (
	ErrNilElement    = errors.New("linkel: nil element")
	ErrNotMounted    = errors.New("linkel: link not mounted")
	ErrAlreadyLinked = errors.New("linkel: element already has a mounted link")
	ErrNoLinkElement = errors.New("linkel: markup contains no cmp-link element")
)

// IsNotMounted checks if err is a not-mounted error.
func IsNotMounted(err error) bool {
	return errors.Is(err, ErrNotMounted)
}

// IsNoLinkElement checks if err reports markup without a cmp-link element.
func IsNoLinkElement(err error) bool {
	return errors.Is(err, ErrNoLinkElement)
}
