package format

import "github.com/pkg/errors"

// Error kinds returned by this package and the resolution engine. Wrapped
// errors keep the kind reachable through errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrGeometry      = errors.New("geometry error")
)
