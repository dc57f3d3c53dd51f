package codec

import (
	"errors"
	"fmt"
)

// ErrUnknownEncoding wraps a failed Family lookup for callers that want
// a real error value instead of Create's boolean ok — see CreateOrError.
// Conversion fidelity loss is never reported this way; see Outcome.
var ErrUnknownEncoding = errors.New("codec: unknown or unsupported encoding identifier")

// CreateOrError resolves id via the default registry, wrapping
// ErrUnknownEncoding with id's own string form when no factory is
// registered for its Family.
func CreateOrError(id EncodingID) (Codec, error) {
	c, ok := Create(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, id)
	}
	return c, nil
}
