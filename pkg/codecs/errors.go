package codecs

import (
	"github.com/arthur-debert/modulify/pkg/errors"
	"github.com/arthur-debert/modulify/pkg/types"
)

func errUnsupportedDocument(doc types.Document) error {
	return errors.Newf(errors.ErrUnsupported, "%T is not a record", doc)
}

// Malformed wraps a decoding failure of the named format.
func Malformed(err error, format string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.ErrInvalidInput, "input is not a valid %s record", format).
		WithDetail("format", format)
}
