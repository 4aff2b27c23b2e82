package gif

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/tauraamui/xerror"
)

const (
	MalformedFormat = xerror.Kind("malformed_format")
	TruncatedStream = xerror.Kind("truncated_stream")
)

// Sentinel causes carried by every decode error, match them with errors.Is.
var (
	ErrMalformedFormat = errors.New("gif: malformed format")
	ErrTruncatedStream = errors.New("gif: truncated stream")
)

func malformed(format string, a ...interface{}) error {
	return xerror.Errorf("%s: %w", fmt.Sprintf(format, a...), ErrMalformedFormat).AsKind(MalformedFormat)
}

func truncated(what string) error {
	return xerror.Errorf("reading %s: %w", what, ErrTruncatedStream).AsKind(TruncatedStream)
}

// readErr turns a failed read of what into a decode error. Running out of
// input is a truncated stream, anything else is the reader's own failure.
func readErr(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return truncated(what)
	}
	return pkgerrors.Wrapf(err, "gif: reading %s", what)
}
