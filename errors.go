package wifi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTruncated is returned when a value is shorter than its fixed-width
	// field requires.
	ErrTruncated = errors.New("value truncated")

	// ErrWrongLength is returned when a fixed-size value has an unexpected
	// length, such as a 5 byte hardware address.
	ErrWrongLength = errors.New("value has wrong length")

	// ErrMalformed is returned for values which are otherwise invalid, such
	// as a string without a NUL terminator or inconsistent nested framing.
	ErrMalformed = errors.New("value malformed")

	// ErrTooLong is returned when encoding an attribute whose value does not
	// fit in a netlink attribute's 16-bit length.
	ErrTooLong = errors.New("value too long")
)

// A DecodeError reports a failure to decode an attribute, along with the
// kinds of the attributes which enclose it.
type DecodeError struct {
	// Kinds lists the attribute kinds leading to the failure, outermost
	// first. The last kind identifies the attribute which failed. Nested
	// kinds belong to the namespace of their container.
	Kinds []uint16

	// Container names the innermost container being decoded, or is empty
	// for a failure at the top level of a message.
	Container string

	// Index is the position of the failing element within a list container,
	// or -1 if the failure did not occur within a list.
	Index int

	// Err is the underlying error, typically one of ErrTruncated,
	// ErrWrongLength, or ErrMalformed.
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	kinds := make([]string, 0, len(e.Kinds))
	for _, k := range e.Kinds {
		kinds = append(kinds, fmt.Sprintf("%d", k))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "wifi: decode attribute %s", strings.Join(kinds, "/"))
	if e.Container != "" {
		fmt.Fprintf(&sb, " in %s", e.Container)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&sb, " (element %d)", e.Index)
	}

	fmt.Fprintf(&sb, ": %v", e.Err)
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Err }

// annotate records that err occurred while decoding the attribute kind within
// container. An existing DecodeError is copied and extended outward, so the
// innermost container and index are kept.
func annotate(err error, kind uint16, container string, index int) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		return &DecodeError{
			Kinds:     []uint16{kind},
			Container: container,
			Index:     index,
			Err:       err,
		}
	}

	out := *de
	out.Kinds = append([]uint16{kind}, de.Kinds...)
	if out.Container == "" {
		out.Container = container
	}
	if out.Index < 0 {
		out.Index = index
	}

	return &out
}
