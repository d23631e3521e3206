package wifi

import (
	"fmt"
	"math"

	"github.com/josharian/native"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
)

// nlaHeaderLen is the length of a netlink attribute header.
const nlaHeaderLen = 4

// nlaAlign rounds n up to the netlink attribute alignment boundary.
func nlaAlign(n int) int { return (n + 3) &^ 3 }

// A field is the wire shape of an attribute value. Lengths and encodings are
// both derived from a field so that they cannot disagree.
type field interface {
	// size reports the number of value bytes put will write.
	size() int

	// put writes exactly size bytes into b.
	put(b []byte)
}

type (
	u8Field     uint8
	u16Field    uint16
	u32Field    uint32
	u64Field    uint64
	stringField string
	bytesField  []byte
	flagField   struct{}
	u32sField   []uint32
)

func (u8Field) size() int         { return 1 }
func (f u8Field) put(b []byte)    { b[0] = uint8(f) }
func (u16Field) size() int        { return 2 }
func (f u16Field) put(b []byte)   { native.Endian.PutUint16(b[:2], uint16(f)) }
func (u32Field) size() int        { return 4 }
func (f u32Field) put(b []byte)   { native.Endian.PutUint32(b[:4], uint32(f)) }
func (u64Field) size() int        { return 8 }
func (f u64Field) put(b []byte)   { native.Endian.PutUint64(b[:8], uint64(f)) }
func (f stringField) size() int   { return len(f) + 1 }
func (f bytesField) size() int    { return len(f) }
func (f bytesField) put(b []byte) { copy(b[:len(f)], f) }
func (flagField) size() int       { return 0 }
func (f u32sField) size() int     { return 4 * len(f) }

func (flagField) put(_ []byte) {}

func (f stringField) put(b []byte) {
	n := copy(b[:len(f)], f)
	b[n] = 0x00
}

func (f u32sField) put(b []byte) {
	for i, v := range f {
		native.Endian.PutUint32(b[i*4:(i+1)*4], v)
	}
}

// An nla is a single nested attribute within a nestField.
type nla struct {
	kind uint16
	f    field
}

// A nestField is a sequence of attributes nested within another attribute.
type nestField []nla

func (f nestField) size() int {
	var n int
	for _, a := range f {
		n += nlaAlign(nlaHeaderLen + a.f.size())
	}

	return n
}

func (f nestField) put(b []byte) {
	attrs := make([]netlink.Attribute, 0, len(f))
	for _, a := range f {
		if n := a.f.size(); nlaHeaderLen+n > math.MaxUint16 {
			panicf("wifi: %d byte value of nested attribute %d too long", n, a.kind)
		}

		attrs = append(attrs, netlink.Attribute{
			Type: a.kind,
			Data: encodeField(a.f),
		})
	}

	nb, err := netlink.MarshalAttributes(attrs)
	if err != nil {
		panicf("wifi: failed to marshal nested attributes: %v", err)
	}

	copy(b[:len(nb)], nb)
}

// encodeField allocates a buffer of the correct size and fills it with f.
func encodeField(f field) []byte {
	b := make([]byte, f.size())
	f.put(b)
	return b
}

// The add methods append an attribute to a nestField unless its value is the
// zero value, which container types use to represent absence.

func (f *nestField) add(kind uint16, v field) { *f = append(*f, nla{kind: kind, f: v}) }

func (f *nestField) u8(kind uint16, v uint8) {
	if v != 0 {
		f.add(kind, u8Field(v))
	}
}

func (f *nestField) s8(kind uint16, v int8) {
	if v != 0 {
		f.add(kind, u8Field(uint8(v)))
	}
}

// u8p adds a u8 whose zero value is meaningful, so only nil is absent.
func (f *nestField) u8p(kind uint16, v *uint8) {
	if v != nil {
		f.add(kind, u8Field(*v))
	}
}

func (f *nestField) u16(kind uint16, v uint16) {
	if v != 0 {
		f.add(kind, u16Field(v))
	}
}

func (f *nestField) u32(kind uint16, v uint32) {
	if v != 0 {
		f.add(kind, u32Field(v))
	}
}

func (f *nestField) s32(kind uint16, v int32) {
	if v != 0 {
		f.add(kind, u32Field(uint32(v)))
	}
}

func (f *nestField) u64(kind uint16, v uint64) {
	if v != 0 {
		f.add(kind, u64Field(v))
	}
}

func (f *nestField) s64(kind uint16, v int64) {
	if v != 0 {
		f.add(kind, u64Field(uint64(v)))
	}
}

func (f *nestField) flag(kind uint16, v bool) {
	if v {
		f.add(kind, flagField{})
	}
}

func (f *nestField) bytes(kind uint16, v []byte) {
	if len(v) > 0 {
		f.add(kind, bytesField(v))
	}
}

func (f *nestField) mac(kind uint16, v HardwareAddr) {
	if v != (HardwareAddr{}) {
		f.add(kind, bytesField(v[:]))
	}
}

func (f *nestField) nested(kind uint16, v nestField) {
	if len(v) > 0 {
		f.add(kind, v)
	}
}

func (f *nestField) extra(attrs []Unknown) {
	for _, a := range attrs {
		f.add(a.Type, bytesField(a.Data))
	}
}

// indexed builds a nested list whose element kinds are carried by the
// elements themselves, for lists which the kernel fills sparsely.
func indexed[E any](elems []E, fn func(E) (uint16, field)) nestField {
	f := make(nestField, 0, len(elems))
	for _, e := range elems {
		kind, v := fn(e)
		f = append(f, nla{kind: kind, f: v})
	}

	return f
}

// list builds a nested list whose element kinds are positions counted from
// base.
func list[E any](base int, elems []E, fn func(E) field) nestField {
	f := make(nestField, 0, len(elems))
	for i, e := range elems {
		f = append(f, nla{kind: uint16(base + i), f: fn(e)})
	}

	return f
}

// Primitive decoders. Fixed-width integers fail with ErrTruncated when too
// short and ErrWrongLength when too long.

func checkWidth(b []byte, n int) error {
	switch {
	case len(b) < n:
		return fmt.Errorf("%w: need %d bytes, got %d", ErrTruncated, n, len(b))
	case len(b) > n:
		return fmt.Errorf("%w: need %d bytes, got %d", ErrWrongLength, n, len(b))
	default:
		return nil
	}
}

func decodeU8(b []byte) (uint8, error) {
	if err := checkWidth(b, 1); err != nil {
		return 0, err
	}

	return b[0], nil
}

func decodeS8(b []byte) (int8, error) {
	v, err := decodeU8(b)
	return int8(v), err
}

func decodeU16(b []byte) (uint16, error) {
	if err := checkWidth(b, 2); err != nil {
		return 0, err
	}

	return nlenc.Uint16(b), nil
}

func decodeU32(b []byte) (uint32, error) {
	if err := checkWidth(b, 4); err != nil {
		return 0, err
	}

	return nlenc.Uint32(b), nil
}

func decodeS32(b []byte) (int32, error) {
	v, err := decodeU32(b)
	return int32(v), err
}

func decodeU64(b []byte) (uint64, error) {
	if err := checkWidth(b, 8); err != nil {
		return 0, err
	}

	return nlenc.Uint64(b), nil
}

func decodeS64(b []byte) (int64, error) {
	v, err := decodeU64(b)
	return int64(v), err
}

// ptr adapts a decoder result for an optional field.
func ptr[T any](v T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// decodeString requires a single trailing NUL byte and strips it.
func decodeString(b []byte) (string, error) {
	if len(b) == 0 || b[len(b)-1] != 0x00 {
		return "", fmt.Errorf("%w: string is not NUL terminated", ErrMalformed)
	}

	return string(b[:len(b)-1]), nil
}

func decodeMAC(b []byte) (HardwareAddr, error) {
	var mac HardwareAddr
	if len(b) != len(mac) {
		return mac, fmt.Errorf("%w: hardware address must be %d bytes, got %d",
			ErrWrongLength, len(mac), len(b))
	}

	copy(mac[:], b)
	return mac, nil
}

func decodeU32s(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 4", ErrWrongLength, len(b))
	}

	out := make([]uint32, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		out = append(out, nlenc.Uint32(b[i:i+4]))
	}

	return out, nil
}

// copyValue returns an owned copy of b. Unlike cloneBytes, an empty non-nil
// b stays non-nil so that present but empty values survive a round trip.
func copyValue(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append(make([]byte, 0, len(b)), b...)
}

// cloneBytes returns an owned copy of b which is nil when b is empty.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	return append([]byte(nil), b...)
}

// unknown keeps an unrecognized sub-attribute verbatim.
func unknown(kind uint16, b []byte) Unknown {
	return Unknown{Type: kind, Data: copyValue(b)}
}

// decodeRecord frames b as a single record of attributes in the private
// namespace of container, calling fn for each one.
func decodeRecord(container string, b []byte, fn func(kind uint16, b []byte) error) error {
	return decodeAttrs(container, b, false, func(_ int, kind uint16, b []byte) error {
		return fn(kind, b)
	})
}

// decodeList frames b as a list of elements, calling fn for each one with its
// position. Failures report the element's position.
func decodeList(container string, b []byte, fn func(i int, kind uint16, b []byte) error) error {
	return decodeAttrs(container, b, true, fn)
}

func decodeAttrs(container string, b []byte, isList bool, fn func(i int, kind uint16, b []byte) error) error {
	ad, err := netlink.NewAttributeDecoder(b)
	if err != nil {
		return &DecodeError{
			Container: container,
			Index:     -1,
			Err:       fmt.Errorf("%w: %v", ErrMalformed, err),
		}
	}

	for i := 0; ad.Next(); i++ {
		if err := fn(i, ad.Type(), ad.Bytes()); err != nil {
			idx := -1
			if isList {
				idx = i
			}

			return annotate(err, ad.Type(), container, idx)
		}
	}

	if err := ad.Err(); err != nil {
		return &DecodeError{
			Container: container,
			Index:     -1,
			Err:       fmt.Errorf("%w: %v", ErrMalformed, err),
		}
	}

	return nil
}

func panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
