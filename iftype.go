package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// Interface type sets. Each interface type is a flag nested under its own
// value, so the set has no ordering of its own beyond that of the wire.
type (
	SupportedIftypes []InterfaceType
	SoftwareIftypes  []InterfaceType
)

func (SupportedIftypes) Kind() uint16   { return nl80211.AttrSupportedIftypes }
func (a SupportedIftypes) field() field { return ifTypesField(a) }
func (SoftwareIftypes) Kind() uint16    { return nl80211.AttrSoftwareIftypes }
func (a SoftwareIftypes) field() field  { return ifTypesField(a) }

func ifTypesField(ts []InterfaceType) nestField {
	f := make(nestField, 0, len(ts))
	for _, t := range ts {
		f = append(f, nla{kind: uint16(t), f: flagField{}})
	}

	return f
}

func decodeIfTypes(container string, b []byte) ([]InterfaceType, error) {
	var out []InterfaceType
	err := decodeList(container, b, func(_ int, kind uint16, _ []byte) error {
		out = append(out, InterfaceType(kind))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decodeIfTypeSet[T ~[]InterfaceType](b []byte) (T, error) {
	ts, err := decodeIfTypes("iftypes", b)
	return T(ts), err
}

// FrameTypes lists the management frame subtypes which may be sent or
// received on one interface type. Each subtype is a repeated FrameType
// attribute.
type FrameTypes struct {
	IfType InterfaceType
	Types  []uint16

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

// Frame type capabilities of a wiphy, nested under the interface type.
type (
	TxFrameTypes []FrameTypes
	RxFrameTypes []FrameTypes
)

func (TxFrameTypes) Kind() uint16   { return nl80211.AttrTxFrameTypes }
func (a TxFrameTypes) field() field { return frameTypesField(a) }
func (RxFrameTypes) Kind() uint16   { return nl80211.AttrRxFrameTypes }
func (a RxFrameTypes) field() field { return frameTypesField(a) }

func frameTypesField(fts []FrameTypes) nestField {
	f := make(nestField, 0, len(fts))
	for _, ft := range fts {
		var types nestField
		for _, t := range ft.Types {
			types.add(nl80211.AttrFrameType, u16Field(t))
		}
		types.extra(ft.Extra)

		f = append(f, nla{kind: uint16(ft.IfType), f: types})
	}

	return f
}

func decodeFrameTypesAs[T ~[]FrameTypes](b []byte) (T, error) {
	var out T
	err := decodeList("frame types", b, func(_ int, kind uint16, b []byte) error {
		ft := FrameTypes{IfType: InterfaceType(kind)}
		err := decodeRecord("frame type", b, func(kind uint16, b []byte) error {
			if kind != nl80211.AttrFrameType {
				ft.Extra = append(ft.Extra, unknown(kind, b))
				return nil
			}

			t, err := decodeU16(b)
			if err != nil {
				return err
			}

			ft.Types = append(ft.Types, t)
			return nil
		})
		if err != nil {
			return err
		}

		out = append(out, ft)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// IfTypeExtCapability is the extended capability a wiphy advertises for one
// interface type. Its sub-attributes share the top-level kind namespace.
type IfTypeExtCapability struct {
	IfType        InterfaceType
	ExtCapa       ExtendedCapability
	ExtCapaMask   ExtendedCapability
	EMLCapability uint16
	MLDCapaAndOps uint16

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (c IfTypeExtCapability) nest() nestField {
	var f nestField
	f.u32(nl80211.AttrIftype, uint32(c.IfType))
	f.bytes(nl80211.AttrExtCapa, c.ExtCapa)
	f.bytes(nl80211.AttrExtCapaMask, c.ExtCapaMask)
	f.u16(nl80211.AttrEmlCapability, c.EMLCapability)
	f.u16(nl80211.AttrMldCapaAndOps, c.MLDCapaAndOps)
	f.extra(c.Extra)
	return f
}

// IftypeExtCapa lists per-interface type extended capabilities. Element kinds
// are regenerated from position starting at 0 when encoding.
type IftypeExtCapa []IfTypeExtCapability

func (IftypeExtCapa) Kind() uint16 { return nl80211.AttrIftypeExtCapa }

func (a IftypeExtCapa) field() field {
	return list(0, a, func(c IfTypeExtCapability) field { return c.nest() })
}

func decodeIftypeExtCapa(b []byte) (IftypeExtCapa, error) {
	var out IftypeExtCapa
	err := decodeList("iftype ext capa", b, func(_ int, _ uint16, b []byte) error {
		var c IfTypeExtCapability
		err := decodeRecord("iftype ext capa", b, func(kind uint16, b []byte) error {
			switch kind {
			case nl80211.AttrIftype:
				v, err := decodeU32(b)
				c.IfType = InterfaceType(v)
				return err
			case nl80211.AttrExtCapa:
				c.ExtCapa = cloneBytes(b)
			case nl80211.AttrExtCapaMask:
				c.ExtCapaMask = cloneBytes(b)
			case nl80211.AttrEmlCapability:
				return decodeInto(&c.EMLCapability, b, decodeU16)
			case nl80211.AttrMldCapaAndOps:
				return decodeInto(&c.MLDCapaAndOps, b, decodeU16)
			default:
				c.Extra = append(c.Extra, unknown(kind, b))
			}

			return nil
		})
		if err != nil {
			return err
		}

		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
