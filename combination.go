package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// InterfaceCombinations lists the valid combinations of interface types a
// wiphy supports at once. Element kinds are regenerated from position
// starting at 1 when encoding.
type InterfaceCombinations []InterfaceCombination

func (InterfaceCombinations) Kind() uint16 { return nl80211.AttrInterfaceCombinations }

func (a InterfaceCombinations) field() field {
	return list(1, a, func(c InterfaceCombination) field { return c.nest() })
}

// InterfaceCombination represents a group of valid combinations of interface
// types which can be simultaneously supported on a device.
type InterfaceCombination struct {
	CombinationLimits []InterfaceCombinationLimit

	// Total is the maximum number of interfaces that can be created in this
	// group.
	Total uint32

	// StaApBiMatch indicates that beacon intervals within this group must
	// all be the same, regardless of interface type.
	StaApBiMatch bool

	// NumChannels is the number of different channels which may be used in
	// this group.
	NumChannels uint32

	// Bitmaps of channel widths and DFS regions in which radar detection
	// is supported.
	RadarDetectWidths  uint32
	RadarDetectRegions uint32

	// BeaconIntMinGCD is the minimum greatest common divisor of beacon
	// intervals, in TUs.
	BeaconIntMinGCD uint32

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (c InterfaceCombination) nest() nestField {
	var f nestField
	f.nested(nl80211.IfaceCombLimits, list(1, c.CombinationLimits,
		func(l InterfaceCombinationLimit) field { return l.nest() }))
	f.u32(nl80211.IfaceCombMaxnum, c.Total)
	f.flag(nl80211.IfaceCombStaApBiMatch, c.StaApBiMatch)
	f.u32(nl80211.IfaceCombNumChannels, c.NumChannels)
	f.u32(nl80211.IfaceCombRadarDetectWidths, c.RadarDetectWidths)
	f.u32(nl80211.IfaceCombRadarDetectRegions, c.RadarDetectRegions)
	f.u32(nl80211.IfaceCombBiMinGcd, c.BeaconIntMinGCD)
	f.extra(c.Extra)
	return f
}

// InterfaceCombinationLimit represents a single combination of interface types
// which may be run simultaneously on a device.
type InterfaceCombinationLimit struct {
	InterfaceTypes []InterfaceType

	// Max is the maximum number of interfaces that can be chosen from the
	// set of interface types in InterfaceTypes.
	Max uint32

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (l InterfaceCombinationLimit) nest() nestField {
	var f nestField
	f.u32(nl80211.IfaceLimitMax, l.Max)
	f.nested(nl80211.IfaceLimitTypes, ifTypesField(l.InterfaceTypes))
	f.extra(l.Extra)
	return f
}

func decodeInterfaceCombinations(b []byte) (InterfaceCombinations, error) {
	var out InterfaceCombinations
	err := decodeList("interface combinations", b, func(_ int, _ uint16, b []byte) error {
		var c InterfaceCombination
		err := decodeRecord("interface combination", b, func(kind uint16, b []byte) error {
			var err error
			switch kind {
			case nl80211.IfaceCombLimits:
				c.CombinationLimits, err = decodeCombinationLimits(b)
			case nl80211.IfaceCombMaxnum:
				c.Total, err = decodeU32(b)
			case nl80211.IfaceCombStaApBiMatch:
				c.StaApBiMatch = true
			case nl80211.IfaceCombNumChannels:
				c.NumChannels, err = decodeU32(b)
			case nl80211.IfaceCombRadarDetectWidths:
				c.RadarDetectWidths, err = decodeU32(b)
			case nl80211.IfaceCombRadarDetectRegions:
				c.RadarDetectRegions, err = decodeU32(b)
			case nl80211.IfaceCombBiMinGcd:
				c.BeaconIntMinGCD, err = decodeU32(b)
			default:
				c.Extra = append(c.Extra, unknown(kind, b))
			}

			return err
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

func decodeCombinationLimits(b []byte) ([]InterfaceCombinationLimit, error) {
	var out []InterfaceCombinationLimit
	err := decodeList("combination limits", b, func(_ int, _ uint16, b []byte) error {
		var l InterfaceCombinationLimit
		err := decodeRecord("combination limit", b, func(kind uint16, b []byte) error {
			var err error
			switch kind {
			case nl80211.IfaceLimitMax:
				l.Max, err = decodeU32(b)
			case nl80211.IfaceLimitTypes:
				l.InterfaceTypes, err = decodeIfTypes("limit types", b)
			default:
				l.Extra = append(l.Extra, unknown(kind, b))
			}

			return err
		})
		if err != nil {
			return err
		}

		out = append(out, l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
