package wifi

import (
	"fmt"

	"github.com/nlwifi/wifi/internal/nl80211"
)

// An MLOLink describes one affiliated link of a multi-link device. Its
// sub-attributes share the top-level kind namespace. LinkID is always
// encoded since link 0 is valid, and the element kind is LinkID+1.
type MLOLink struct {
	LinkID       uint8
	MAC          HardwareAddr
	Frequency    uint32 // MHz
	FreqOffset   uint32 // KHz
	ChannelType  ChannelType
	ChannelWidth ChannelWidth
	CenterFreq1  uint32
	CenterFreq2  uint32
	TxPowerLevel uint32 // mBm

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (l MLOLink) nest() nestField {
	var f nestField
	f.add(nl80211.AttrMloLinkId, u8Field(l.LinkID))
	f.mac(nl80211.AttrMac, l.MAC)
	f.u32(nl80211.AttrWiphyFreq, l.Frequency)
	f.u32(nl80211.AttrWiphyFreqOffset, l.FreqOffset)
	f.u32(nl80211.AttrWiphyChannelType, uint32(l.ChannelType))
	f.u32(nl80211.AttrChannelWidth, uint32(l.ChannelWidth))
	f.u32(nl80211.AttrCenterFreq1, l.CenterFreq1)
	f.u32(nl80211.AttrCenterFreq2, l.CenterFreq2)
	f.u32(nl80211.AttrWiphyTxPowerLevel, l.TxPowerLevel)
	f.extra(l.Extra)
	return f
}

// MLOLinks lists the valid links of a multi-link interface, which need not
// be contiguous.
type MLOLinks []MLOLink

func (MLOLinks) Kind() uint16 { return nl80211.AttrMloLinks }

func (a MLOLinks) field() field {
	return indexed(a, func(l MLOLink) (uint16, field) {
		return uint16(l.LinkID) + 1, l.nest()
	})
}

func decodeMLOLinks(b []byte) (MLOLinks, error) {
	var out MLOLinks
	err := decodeList("mlo links", b, func(_ int, kind uint16, b []byte) error {
		if kind == 0 || kind > 0x100 {
			return fmt.Errorf("%w: link element kind %d out of range", ErrMalformed, kind)
		}

		l := MLOLink{LinkID: uint8(kind - 1)}
		err := decodeRecord("mlo link", b, func(kind uint16, b []byte) error {
			var err error
			switch kind {
			case nl80211.AttrMloLinkId:
				var id uint8
				id, err = decodeU8(b)
				if err == nil && id != l.LinkID {
					err = fmt.Errorf("%w: link ID %d in element for link %d", ErrMalformed, id, l.LinkID)
				}
			case nl80211.AttrMac:
				l.MAC, err = decodeMAC(b)
			case nl80211.AttrWiphyFreq:
				l.Frequency, err = decodeU32(b)
			case nl80211.AttrWiphyFreqOffset:
				l.FreqOffset, err = decodeU32(b)
			case nl80211.AttrWiphyChannelType:
				var v uint32
				v, err = decodeU32(b)
				l.ChannelType = ChannelType(v)
			case nl80211.AttrChannelWidth:
				var v uint32
				v, err = decodeU32(b)
				l.ChannelWidth = ChannelWidth(v)
			case nl80211.AttrCenterFreq1:
				l.CenterFreq1, err = decodeU32(b)
			case nl80211.AttrCenterFreq2:
				l.CenterFreq2, err = decodeU32(b)
			case nl80211.AttrWiphyTxPowerLevel:
				l.TxPowerLevel, err = decodeU32(b)
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
