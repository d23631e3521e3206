package wifi

import (
	"fmt"

	"github.com/josharian/native"
	"github.com/mdlayher/netlink/nlenc"
	"github.com/nlwifi/wifi/internal/nl80211"
)

// WowlanTriggersSupported describes the wake-on-WLAN triggers a wiphy
// supports.
type WowlanTriggersSupported struct {
	Any               bool
	Disconnect        bool
	MagicPacket       bool
	PacketPattern     *PatternSupport
	GTKRekeySupported bool
	GTKRekeyFailure   bool
	EAPIdentRequest   bool
	FourWayHandshake  bool
	RfkillRelease     bool
	TCPConnection     []byte

	// NetDetect is the maximum number of match sets for net-detect scans.
	NetDetect uint32

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

// PatternSupport is the packet pattern matching capability of a wiphy.
type PatternSupport struct {
	MaxPatterns   uint32
	MinPatternLen uint32
	MaxPatternLen uint32
	MaxPktOffset  uint32
}

const patternSupportLen = 16

func (p PatternSupport) put(b []byte) {
	native.Endian.PutUint32(b[0:4], p.MaxPatterns)
	native.Endian.PutUint32(b[4:8], p.MinPatternLen)
	native.Endian.PutUint32(b[8:12], p.MaxPatternLen)
	native.Endian.PutUint32(b[12:16], p.MaxPktOffset)
}

func (PatternSupport) size() int { return patternSupportLen }

func decodePatternSupport(b []byte) (PatternSupport, error) {
	if len(b) != patternSupportLen {
		return PatternSupport{}, fmt.Errorf("%w: pattern support must be %d bytes, got %d",
			ErrWrongLength, patternSupportLen, len(b))
	}

	return PatternSupport{
		MaxPatterns:   nlenc.Uint32(b[0:4]),
		MinPatternLen: nlenc.Uint32(b[4:8]),
		MaxPatternLen: nlenc.Uint32(b[8:12]),
		MaxPktOffset:  nlenc.Uint32(b[12:16]),
	}, nil
}

func (WowlanTriggersSupported) Kind() uint16 { return nl80211.AttrWowlanTriggersSupported }

func (w WowlanTriggersSupported) field() field {
	var f nestField
	f.flag(nl80211.WowlanTrigAny, w.Any)
	f.flag(nl80211.WowlanTrigDisconnect, w.Disconnect)
	f.flag(nl80211.WowlanTrigMagicPkt, w.MagicPacket)
	if w.PacketPattern != nil {
		f.add(nl80211.WowlanTrigPktPattern, *w.PacketPattern)
	}
	f.flag(nl80211.WowlanTrigGtkRekeySupported, w.GTKRekeySupported)
	f.flag(nl80211.WowlanTrigGtkRekeyFailure, w.GTKRekeyFailure)
	f.flag(nl80211.WowlanTrigEapIdentRequest, w.EAPIdentRequest)
	f.flag(nl80211.WowlanTrig4wayHandshake, w.FourWayHandshake)
	f.flag(nl80211.WowlanTrigRfkillRelease, w.RfkillRelease)
	f.bytes(nl80211.WowlanTrigTcpConnection, w.TCPConnection)
	f.u32(nl80211.WowlanTrigNetDetect, w.NetDetect)
	f.extra(w.Extra)
	return f
}

func decodeWowlanTriggersSupported(b []byte) (WowlanTriggersSupported, error) {
	var w WowlanTriggersSupported
	err := decodeRecord("wowlan triggers", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.WowlanTrigAny:
			w.Any = true
		case nl80211.WowlanTrigDisconnect:
			w.Disconnect = true
		case nl80211.WowlanTrigMagicPkt:
			w.MagicPacket = true
		case nl80211.WowlanTrigPktPattern:
			w.PacketPattern, err = ptr(decodePatternSupport(b))
		case nl80211.WowlanTrigGtkRekeySupported:
			w.GTKRekeySupported = true
		case nl80211.WowlanTrigGtkRekeyFailure:
			w.GTKRekeyFailure = true
		case nl80211.WowlanTrigEapIdentRequest:
			w.EAPIdentRequest = true
		case nl80211.WowlanTrig4wayHandshake:
			w.FourWayHandshake = true
		case nl80211.WowlanTrigRfkillRelease:
			w.RfkillRelease = true
		case nl80211.WowlanTrigTcpConnection:
			w.TCPConnection = cloneBytes(b)
		case nl80211.WowlanTrigNetDetect:
			w.NetDetect, err = decodeU32(b)
		default:
			w.Extra = append(w.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return WowlanTriggersSupported{}, err
	}

	return w, nil
}
