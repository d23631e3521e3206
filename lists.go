package wifi

import (
	"fmt"

	"github.com/nlwifi/wifi/internal/nl80211"
)

// SupportedCommands lists the commands a wiphy implements. Each command is a
// u32 element and element kinds are regenerated from position starting at 1.
type SupportedCommands []Command

func (SupportedCommands) Kind() uint16 { return nl80211.AttrSupportedCommands }

func (a SupportedCommands) field() field {
	return list(1, a, func(c Command) field { return u32Field(c) })
}

func decodeSupportedCommands(b []byte) (SupportedCommands, error) {
	var out SupportedCommands
	err := decodeList("supported commands", b, func(_ int, _ uint16, b []byte) error {
		v, err := decodeU32(b)
		if err != nil {
			return err
		}
		if v > 0xff {
			return fmt.Errorf("%w: command %d out of range", ErrMalformed, v)
		}

		out = append(out, Command(v))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// MACAddrs lists the hardware addresses assigned to a wiphy. Element kinds are
// regenerated from position starting at 1 when encoding.
type MACAddrs []HardwareAddr

func (MACAddrs) Kind() uint16 { return nl80211.AttrMacAddrs }

func (a MACAddrs) field() field {
	return list(1, a, func(m HardwareAddr) field { return bytesField(m[:]) })
}

func decodeMACAddrs(b []byte) (MACAddrs, error) {
	var out MACAddrs
	err := decodeList("mac addrs", b, func(_ int, _ uint16, b []byte) error {
		mac, err := decodeMAC(b)
		if err != nil {
			return err
		}

		out = append(out, mac)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ScanSSIDs lists the SSIDs to probe for during a scan. A zero length SSID
// requests a wildcard probe. Element kinds are regenerated from position
// starting at 0 when encoding.
type ScanSSIDs []SSID

func (ScanSSIDs) Kind() uint16 { return nl80211.AttrScanSsids }

func (a ScanSSIDs) field() field {
	return list(0, a, func(s SSID) field { return bytesField(s) })
}

func decodeScanSSIDs(b []byte) (ScanSSIDs, error) {
	var out ScanSSIDs
	err := decodeList("scan ssids", b, func(_ int, _ uint16, b []byte) error {
		out = append(out, SSID(copyValue(b)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ScanFrequencies lists the frequencies in MHz to scan on. Element kinds are
// regenerated from position starting at 0 when encoding.
type ScanFrequencies []uint32

func (ScanFrequencies) Kind() uint16 { return nl80211.AttrScanFrequencies }

func (a ScanFrequencies) field() field {
	return list(0, a, func(f uint32) field { return u32Field(f) })
}

func decodeScanFrequencies(b []byte) (ScanFrequencies, error) {
	var out ScanFrequencies
	err := decodeList("scan frequencies", b, func(_ int, _ uint16, b []byte) error {
		v, err := decodeU32(b)
		if err != nil {
			return err
		}

		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
