package wifi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// errInvalidIE is returned when one or more IEs are malformed.
var errInvalidIE = errors.New("invalid 802.11 information element")

// errInvalidBSSLoad is returned when BSSLoad IE has wrong length.
var errInvalidBSSLoad = errors.New("802.11 information element BSSLoad has wrong length")

// An ie is an 802.11 information element.
type ie struct {
	ID layers.Dot11InformationElementID
	// Length field implied by length of data
	Data []byte
}

// parseIEs parses zero or more ies from a byte slice.
func parseIEs(b []byte) ([]ie, error) {
	var ies []ie
	for len(b) > 0 {
		if len(b) < 2 {
			return nil, errInvalidIE
		}

		id, l := b[0], int(b[1])
		b = b[2:]
		if len(b) < l {
			return nil, errInvalidIE
		}

		ies = append(ies, ie{
			ID:   layers.Dot11InformationElementID(id),
			Data: b[:l],
		})
		b = b[l:]
	}

	return ies, nil
}

// decodeSSID safely parses a byte slice into UTF-8 runes, and returns the
// resulting string from the runes.
func decodeSSID(b []byte) string {
	buf := bytes.NewBuffer(nil)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]

		buf.WriteRune(r)
	}

	return buf.String()
}

// BSSLoad is an Information Element containing measurements of the load on the BSS.
type BSSLoad struct {
	// Version: Indicates the version of the BSS Load Element. Can be 1 or 2.
	Version int

	// StationCount: total number of STA currently associated with this BSS.
	StationCount uint16

	// ChannelUtilization: Percentage of time (linearly scaled 0 to 255) that
	// the AP sensed the medium was busy.
	ChannelUtilization uint8

	// AvailableAdmissionCapacity: remaining amount of medium time available
	// via explicit admission control in units of 32 us/s.
	AvailableAdmissionCapacity uint16
}

// String returns the string representation of a BSSLoad.
func (l BSSLoad) String() string {
	switch l.Version {
	case 1:
		return fmt.Sprintf("BSSLoad Version: %d    stationCount: %d    channelUtilization: %d/255     availableAdmissionCapacity: %d",
			l.Version, l.StationCount, l.ChannelUtilization, l.AvailableAdmissionCapacity)
	case 2:
		return fmt.Sprintf("BSSLoad Version: %d    stationCount: %d    channelUtilization: %d/255     availableAdmissionCapacity: %d [*32us/s]",
			l.Version, l.StationCount, l.ChannelUtilization, l.AvailableAdmissionCapacity)
	default:
		return fmt.Sprintf("invalid BSSLoad Version: %d", l.Version)
	}
}

// decodeBSSLoad decodes the BSS Load element. Version 2 is the 5 byte form
// of IEEE 802.11-2020 9.4.2.27; version 1 is the older 4 byte Cisco QBSS form.
func decodeBSSLoad(b []byte) (*BSSLoad, error) {
	var load BSSLoad
	switch len(b) {
	case 5:
		load.Version = 2
		load.StationCount = binary.LittleEndian.Uint16(b[0:2])
		load.ChannelUtilization = b[2]
		load.AvailableAdmissionCapacity = binary.LittleEndian.Uint16(b[3:5])
	case 4:
		load.Version = 1
		load.StationCount = binary.LittleEndian.Uint16(b[0:2])
		load.ChannelUtilization = b[2]
		load.AvailableAdmissionCapacity = uint16(b[3])
	default:
		return nil, errInvalidBSSLoad
	}

	return &load, nil
}

// Packet decodes f as an 802.11 frame. nl80211 delivers frames without a
// frame check sequence, so one is computed and appended for the decoder.
//
// The header and management layers decode reliably, but gopacket rejects a
// trailing information element shorter than 4 bytes, such as a DS Parameter
// Set, and reports it as a decode failure layer. Callers which need every
// element should parse the frame body with parseIEs instead.
func (f Frame) Packet() gopacket.Packet {
	b := make([]byte, len(f), len(f)+4)
	copy(b, f)
	b = binary.LittleEndian.AppendUint32(b, crc32.ChecksumIEEE(f))

	return gopacket.NewPacket(b, layers.LayerTypeDot11, gopacket.Default)
}
