package wifi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Errors returned when an RSN element cannot be parsed.
var (
	errRSNDataTooLarge                = errors.New("RSN IE data exceeds 253 bytes")
	errRSNTooShort                    = errors.New("RSN IE too short")
	errRSNInvalidVersion              = errors.New("RSN IE has invalid version 0")
	errRSNTruncatedPairwiseCount      = errors.New("RSN IE truncated before pairwise cipher count")
	errRSNPairwiseCipherCountTooLarge = errors.New("RSN IE pairwise cipher count too large")
	errRSNTruncatedPairwiseList       = errors.New("RSN IE truncated pairwise cipher list")
	errRSNAKMCountTooLarge            = errors.New("RSN IE AKM count too large")
	errRSNTruncatedAKMList            = errors.New("RSN IE truncated AKM list")
	errRSNPMKIDCountTooLarge          = errors.New("RSN IE PMKID count too large")
	errRSNTruncatedPMKIDList          = errors.New("RSN IE truncated PMKID list")
)

// RSNInfo is the content of a Robust Security Network element advertised by
// a BSS. Suite selectors share their encoding with nl80211 cipher and AKM
// suites.
type RSNInfo struct {
	Version         uint16
	GroupCipher     CipherSuite
	PairwiseCiphers []CipherSuite
	AKMs            []AKMSuite
	Capabilities    uint16

	// GroupMgmtCipher is set when management frame protection is in use.
	GroupMgmtCipher CipherSuite
}

// IsZero reports whether no RSN element was present.
func (r RSNInfo) IsZero() bool { return r.Version == 0 }

// String returns the string representation of an RSNInfo.
func (r RSNInfo) String() string {
	if r.IsZero() {
		return "RSN: none"
	}

	join := func(n int, s func(i int) string) string {
		ss := make([]string, 0, n)
		for i := 0; i < n; i++ {
			ss = append(ss, s(i))
		}
		return strings.Join(ss, ",")
	}

	return fmt.Sprintf("RSN v%d group=%s pairwise=%s akm=%s caps=%#04x",
		r.Version, r.GroupCipher,
		join(len(r.PairwiseCiphers), func(i int) string { return r.PairwiseCiphers[i].String() }),
		join(len(r.AKMs), func(i int) string { return r.AKMs[i].String() }),
		r.Capabilities)
}

// decodeRSN parses the body of an RSN element (802.11-2020, 9.4.2.24). Suite
// selectors are big-endian OUI plus type; counts and capabilities are
// little-endian.
func decodeRSN(b []byte) (*RSNInfo, error) {
	if len(b) > 253 {
		return nil, errRSNDataTooLarge
	}
	// version, group cipher and pairwise count
	if len(b) < 8 {
		return nil, errRSNTooShort
	}

	var ri RSNInfo
	ri.Version = binary.LittleEndian.Uint16(b[:2])
	if ri.Version == 0 {
		return nil, errRSNInvalidVersion
	}

	ri.GroupCipher = CipherSuite(binary.BigEndian.Uint32(b[2:6]))
	pos := 6

	if len(b) < pos+2 {
		return nil, errRSNTruncatedPairwiseCount
	}
	n := int(binary.LittleEndian.Uint16(b[pos : pos+2]))
	pos += 2

	// (253-10)/4
	if n > 60 {
		return nil, errRSNPairwiseCipherCountTooLarge
	}
	if len(b) < pos+4*n {
		return nil, errRSNTruncatedPairwiseList
	}

	ri.PairwiseCiphers = make([]CipherSuite, 0, n)
	for i := 0; i < n; i++ {
		ri.PairwiseCiphers = append(ri.PairwiseCiphers, CipherSuite(binary.BigEndian.Uint32(b[pos:pos+4])))
		pos += 4
	}

	// The remaining fields are optional.
	if len(b) < pos+2 {
		return &ri, nil
	}
	n = int(binary.LittleEndian.Uint16(b[pos : pos+2]))
	pos += 2

	if n > 60 {
		return nil, errRSNAKMCountTooLarge
	}
	if len(b) < pos+4*n {
		return nil, errRSNTruncatedAKMList
	}

	ri.AKMs = make([]AKMSuite, 0, n)
	for i := 0; i < n; i++ {
		ri.AKMs = append(ri.AKMs, AKMSuite(binary.BigEndian.Uint32(b[pos:pos+4])))
		pos += 4
	}

	if len(b) >= pos+2 {
		ri.Capabilities = binary.LittleEndian.Uint16(b[pos : pos+2])
		pos += 2
	}

	// PMKIDs are skipped.
	if len(b) >= pos+2 {
		n = int(binary.LittleEndian.Uint16(b[pos : pos+2]))
		pos += 2

		if n > 15 {
			return nil, errRSNPMKIDCountTooLarge
		}
		if len(b) < pos+16*n {
			return nil, errRSNTruncatedPMKIDList
		}
		pos += 16 * n
	}

	if len(b) >= pos+4 {
		ri.GroupMgmtCipher = CipherSuite(binary.BigEndian.Uint32(b[pos : pos+4]))
	}

	return &ri, nil
}
