package wifi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func Test_parseIEs(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		ies  []ie
		err  error
	}{
		{
			name: "empty",
		},
		{
			name: "too short",
			b:    []byte{0x00},
			err:  errInvalidIE,
		},
		{
			name: "length too long",
			b:    []byte{0x00, 0xff, 0x00},
			err:  errInvalidIE,
		},
		{
			name: "OK one",
			b:    []byte{0x00, 0x03, 'f', 'o', 'o'},
			ies: []ie{{
				ID:   0,
				Data: []byte("foo"),
			}},
		},
		{
			name: "OK three",
			b: []byte{
				0x00, 0x03, 'f', 'o', 'o',
				0x01, 0x00,
				0x02, 0x06, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
			},
			ies: []ie{
				{
					ID:   0,
					Data: []byte("foo"),
				},
				{
					ID:   1,
					Data: []byte{},
				},
				{
					ID:   2,
					Data: []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ies, err := parseIEs(tt.b)

			if want, got := tt.err, err; want != got {
				t.Fatalf("unexpected error:\n- want: %v\n-  got: %v",
					want, got)
			}
			if err != nil {
				t.Logf("err: %v", err)
				return
			}

			if diff := cmp.Diff(tt.ies, ies); diff != "" {
				t.Fatalf("unexpected ies (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_decodeSSID(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		s    string
	}{
		{
			name: "ASCII",
			b:    []byte("hello"),
			s:    "hello",
		},
		{
			name: "UTF-8",
			b:    []byte("café"),
			s:    "café",
		},
		{
			name: "invalid",
			b:    []byte{'a', 0xff, 'b'},
			s:    "a\uFFFDb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.s, decodeSSID(tt.b)); diff != "" {
				t.Fatalf("unexpected SSID (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_decodeBSSLoad(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		load *BSSLoad
		s    string
		err  error
	}{
		{
			name: "version 2",
			b:    []byte{0x03, 0x00, 0x40, 0x10, 0x00},
			load: &BSSLoad{
				Version:                    2,
				StationCount:               3,
				ChannelUtilization:         64,
				AvailableAdmissionCapacity: 16,
			},
			s: "BSSLoad Version: 2    stationCount: 3    channelUtilization: 64/255     availableAdmissionCapacity: 16 [*32us/s]",
		},
		{
			name: "version 1",
			b:    []byte{0x01, 0x01, 0x80, 0x05},
			load: &BSSLoad{
				Version:                    1,
				StationCount:               257,
				ChannelUtilization:         128,
				AvailableAdmissionCapacity: 5,
			},
			s: "BSSLoad Version: 1    stationCount: 257    channelUtilization: 128/255     availableAdmissionCapacity: 5",
		},
		{
			name: "wrong length",
			b:    []byte{0x01, 0x00, 0x00},
			err:  errInvalidBSSLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load, err := decodeBSSLoad(tt.b)
			if want, got := tt.err, err; want != got {
				t.Fatalf("unexpected error:\n- want: %v\n-  got: %v", want, got)
			}
			if err != nil {
				return
			}

			if diff := cmp.Diff(tt.load, load); diff != "" {
				t.Fatalf("unexpected BSS load (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.s, load.String()); diff != "" {
				t.Fatalf("unexpected string (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_decodeRSN(t *testing.T) {
	// WPA2-PSK with CCMP, as advertised by most home access points.
	wpa2 := []byte{
		0x01, 0x00, // version
		0x00, 0x0f, 0xac, 0x04, // group: CCMP
		0x01, 0x00, 0x00, 0x0f, 0xac, 0x04, // pairwise: CCMP
		0x01, 0x00, 0x00, 0x0f, 0xac, 0x02, // AKM: PSK
		0x0c, 0x00, // capabilities
	}

	tests := []struct {
		name string
		b    []byte
		rsn  *RSNInfo
		err  error
	}{
		{
			name: "WPA2-PSK",
			b:    wpa2,
			rsn: &RSNInfo{
				Version:         1,
				GroupCipher:     CipherCCMP,
				PairwiseCiphers: []CipherSuite{CipherCCMP},
				AKMs:            []AKMSuite{AKMPSK},
				Capabilities:    0x000c,
			},
		},
		{
			name: "management frame protection",
			b: append(append([]byte(nil), wpa2...),
				0x01, 0x00, // one PMKID
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				0x00, 0x0f, 0xac, 0x06, // group management: BIP-CMAC-128
			),
			rsn: &RSNInfo{
				Version:         1,
				GroupCipher:     CipherCCMP,
				PairwiseCiphers: []CipherSuite{CipherCCMP},
				AKMs:            []AKMSuite{AKMPSK},
				Capabilities:    0x000c,
				GroupMgmtCipher: CipherAESCMAC,
			},
		},
		{
			name: "minimal",
			b:    wpa2[:12],
			rsn: &RSNInfo{
				Version:         1,
				GroupCipher:     CipherCCMP,
				PairwiseCiphers: []CipherSuite{CipherCCMP},
			},
		},
		{
			name: "too large",
			b:    make([]byte, 254),
			err:  errRSNDataTooLarge,
		},
		{
			name: "too short",
			b:    wpa2[:7],
			err:  errRSNTooShort,
		},
		{
			name: "version 0",
			b:    []byte{0x00, 0x00, 0x00, 0x0f, 0xac, 0x04, 0x00, 0x00},
			err:  errRSNInvalidVersion,
		},
		{
			name: "pairwise count too large",
			b:    []byte{0x01, 0x00, 0x00, 0x0f, 0xac, 0x04, 61, 0x00},
			err:  errRSNPairwiseCipherCountTooLarge,
		},
		{
			name: "pairwise list truncated",
			b:    []byte{0x01, 0x00, 0x00, 0x0f, 0xac, 0x04, 0x02, 0x00, 0x00, 0x0f, 0xac, 0x04},
			err:  errRSNTruncatedPairwiseList,
		},
		{
			name: "AKM count too large",
			b:    append(append([]byte(nil), wpa2[:12]...), 61, 0x00),
			err:  errRSNAKMCountTooLarge,
		},
		{
			name: "AKM list truncated",
			b:    append(append([]byte(nil), wpa2[:12]...), 0x01, 0x00, 0x00, 0x0f),
			err:  errRSNTruncatedAKMList,
		},
		{
			name: "PMKID count too large",
			b:    append(append([]byte(nil), wpa2...), 16, 0x00),
			err:  errRSNPMKIDCountTooLarge,
		},
		{
			name: "PMKID list truncated",
			b:    append(append([]byte(nil), wpa2...), 0x01, 0x00, 0x00),
			err:  errRSNTruncatedPMKIDList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsn, err := decodeRSN(tt.b)
			if want, got := tt.err, err; want != got {
				t.Fatalf("unexpected error:\n- want: %v\n-  got: %v", want, got)
			}

			if diff := cmp.Diff(tt.rsn, rsn, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("unexpected RSN (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRSNInfoIsZero(t *testing.T) {
	var r RSNInfo
	if !r.IsZero() {
		t.Fatal("expected zero RSN info")
	}
	if diff := cmp.Diff("RSN: none", r.String()); diff != "" {
		t.Fatalf("unexpected string (-want +got):\n%s", diff)
	}
}
