package wifi

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHTCapabilityBlockCapabilities(t *testing.T) {
	blk := HTCapabilityBlock{
		0: 0xef, 1: 0x01, // capability information
		2: 0x1b, // A-MPDU parameters
		3: 0xff, 4: 0xff, // MCS 0-15
	}

	want := &HTCapabilities{
		RxLDPC:           true,
		CW40:             true,
		SGI20:            true,
		SGI40:            true,
		TxSTBC:           true,
		RxSTBCStreams:    1,
		MaxRxAMPDULength: 65535,
		SupportedMCS:     [16]byte{0xff, 0xff},
	}

	if diff := cmp.Diff(want, blk.Capabilities()); diff != "" {
		t.Fatalf("unexpected HT capabilities (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(8*time.Microsecond, blk.MinRxAMPDUSpacing()); diff != "" {
		t.Fatalf("unexpected A-MPDU spacing (-want +got):\n%s", diff)
	}
}

func Test_ampduSpacing(t *testing.T) {
	tests := []struct {
		v uint8
		d time.Duration
	}{
		{v: 0, d: 0},
		{v: 1, d: 250 * time.Nanosecond},
		{v: 2, d: 500 * time.Nanosecond},
		{v: 3, d: time.Microsecond},
		{v: 5, d: 4 * time.Microsecond},
		{v: 7, d: 16 * time.Microsecond},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.d, ampduSpacing(tt.v)); diff != "" {
			t.Fatalf("unexpected spacing for %d (-want +got):\n%s", tt.v, diff)
		}
	}
}

func TestVHTCapabilityBlockCapabilities(t *testing.T) {
	blk := VHTCapabilityBlock{
		0xb2, 0x71, 0x80, 0x33,
		0xfa, 0xff, 0x00, 0x00,
		0xfa, 0xff, 0x00, 0x00,
	}

	want := &VHTCapabilities{
		MaxMPDULength:    11454,
		RXLDPC:           true,
		ShortGI80:        true,
		TXSTBC:           true,
		RXSTBC:           1,
		SuBeamFormee:     true,
		BFAntenna:        4,
		MaxAMPDU:         1048575,
		RXAntennaPattern: true,
		TXAntennaPattern: true,
		SupportedMCS:     [8]byte{0xfa, 0xff, 0x00, 0x00, 0xfa, 0xff, 0x00, 0x00},
	}

	if diff := cmp.Diff(want, blk.Capabilities()); diff != "" {
		t.Fatalf("unexpected VHT capabilities (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(uint16(0xfffa), blk.RxMCSMap()); diff != "" {
		t.Fatalf("unexpected Rx MCS map (-want +got):\n%s", diff)
	}
}

func TestWiphyBandHTCapabilityBlock(t *testing.T) {
	b := WiphyBand{
		HTMCSSet:       []byte{0xff, 0xff, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		HTCapa:         0x01ef,
		HTAMPDUFactor:  3,
		HTAMPDUDensity: 6,
	}

	blk, ok := b.HTCapabilityBlock()
	if !ok {
		t.Fatal("expected an HT capability block")
	}

	want := HTCapabilityBlock{0: 0xef, 1: 0x01, 2: 0x1b, 3: 0xff, 4: 0xff}
	if diff := cmp.Diff(want, blk); diff != "" {
		t.Fatalf("unexpected block (-want +got):\n%s", diff)
	}

	if (WiphyBand{}).HTCapabilities() != nil {
		t.Fatal("expected no HT capabilities without an MCS set")
	}
	if (WiphyBand{}).VHTCapabilities() != nil {
		t.Fatal("expected no VHT capabilities without an MCS set")
	}
}

func TestExtFeatures(t *testing.T) {
	var fs ExtFeatures
	fs = fs.Set(ExtFeatureRRM)
	fs = fs.Set(ExtFeature4WayHandshakeSTAPSK)

	if diff := cmp.Diff(ExtFeatures{0x02, 0x80}, fs); diff != "" {
		t.Fatalf("unexpected bits (-want +got):\n%s", diff)
	}

	for _, f := range []ExtFeature{ExtFeatureRRM, ExtFeature4WayHandshakeSTAPSK} {
		if !fs.Has(f) {
			t.Fatalf("expected feature %s", f)
		}
	}
	if fs.Has(ExtFeatureVHTIBSS) {
		t.Fatal("unexpected VHT_IBSS feature")
	}
	if fs.Has(ExtFeature(1000)) {
		t.Fatal("bits past the end of the vector must be clear")
	}

	want := []ExtFeature{ExtFeatureRRM, ExtFeature4WayHandshakeSTAPSK}
	if diff := cmp.Diff(want, fs.List()); diff != "" {
		t.Fatalf("unexpected features (-want +got):\n%s", diff)
	}

	// Set must not modify the receiver.
	orig := ExtFeatures{0x01}
	_ = orig.Set(ExtFeatureMUMIMOAirSniffer)
	if diff := cmp.Diff(ExtFeatures{0x01}, orig); diff != "" {
		t.Fatalf("receiver was modified (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff("4WAY_HANDSHAKE_STA_PSK", ExtFeature4WayHandshakeSTAPSK.String()); diff != "" {
		t.Fatalf("unexpected name (-want +got):\n%s", diff)
	}
}

func TestFeatureFlagsAndBands(t *testing.T) {
	ff := FeatureFlags(1<<FeatureStaticSMPS | 1<<FeatureSAE)
	if !ff.Has(FeatureStaticSMPS) || !ff.Has(FeatureSAE) || ff.Has(FeatureDynamicSMPS) {
		t.Fatalf("unexpected features: %#x", uint32(ff))
	}
	if ff.Has(Feature(40)) {
		t.Fatal("out of range feature must be clear")
	}

	bands := Bands(1<<Band2GHz | 1<<Band6GHz)
	if diff := cmp.Diff([]Band{Band2GHz, Band6GHz}, bands.List()); diff != "" {
		t.Fatalf("unexpected bands (-want +got):\n%s", diff)
	}
}

func TestExtendedCapabilityHas(t *testing.T) {
	// Bit 19 is BSS transition.
	e := ExtendedCapability{0x00, 0x00, 0x08}
	if !e.Has(19) {
		t.Fatal("expected bit 19")
	}
	if e.Has(18) || e.Has(64) {
		t.Fatal("unexpected bit")
	}
}
