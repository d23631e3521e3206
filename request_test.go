package wifi

import (
	"encoding/hex"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/gopacket/layers"
)

func TestRequestBuilders(t *testing.T) {
	mac := HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad}

	tests := []struct {
		name      string
		got, want Message
	}{
		{
			name: "get wiphy",
			got:  GetWiphyByIndex(1),
			want: NewMessage(CommandGetWiphy, SplitWiphyDump{}, Wiphy(1)),
		},
		{
			name: "get interface",
			got:  GetInterface(3),
			want: NewMessage(CommandGetInterface, IfIndex(3)),
		},
		{
			name: "trigger scan wildcard",
			got:  TriggerScan(3),
			want: NewMessage(CommandTriggerScan, IfIndex(3), ScanSSIDs{SSID{}}),
		},
		{
			name: "trigger scan SSIDs",
			got:  TriggerScan(3, SSID("a"), SSID("b")),
			want: NewMessage(CommandTriggerScan, IfIndex(3), ScanSSIDs{SSID("a"), SSID("b")}),
		},
		{
			name: "get station all",
			got:  GetStation(3, HardwareAddr{}),
			want: NewMessage(CommandGetStation, IfIndex(3)),
		},
		{
			name: "get station one",
			got:  GetStation(3, mac),
			want: NewMessage(CommandGetStation, IfIndex(3), MAC(mac)),
		},
		{
			name: "set channel",
			got:  SetChannel(3, ChannelHT40Plus(2412)),
			want: NewMessage(CommandSetChannel,
				IfIndex(3),
				WiphyFreq(2412),
				ChanWidth(ChannelWidth40),
				WiphyChannelType(ChannelTypeHT40Plus),
			),
		},
		{
			name: "retarget channel",
			got:  SetChannel(3, ChannelHT40Plus(2412)).WithChannel(ChannelVHT80(5180, 5210)),
			want: NewMessage(CommandSetChannel,
				IfIndex(3),
				WiphyFreq(5180),
				ChanWidth(ChannelWidth80),
				CenterFreq1(5210),
			),
		},
		{
			name: "register frame without match",
			got:  RegisterFrame(3, FrameTypeAction, nil),
			want: NewMessage(CommandRegisterFrame, IfIndex(3), FrameType(0x00d0), FrameMatch(nil)),
		},
		{
			name: "power save",
			got:  SetPowerSave(3, true),
			want: NewMessage(CommandSetPowerSave, IfIndex(3), PSState(PowerSaveEnabled)),
		},
		{
			name: "change regulatory",
			got:  ChangeRegulatory("DE"),
			want: NewMessage(CommandRegChange,
				RegAlpha2("DE"),
				RegType(RegulatoryDomainCountry),
				RegInitiator(RegulatoryInitiatorUser),
			),
		},
		{
			name: "connect",
			got:  Connect(3, []byte("open")),
			want: NewMessage(CommandConnect, IfIndex(3), SSID("open"), AuthType(AuthOpenSystem)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.want.Equal(tt.got) {
				t.Fatalf("unexpected message:\nwant: %s\n got: %s", tt.want, tt.got)
			}
		})
	}
}

func TestTriggerScanWildcardEncoding(t *testing.T) {
	// A wildcard SSID is a nested element with an empty payload.
	ssids, ok := Get[ScanSSIDs](TriggerScan(1))
	if !ok {
		t.Fatal("expected scan SSIDs")
	}

	b := make([]byte, ValueLen(ssids))
	EncodeValue(ssids, b)

	if diff := cmp.Diff([]byte{0x04, 0x00, 0x00, 0x00}, b); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}
}

func TestConnectWPAPSK(t *testing.T) {
	m := ConnectWPAPSK(3, []byte("IEEE"), "password")

	pmk, ok := Get[PMK](m)
	if !ok {
		t.Fatal("expected a PMK attribute")
	}

	// IEEE 802.11i-2004, H.4.1 test vector.
	want, _ := hex.DecodeString("f42c6fc52df0ebef9ebb4b90b38a5f902e83fe1b135a70e23aed762e9710a12e")
	if diff := cmp.Diff(PMK(want), pmk); diff != "" {
		t.Fatalf("unexpected PMK (-want +got):\n%s", diff)
	}

	for _, kind := range []Attribute{
		IfIndex(0),
		SSID(nil),
		WPAVersions(0),
		CipherSuiteGroup(0),
		CipherSuitesPairwise(nil),
		AKMSuites(nil),
		Want1X4WayHS{},
		AuthType(0),
	} {
		if _, ok := m.Attribute(kind.Kind()); !ok {
			t.Fatalf("missing attribute %T", kind)
		}
	}
}

func TestStartAP(t *testing.T) {
	bssid := HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

	m, err := StartAP(5, APConfig{
		SSID:           []byte("hello"),
		BSSID:          bssid,
		BeaconInterval: 100,
		DTIMPeriod:     2,
		Privacy:        true,
		Rates:          []byte{0x82, 0x84, 0x8b, 0x96},
		Channel:        ChannelNoHT20(2437),
		Tail:           []byte{0x30, 0x00},
	})
	if err != nil {
		t.Fatalf("failed to start AP: %v", err)
	}

	if _, ok := Get[Privacy](m); !ok {
		t.Fatal("expected privacy flag")
	}
	if v, _ := Get[BeaconTail](m); len(v) != 2 {
		t.Fatalf("unexpected beacon tail: %v", v)
	}
	if v, _ := Get[WiphyFreq](m); v != 2437 {
		t.Fatalf("unexpected frequency: %d", v)
	}

	head, ok := Get[BeaconHead](m)
	if !ok {
		t.Fatal("expected a beacon head")
	}

	// gopacket fails on the trailing 3 byte DS Parameter Set, so only the
	// header layers are checked through it.
	p := Frame(head).Packet()

	dot11, ok := p.Layer(layers.LayerTypeDot11).(*layers.Dot11)
	if !ok {
		t.Fatal("expected an 802.11 layer")
	}
	if diff := cmp.Diff(layers.Dot11TypeMgmtBeacon, dot11.Type); diff != "" {
		t.Fatalf("unexpected frame type (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(net.HardwareAddr(bssid[:]), dot11.Address2); diff != "" {
		t.Fatalf("unexpected transmitter (-want +got):\n%s", diff)
	}

	beacon, ok := p.Layer(layers.LayerTypeDot11MgmtBeacon).(*layers.Dot11MgmtBeacon)
	if !ok {
		t.Fatal("expected a beacon layer")
	}
	if diff := cmp.Diff(uint16(100), beacon.Interval); diff != "" {
		t.Fatalf("unexpected beacon interval (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(capabilityESS|capabilityPrivacy, beacon.Flags); diff != "" {
		t.Fatalf("unexpected capabilities (-want +got):\n%s", diff)
	}

	elems, err := parseIEs(head[24+12:])
	if err != nil {
		t.Fatalf("failed to parse elements: %v", err)
	}

	ies := make(map[layers.Dot11InformationElementID][]byte)
	for _, ie := range elems {
		ies[ie.ID] = ie.Data
	}

	want := map[layers.Dot11InformationElementID][]byte{
		layers.Dot11InformationElementIDSSID:  []byte("hello"),
		layers.Dot11InformationElementIDRates: {0x82, 0x84, 0x8b, 0x96},
		layers.Dot11InformationElementIDDSSet: {6},
	}
	if diff := cmp.Diff(want, ies); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestStartAPHiddenSSID(t *testing.T) {
	m, err := StartAP(5, APConfig{
		SSID:   []byte("hidden"),
		Hidden: HiddenSSIDZeroLen,
	})
	if err != nil {
		t.Fatalf("failed to start AP: %v", err)
	}

	// The SSID attribute keeps the real name for probe responses while the
	// beacon hides it.
	if v, _ := Get[SSID](m); string(v) != "hidden" {
		t.Fatalf("unexpected SSID: %q", v)
	}

	head, _ := Get[BeaconHead](m)
	ies, err := parseIEs(head[24+12:])
	if err != nil {
		t.Fatalf("failed to parse elements: %v", err)
	}

	if len(ies) != 1 || ies[0].ID != layers.Dot11InformationElementIDSSID || len(ies[0].Data) != 0 {
		t.Fatalf("unexpected elements: %v", ies)
	}
}

func TestStartAPSSIDTooLong(t *testing.T) {
	_, err := StartAP(5, APConfig{SSID: make([]byte, 33)})
	if err == nil {
		t.Fatal("expected an error for a 33 byte SSID")
	}
}
