//go:build linux
// +build linux

package wifi

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/genetlink/genltest"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/sys/unix"
)

func TestLinux_clientInterfacesBadResponseCommand(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		return []genetlink.Message{{
			Header: genetlink.Header{
				// Wrong response command
				Command: unix.NL80211_CMD_GET_INTERFACE,
			},
		}}, nil
	})

	want := errInvalidCommand
	_, got := c.Interfaces()

	if want != got {
		t.Fatalf("unexpected error:\n- want: %+v\n-  got: %+v",
			want, got)
	}
}

func TestLinux_clientInterfacesBadResponseFamilyVersion(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		return []genetlink.Message{{
			Header: genetlink.Header{
				// Wrong family version
				Command: unix.NL80211_CMD_NEW_INTERFACE,
				Version: 100,
			},
		}}, nil
	})

	want := errInvalidFamilyVersion
	_, got := c.Interfaces()

	if want != got {
		t.Fatalf("unexpected error:\n- want: %+v\n-  got: %+v",
			want, got)
	}
}

func TestLinux_clientInterfacesMalformedReply(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		return []genetlink.Message{{
			Header: genetlink.Header{
				Command: unix.NL80211_CMD_NEW_INTERFACE,
			},
			Data: mustMarshalAttributes([]netlink.Attribute{{
				Type: unix.NL80211_ATTR_IFINDEX,
				Data: []byte{0x01},
			}}),
		}}, nil
	})

	_, err := c.Interfaces()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated error, got: %v", err)
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, but got: %T", err)
	}
	if diff := cmp.Diff([]uint16{unix.NL80211_ATTR_IFINDEX}, de.Kinds); diff != "" {
		t.Fatalf("unexpected attribute path (-want +got):\n%s", diff)
	}
}

func TestLinux_clientInterfacesOK(t *testing.T) {
	want := []*Interface{
		{
			Index:        1,
			Name:         "wlan0",
			HardwareAddr: net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad},
			PHY:          0,
			Device:       1,
			Type:         InterfaceTypeStation,
			Frequency:    2412,
		},
		{
			HardwareAddr: net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0xde, 0xae},
			PHY:          0,
			Device:       2,
			Type:         InterfaceTypeP2PDevice,
		},
	}

	const flags = netlink.Request | netlink.Dump

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_GET_INTERFACE, flags,
		mustMessages(t,
			NewMessage(CommandNewInterface,
				IfIndex(1),
				IfName("wlan0"),
				MAC{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad},
				Wiphy(0),
				IfType(InterfaceTypeStation),
				Wdev(1),
				WiphyFreq(2412),
			),
			NewMessage(CommandNewInterface,
				MAC{0xde, 0xad, 0xbe, 0xef, 0xde, 0xae},
				Wiphy(0),
				IfType(InterfaceTypeP2PDevice),
				Wdev(2),
			),
		),
	))

	got, err := c.Interfaces()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected interfaces (-want +got):\n%s", diff)
	}
}

func TestLinux_clientInterfaceOK(t *testing.T) {
	const flags = netlink.Request

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_GET_INTERFACE, flags,
		func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
			checkRequest(t, GetInterface(3), greq)

			return mustMessages(t, NewMessage(CommandNewInterface,
				IfIndex(3),
				IfName("wlan1"),
				IfType(InterfaceTypeMonitor),
			))(greq, nreq)
		},
	))

	got, err := c.Interface(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Interface{
		Index: 3,
		Name:  "wlan1",
		Type:  InterfaceTypeMonitor,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected interface (-want +got):\n%s", diff)
	}
}

func TestLinux_clientStrictUnknownAttribute(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	reply := mustMessages(t, NewMessage(CommandNewInterface,
		IfIndex(1),
		Unknown{Type: 0x3ffe, Data: []byte{0xff}},
	))

	tests := []struct {
		name   string
		strict bool
		err    error
	}{
		{
			name: "lenient",
		},
		{
			name:   "strict",
			strict: true,
			err:    ErrUnknownAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			c := testClientConfig(t, &Config{Logger: logger, Strict: tt.strict}, reply)

			ifis, err := c.Interfaces()
			if !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error:\n- want: %v\n-  got: %v", tt.err, err)
			}
			if err == nil && len(ifis) != 1 {
				t.Fatalf("unexpected interfaces: %v", ifis)
			}

			e := hook.LastEntry()
			if e == nil {
				t.Fatal("expected a log entry")
			}
			if diff := cmp.Diff("wifi: unknown attribute", e.Message); diff != "" {
				t.Fatalf("unexpected log message (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(logrus.DebugLevel, e.Level); diff != "" {
				t.Fatalf("unexpected log level (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(uint16(0x3ffe), e.Data["kind"]); diff != "" {
				t.Fatalf("unexpected kind field (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff("new_interface", e.Data["command"]); diff != "" {
				t.Fatalf("unexpected command field (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinux_clientExecuteAcknowledge(t *testing.T) {
	const flags = netlink.Request | netlink.Acknowledge

	req := SetPowerSave(4, true)

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_SET_POWER_SAVE, flags,
		func(greq genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
			checkRequest(t, req, greq)
			return nil, io.EOF
		},
	))

	msgs, err := c.Execute(req, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msgs != nil {
		t.Fatalf("expected no messages, got: %v", msgs)
	}
}

func TestLinux_clientExecuteDump(t *testing.T) {
	const flags = netlink.Request | netlink.Dump

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_GET_REG, flags,
		mustMessages(t,
			NewMessage(CommandGetReg, RegAlpha2("00")),
			NewMessage(CommandGetReg, RegAlpha2("US"), Wiphy(1)),
		),
	))

	msgs, err := c.Execute(GetRegulatory(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Message{
		NewMessage(CommandGetReg, RegAlpha2("00")),
		NewMessage(CommandGetReg, RegAlpha2("US"), Wiphy(1)),
	}

	if len(want) != len(msgs) {
		t.Fatalf("unexpected number of messages: %d", len(msgs))
	}
	for i := range want {
		if !want[i].Equal(msgs[i]) {
			t.Fatalf("unexpected message %d:\nwant: %s\n got: %s", i, want[i], msgs[i])
		}
	}
}

func TestLinux_clientRegulatoryOK(t *testing.T) {
	c := testClient(t, mustMessages(t,
		NewMessage(CommandGetReg,
			RegAlpha2("DE"),
			DFSRegion(DFSETSI),
			RegRules{{Flags: RuleNoIR, FreqRangeStart: 2402000, FreqRangeEnd: 2482000}},
		),
	))

	got, err := c.Regulatory()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []*RegulatoryDomain{{
		Alpha2:    "DE",
		DFSRegion: DFSETSI,
		PHY:       -1,
		Rules:     []RegulatoryRule{{Flags: RuleNoIR, FreqRangeStart: 2402000, FreqRangeEnd: 2482000}},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected regulatory domains (-want +got):\n%s", diff)
	}
}

func TestLinux_clientBSSMissingBSSAttributeIsNotExist(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		// One message without BSS attribute
		return []genetlink.Message{{
			Header: genetlink.Header{
				Command: unix.NL80211_CMD_NEW_SCAN_RESULTS,
			},
			Data: mustMarshalAttributes([]netlink.Attribute{{
				Type: unix.NL80211_ATTR_IFINDEX,
				Data: nlenc.Uint32Bytes(1),
			}}),
		}}, nil
	})

	_, err := c.BSS(&Interface{Index: 1})
	if !os.IsNotExist(err) {
		t.Fatalf("expected is not exist, got: %v", err)
	}
}

func TestLinux_clientBSSMissingBSSStatusAttributeIsNotExist(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		return []genetlink.Message{{
			Header: genetlink.Header{
				Command: unix.NL80211_CMD_NEW_SCAN_RESULTS,
			},
			// BSS attribute, but no nested status attribute for the "active" BSS
			Data: mustMarshalAttributes([]netlink.Attribute{{
				Type: unix.NL80211_ATTR_BSS,
				Data: mustMarshalAttributes([]netlink.Attribute{{
					Type: unix.NL80211_BSS_BSSID,
					Data: net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
				}}),
			}}),
		}}, nil
	})

	_, err := c.BSS(&Interface{Index: 1})
	if !os.IsNotExist(err) {
		t.Fatalf("expected is not exist, got: %v", err)
	}
}

func TestLinux_clientBSSNoMessagesIsNotExist(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		// No messages about the BSS at the generic netlink level.
		// Caller will interpret this as no BSS.
		return nil, io.EOF
	})

	_, err := c.BSS(&Interface{Index: 1})
	if !os.IsNotExist(err) {
		t.Fatalf("expected is not exist, got: %v", err)
	}
}

func TestLinux_clientBSSOK(t *testing.T) {
	associated := BSSStatusAssociated

	want := &BSS{
		SSID:           "Hello, 世界",
		BSSID:          net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		Frequency:      2492,
		BeaconInterval: 100 * 1024 * time.Microsecond,
		LastSeen:       10 * time.Second,
		Status:         BSSStatusAssociated,
		Signal:         -60,
	}

	ifi := &Interface{
		Index:        1,
		HardwareAddr: net.HardwareAddr{0xe, 0xad, 0xbe, 0xef, 0xde, 0xad},
	}

	const flags = netlink.Request | netlink.Dump

	msgsFn := mustMessages(t,
		// Not associated, so ignored.
		NewMessage(CommandNewScanResults, IfIndex(1), BSSInfo{
			BSSID: HardwareAddr{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa},
		}),
		NewMessage(CommandNewScanResults, IfIndex(1), BSSInfo{
			BSSID:               HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			Frequency:           2492,
			BeaconInterval:      100,
			SeenMsAgo:           10000,
			SignalMBM:           -6000,
			Status:              &associated,
			InformationElements: marshalIEs([]ie{{ID: 0, Data: []byte("Hello, 世界")}}),
		}),
	)

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_GET_SCAN, flags,
		func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
			// Also verify that the correct interface attributes are
			// present in the request.
			checkRequest(t, GetScan(ifi.Index), greq)
			return msgsFn(greq, nreq)
		},
	))

	got, err := c.BSS(ifi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected BSS (-want +got):\n%s", diff)
	}
}

func TestLinux_clientStationInfoMissingAttributeIsNotExist(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		// One message without station info attribute
		return []genetlink.Message{{
			Header: genetlink.Header{
				Command: unix.NL80211_CMD_NEW_STATION,
			},
			Data: mustMarshalAttributes([]netlink.Attribute{{
				Type: unix.NL80211_ATTR_IFINDEX,
				Data: nlenc.Uint32Bytes(1),
			}}),
		}}, nil
	})

	_, err := c.StationInfo(&Interface{Index: 1})
	if !os.IsNotExist(err) {
		t.Fatalf("expected is not exist, got: %v", err)
	}
}

func TestLinux_clientStationInfoNoMessagesIsEmpty(t *testing.T) {
	c := testClient(t, func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		// No stations at the generic netlink level.
		return nil, io.EOF
	})

	got, err := c.StationInfo(&Interface{Index: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no stations, got: %v", got)
	}
}

func TestLinux_clientStationInfoOK(t *testing.T) {
	want := []*Station{
		{
			InterfaceIndex:     1,
			HardwareAddr:       net.HardwareAddr{0xb8, 0x27, 0xeb, 0xd5, 0xf3, 0xef},
			Connected:          30 * time.Minute,
			Inactive:           4 * time.Millisecond,
			ReceivedBytes:      1000,
			TransmittedBytes:   2000,
			ReceivedPackets:    10,
			TransmittedPackets: 20,
			Signal:             -50,
			TransmitRetries:    5,
			TransmitFailed:     2,
			BeaconLoss:         3,
			ReceiveBitrate:     130000000,
			TransmitBitrate:    130000000,
		},
		{
			InterfaceIndex:     1,
			HardwareAddr:       net.HardwareAddr{0x40, 0xa5, 0xef, 0xd9, 0x96, 0x6f},
			Connected:          60 * time.Minute,
			Inactive:           8 * time.Millisecond,
			ReceivedBytes:      2000,
			TransmittedBytes:   4000,
			ReceivedPackets:    20,
			TransmittedPackets: 40,
			Signal:             -25,
			TransmitRetries:    10,
			TransmitFailed:     4,
			BeaconLoss:         6,
			ReceiveBitrate:     260000000,
			TransmitBitrate:    260000000,
		},
	}

	ifi := &Interface{
		Index:        1,
		HardwareAddr: net.HardwareAddr{0xe, 0xad, 0xbe, 0xef, 0xde, 0xad},
	}

	replies := make([]Message, 0, len(want))
	for _, s := range want {
		replies = append(replies, stationMessage(s))
	}

	const flags = netlink.Request | netlink.Dump

	msgsFn := mustMessages(t, replies...)

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_GET_STATION, flags,
		func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
			checkRequest(t, GetStation(ifi.Index, HardwareAddr{}), greq)
			return msgsFn(greq, nreq)
		},
	))

	got, err := c.StationInfo(ifi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The raw statistics are covered by the codec tests.
	for _, s := range got {
		s.Info = StationInfo{}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stations (-want +got):\n%s", diff)
	}
}

func TestLinux_clientConnectWPAPSKNotSupported(t *testing.T) {
	const flags = netlink.Request | netlink.Dump

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_GET_WIPHY, flags,
		func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
			checkRequest(t, GetWiphyByInterface(1), greq)

			return mustMessages(t, NewMessage(CommandNewWiphy,
				Wiphy(0),
				ExtFeatures(nil).Set(ExtFeatureRRM),
			))(greq, nreq)
		},
	))

	err := c.ConnectWPAPSK(&Interface{Index: 1}, "home", "password")
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected not supported, got: %v", err)
	}
}

func TestLinux_clientConnectWPAPSKOK(t *testing.T) {
	var connected bool

	c := testClient(t, func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		switch greq.Header.Command {
		case unix.NL80211_CMD_GET_WIPHY:
			return mustMessages(t, NewMessage(CommandNewWiphy,
				Wiphy(0),
				ExtFeatures(nil).Set(ExtFeature4WayHandshakeSTAPSK),
			))(greq, nreq)
		case unix.NL80211_CMD_CONNECT:
			if diff := cmp.Diff(netlink.Request|netlink.Acknowledge, nreq.Header.Flags); diff != "" {
				t.Fatalf("unexpected flags (-want +got):\n%s", diff)
			}

			checkRequest(t, ConnectWPAPSK(1, []byte("home"), "password"), greq)
			connected = true
			return nil, io.EOF
		default:
			t.Fatalf("unexpected command: %d", greq.Header.Command)
			return nil, nil
		}
	})

	if err := c.ConnectWPAPSK(&Interface{Index: 1}, "home", "password"); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if !connected {
		t.Fatal("connect request was not sent")
	}
}

func TestLinux_clientNewInterfaceOK(t *testing.T) {
	const flags = netlink.Request

	c := testClient(t, genltest.CheckRequest(familyID, unix.NL80211_CMD_NEW_INTERFACE, flags,
		func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
			checkRequest(t, NewInterface(1, "mon0", InterfaceTypeMonitor), greq)

			return mustMessages(t, NewMessage(CommandNewInterface,
				IfIndex(7),
				IfName("mon0"),
				IfType(InterfaceTypeMonitor),
			))(greq, nreq)
		},
	))

	got, err := c.NewInterface(&Interface{Index: 1}, "mon0", InterfaceTypeMonitor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Interface{Index: 7, Name: "mon0", Type: InterfaceTypeMonitor}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected interface (-want +got):\n%s", diff)
	}
}

func TestLinux_initClientErrorCloseConn(t *testing.T) {
	c := genltest.Dial(func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		// Assume that nl80211 does not exist on this system.
		// The genetlink Conn should be closed to avoid leaking file descriptors.
		return nil, genltest.Error(int(syscall.ENOENT))
	})

	if _, err := initClient(c, nil); err == nil {
		t.Fatal("no error occurred, but expected one")
	}
}

const familyID = 26

func testClient(t *testing.T, fn genltest.Func) *client {
	return testClientConfig(t, nil, fn)
}

func testClientConfig(t *testing.T, cfg *Config, fn genltest.Func) *client {
	family := genetlink.Family{
		ID:      familyID,
		Name:    unix.NL80211_GENL_NAME,
		Version: 1,
	}

	c := genltest.Dial(genltest.ServeFamily(family, func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		// If this function is invoked, we are calling a nl80211 function.
		if diff := cmp.Diff(int(family.ID), int(nreq.Header.Type)); diff != "" {
			t.Fatalf("unexpected generic netlink family ID (-want +got):\n%s", diff)
		}

		if diff := cmp.Diff(family.Version, greq.Header.Version); diff != "" {
			t.Fatalf("unexpected generic netlink family version (-want +got):\n%s", diff)
		}

		msgs, err := fn(greq, nreq)
		if err != nil {
			return nil, err
		}

		// Do a favor for the caller by planting the correct version in each message
		// header, as long as no version is supplied.
		for i := range msgs {
			if msgs[i].Header.Version == 0 {
				msgs[i].Header.Version = family.Version
			}
		}

		return msgs, nil
	}))

	client, err := initClient(c, cfg)
	if err != nil {
		t.Fatalf("failed to initialize test client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

// checkRequest decodes a request sent by the client and compares it to want.
func checkRequest(t *testing.T, want Message, greq genetlink.Message) {
	t.Helper()

	got, err := UnmarshalMessage(Command(greq.Header.Command), greq.Data)
	if err != nil {
		t.Fatalf("failed to decode request: %v", err)
	}

	if !want.Equal(got) {
		t.Fatalf("unexpected request:\nwant: %s\n got: %s", want, got)
	}
}

// mustMessages returns a genltest.Func which replies with msgs.
func mustMessages(t *testing.T, msgs ...Message) genltest.Func {
	gmsgs := make([]genetlink.Message, 0, len(msgs))
	for _, m := range msgs {
		b, err := m.MarshalBinary()
		if err != nil {
			t.Fatalf("failed to marshal %s: %v", m, err)
		}

		gmsgs = append(gmsgs, genetlink.Message{
			Header: genetlink.Header{
				Command: uint8(m.Command),
			},
			Data: b,
		})
	}

	return func(_ genetlink.Message, _ netlink.Message) ([]genetlink.Message, error) {
		return gmsgs, nil
	}
}

func TestLinux_unblockReceive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := make(readDeadlineRecorder, 1)
	go unblockReceive(ctx, r)

	select {
	case <-r:
		t.Fatal("read deadline set before cancellation")
	case <-time.After(10 * time.Millisecond):
	}

	cancel()

	select {
	case got := <-r:
		if got.After(time.Now()) {
			t.Fatalf("expected a read deadline in the past, got: %v", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the read deadline")
	}
}

type readDeadlineRecorder chan time.Time

func (r readDeadlineRecorder) SetReadDeadline(t time.Time) error {
	r <- t
	return nil
}

// Helper functions for converting types back into their raw attribute formats

func marshalIEs(ies []ie) []byte {
	var b []byte
	for _, ie := range ies {
		b = append(b, uint8(ie.ID), uint8(len(ie.Data)))
		b = append(b, ie.Data...)
	}

	return b
}

func stationMessage(s *Station) Message {
	var mac MAC
	copy(mac[:], s.HardwareAddr)

	rate := func(bitrate int) *RateInfo {
		return &RateInfo{Bitrate32: uint32(bitrate / 100 / 1000)}
	}

	return NewMessage(CommandNewStation,
		IfIndex(s.InterfaceIndex),
		mac,
		StationInfo{
			ConnectedTime: uint32(s.Connected.Seconds()),
			InactiveTime:  uint32(s.Inactive.Milliseconds()),
			RxBytes:       uint32(s.ReceivedBytes),
			RxBytes64:     uint64(s.ReceivedBytes),
			TxBytes:       uint32(s.TransmittedBytes),
			TxBytes64:     uint64(s.TransmittedBytes),
			Signal:        int8(s.Signal),
			RxPackets:     uint32(s.ReceivedPackets),
			TxPackets:     uint32(s.TransmittedPackets),
			TxRetries:     uint32(s.TransmitRetries),
			TxFailed:      uint32(s.TransmitFailed),
			BeaconLoss:    uint32(s.BeaconLoss),
			RxBitrate:     rate(s.ReceiveBitrate),
			TxBitrate:     rate(s.TransmitBitrate),
		},
	)
}
