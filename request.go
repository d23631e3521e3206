package wifi

import (
	"crypto/sha1"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/nlwifi/wifi/internal/nl80211"
	"golang.org/x/crypto/pbkdf2"
)

// Request builders. Each returns a new Message which callers may extend with
// further attributes before executing it.

// GetWiphy requests a split dump of every wiphy.
func GetWiphy() Message {
	return NewMessage(CommandGetWiphy, SplitWiphyDump{})
}

// GetWiphyByIndex requests a split dump of the wiphy with index phy.
func GetWiphyByIndex(phy int) Message { return GetWiphy().With(Wiphy(phy)) }

// GetWiphyByName requests a split dump of the wiphy named name.
func GetWiphyByName(name string) Message { return GetWiphy().With(WiphyName(name)) }

// GetWiphyByInterface requests a split dump of the wiphy which owns the
// interface with index ifindex.
func GetWiphyByInterface(ifindex int) Message { return GetWiphy().With(IfIndex(ifindex)) }

// GetInterfaces requests every interface. It is sent as a dump.
func GetInterfaces() Message { return NewMessage(CommandGetInterface) }

// GetInterface requests the interface with index ifindex.
func GetInterface(ifindex int) Message { return GetInterfaces().With(IfIndex(ifindex)) }

// GetInterfaceByName requests the interface named name.
func GetInterfaceByName(name string) Message { return GetInterfaces().With(IfName(name)) }

// SetInterfaceType changes the operating mode of an interface.
func SetInterfaceType(ifindex int, t InterfaceType) Message {
	return NewMessage(CommandSetInterface, IfIndex(ifindex), IfType(t))
}

// SetInterface4Addr enables or disables 4-address frames on an interface.
func SetInterface4Addr(ifindex int, on bool) Message {
	return NewMessage(CommandSetInterface, IfIndex(ifindex), Use4Addr(on))
}

// SetInterfaceMAC changes the hardware address of an interface.
func SetInterfaceMAC(ifindex int, mac HardwareAddr) Message {
	return NewMessage(CommandSetInterface, IfIndex(ifindex), MAC(mac))
}

// NewInterface creates a virtual interface named name on the wiphy which owns
// the interface with index ifindex.
func NewInterface(ifindex int, name string, t InterfaceType) Message {
	return NewMessage(CommandNewInterface, IfIndex(ifindex), IfName(name), IfType(t))
}

// DeleteInterface removes a virtual interface.
func DeleteInterface(ifindex int) Message {
	return NewMessage(CommandDelInterface, IfIndex(ifindex))
}

// A Channel describes an operating channel by its control frequency and
// width. Center frequencies are required for widths of 80MHz and above.
type Channel struct {
	Frequency   uint32 // MHz
	Width       ChannelWidth
	Type        ChannelType
	CenterFreq1 uint32
	CenterFreq2 uint32
}

// ChannelNoHT20 is a 20MHz channel without HT.
func ChannelNoHT20(freq uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth20NoHT}
}

// ChannelHT40Plus is a 40MHz HT channel whose secondary channel is above the
// control channel.
func ChannelHT40Plus(freq uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth40, Type: ChannelTypeHT40Plus}
}

// ChannelHT40Minus is a 40MHz HT channel whose secondary channel is below the
// control channel.
func ChannelHT40Minus(freq uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth40, Type: ChannelTypeHT40Minus}
}

// ChannelVHT80 is an 80MHz VHT channel centered on center1.
func ChannelVHT80(freq, center1 uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth80, CenterFreq1: center1}
}

// ChannelVHT160 is a 160MHz VHT channel centered on center1.
func ChannelVHT160(freq, center1 uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth160, CenterFreq1: center1}
}

// ChannelVHT80P80 is a non-contiguous 80+80MHz VHT channel.
func ChannelVHT80P80(freq, center1, center2 uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth80P80, CenterFreq1: center1, CenterFreq2: center2}
}

// ChannelEHT320 is a 320MHz EHT channel centered on center1.
func ChannelEHT320(freq, center1 uint32) Channel {
	return Channel{Frequency: freq, Width: ChannelWidth320, CenterFreq1: center1}
}

// Attributes returns the attributes which select c. The width is always
// present; the channel type and center frequencies only when set.
func (c Channel) Attributes() []Attribute {
	attrs := []Attribute{WiphyFreq(c.Frequency), ChanWidth(c.Width)}
	if c.Type != ChannelTypeNoHT {
		attrs = append(attrs, WiphyChannelType(c.Type))
	}
	if c.CenterFreq1 != 0 {
		attrs = append(attrs, CenterFreq1(c.CenterFreq1))
	}
	if c.CenterFreq2 != 0 {
		attrs = append(attrs, CenterFreq2(c.CenterFreq2))
	}

	return attrs
}

// SetChannel tunes the interface with index ifindex to c.
func SetChannel(ifindex int, c Channel) Message {
	return NewMessage(CommandSetChannel, IfIndex(ifindex)).WithChannel(c)
}

// WithChannel returns a copy of m which selects c. Every attribute other than
// IfIndex is dropped first, so a channel request can be retargeted.
func (m Message) WithChannel(c Channel) Message {
	return m.Retain(OfKind(nl80211.AttrIfindex)).With(c.Attributes()...)
}

// RegisterFrame subscribes to management frames of frameType received on an
// interface whose body begins with match. An empty match selects every frame
// of that type.
func RegisterFrame(ifindex int, frameType uint16, match []byte) Message {
	return NewMessage(CommandRegisterFrame,
		IfIndex(ifindex),
		FrameType(frameType),
		FrameMatch(cloneBytes(match)),
	)
}

// Management frame subtypes for RegisterFrame, as the frame control field.
const (
	FrameTypeAssocRequest   uint16 = 0x0000
	FrameTypeReassocRequest uint16 = 0x0020
	FrameTypeProbeRequest   uint16 = 0x0040
	FrameTypeDisassoc       uint16 = 0x00a0
	FrameTypeAuth           uint16 = 0x00b0
	FrameTypeDeauth         uint16 = 0x00c0
	FrameTypeAction         uint16 = 0x00d0
)

// GetRegulatory requests the current regulatory domain.
func GetRegulatory() Message { return NewMessage(CommandGetReg) }

// RequestRegulatory asks the kernel to apply the regulatory domain of the
// country alpha2.
func RequestRegulatory(alpha2 string) Message {
	return NewMessage(CommandReqSetReg, RegAlpha2(alpha2))
}

// ChangeRegulatory is a user-initiated country regulatory domain change for
// alpha2.
func ChangeRegulatory(alpha2 string) Message {
	return NewMessage(CommandRegChange,
		RegAlpha2(alpha2),
		RegType(RegulatoryDomainCountry),
		RegInitiator(RegulatoryInitiatorUser),
	)
}

// SetRegulatory installs rules as the regulatory domain for alpha2.
func SetRegulatory(alpha2 string, rules RegRules) Message {
	return NewMessage(CommandSetReg, RegAlpha2(alpha2), rules)
}

// TriggerScan starts a scan on an interface, probing for each of ssids. With
// no ssids a single wildcard probe is sent.
func TriggerScan(ifindex int, ssids ...SSID) Message {
	if len(ssids) == 0 {
		ssids = []SSID{{}}
	}

	return NewMessage(CommandTriggerScan, IfIndex(ifindex), ScanSSIDs(ssids))
}

// GetScan requests the scan results known to an interface.
func GetScan(ifindex int) Message { return NewMessage(CommandGetScan, IfIndex(ifindex)) }

// GetStation requests station information on an interface. A zero mac
// requests every station.
func GetStation(ifindex int, mac HardwareAddr) Message {
	m := NewMessage(CommandGetStation, IfIndex(ifindex))
	if mac != (HardwareAddr{}) {
		m = m.With(MAC(mac))
	}

	return m
}

// GetSurvey requests channel survey results for an interface.
func GetSurvey(ifindex int) Message { return NewMessage(CommandGetSurvey, IfIndex(ifindex)) }

// SetPowerSave enables or disables power save on an interface.
func SetPowerSave(ifindex int, on bool) Message {
	state := PowerSaveDisabled
	if on {
		state = PowerSaveEnabled
	}

	return NewMessage(CommandSetPowerSave, IfIndex(ifindex), PSState(state))
}

// Connect connects an interface to the open network ssid.
func Connect(ifindex int, ssid []byte) Message {
	return NewMessage(CommandConnect,
		IfIndex(ifindex),
		SSID(cloneBytes(ssid)),
		AuthType(AuthOpenSystem),
	)
}

// ConnectWPAPSK connects an interface to the WPA2 personal network ssid with
// the passphrase psk. The driver performs the 4-way handshake.
func ConnectWPAPSK(ifindex int, ssid []byte, psk string) Message {
	return NewMessage(CommandConnect,
		IfIndex(ifindex),
		SSID(cloneBytes(ssid)),
		WPAVersion2,
		CipherSuiteGroup(CipherCCMP),
		CipherSuitesPairwise{CipherCCMP},
		AKMSuites{AKMPSK},
		Want1X4WayHS{},
		PMK(wpaPassphrase(ssid, []byte(psk))),
		AuthType(AuthOpenSystem),
	)
}

// wpaPassphrase computes a WPA passphrase given an SSID and preshared key.
func wpaPassphrase(ssid, psk []byte) []byte {
	return pbkdf2.Key(psk, ssid, 4096, 32, sha1.New)
}

// Disconnect disconnects an interface from its network.
func Disconnect(ifindex int) Message {
	return NewMessage(CommandDisconnect, IfIndex(ifindex))
}

// An APConfig describes the network an access point interface will serve.
type APConfig struct {
	SSID  []byte
	BSSID HardwareAddr

	// BeaconInterval is in time units of 1024 microseconds.
	BeaconInterval uint16
	DTIMPeriod     uint32
	Hidden         HiddenSSID
	Privacy        bool
	Channel        Channel

	// Rates lists the supported rates in units of 500kbps, with the high
	// bit set on basic rates.
	Rates []byte

	// Tail holds information elements placed after the beacon's fixed
	// elements, such as an RSN element.
	Tail []byte
}

// Beacon capability information bits.
const (
	capabilityESS     uint16 = 1 << 0
	capabilityPrivacy uint16 = 1 << 4
)

// StartAP starts an access point on an interface. The beacon head carries the
// management header, the fixed beacon fields and the SSID, rates and DS
// parameter elements.
func StartAP(ifindex int, cfg APConfig) (Message, error) {
	head, err := beaconHead(cfg)
	if err != nil {
		return Message{}, err
	}

	m := NewMessage(CommandStartAP,
		IfIndex(ifindex),
		BeaconHead(head),
		BeaconInterval(cfg.BeaconInterval),
		DTIMPeriod(cfg.DTIMPeriod),
		SSID(cloneBytes(cfg.SSID)),
		cfg.Hidden,
		AuthType(AuthOpenSystem),
	)
	if len(cfg.Tail) > 0 {
		m = m.With(BeaconTail(cloneBytes(cfg.Tail)))
	}
	if cfg.Privacy {
		m = m.With(Privacy{})
	}
	if cfg.Channel.Frequency != 0 {
		m = m.With(cfg.Channel.Attributes()...)
	}

	return m, nil
}

func beaconHead(cfg APConfig) ([]byte, error) {
	if len(cfg.SSID) > 32 {
		return nil, fmt.Errorf("wifi: SSID of %d bytes exceeds 32", len(cfg.SSID))
	}

	ssid := cfg.SSID
	switch cfg.Hidden {
	case HiddenSSIDZeroLen:
		ssid = nil
	case HiddenSSIDZeroContents:
		ssid = make([]byte, len(cfg.SSID))
	}

	capInfo := capabilityESS
	if cfg.Privacy {
		capInfo |= capabilityPrivacy
	}

	bssid := net.HardwareAddr(cfg.BSSID[:])
	ls := []gopacket.SerializableLayer{
		&layers.Dot11{
			Type:     layers.Dot11TypeMgmtBeacon,
			Address1: layers.EthernetBroadcast,
			Address2: bssid,
			Address3: bssid,
		},
		&layers.Dot11MgmtBeacon{
			Interval: cfg.BeaconInterval,
			Flags:    capInfo,
		},
		&layers.Dot11InformationElement{
			ID:   layers.Dot11InformationElementIDSSID,
			Info: ssid,
		},
	}
	if len(cfg.Rates) > 0 {
		ls = append(ls, &layers.Dot11InformationElement{
			ID:   layers.Dot11InformationElementIDRates,
			Info: cfg.Rates,
		})
	}
	if ch := FrequencyToChannel(int(cfg.Channel.Frequency)); ch > 0 {
		ls = append(ls, &layers.Dot11InformationElement{
			ID:   layers.Dot11InformationElementIDDSSet,
			Info: []byte{uint8(ch)},
		})
	}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, ls...); err != nil {
		return nil, fmt.Errorf("wifi: failed to build beacon head: %w", err)
	}

	return buf.Bytes(), nil
}

// StopAP stops the access point on an interface.
func StopAP(ifindex int) Message { return NewMessage(CommandStopAP, IfIndex(ifindex)) }
