package wifi

import (
	"fmt"
	"net"
	"time"
)

// An InterfaceType is the nl80211 interface type (NL80211_IFTYPE_*) carried
// by the IfType attribute.
type InterfaceType uint32

// Interface types in kernel order.
const (
	InterfaceTypeUnspecified InterfaceType = iota
	InterfaceTypeAdHoc
	InterfaceTypeStation
	InterfaceTypeAP
	InterfaceTypeAPVLAN
	InterfaceTypeWDS
	InterfaceTypeMonitor
	InterfaceTypeMeshPoint
	InterfaceTypeP2PClient
	InterfaceTypeP2PGroupOwner
	InterfaceTypeP2PDevice
	InterfaceTypeOCB
	InterfaceTypeNAN
)

// String implements fmt.Stringer.
func (t InterfaceType) String() string {
	switch t {
	case InterfaceTypeUnspecified:
		return "unspecified"
	case InterfaceTypeAdHoc:
		return "ad-hoc"
	case InterfaceTypeStation:
		return "station"
	case InterfaceTypeAP:
		return "access point"
	case InterfaceTypeAPVLAN:
		return "access point/VLAN"
	case InterfaceTypeWDS:
		return "wireless distribution"
	case InterfaceTypeMonitor:
		return "monitor"
	case InterfaceTypeMeshPoint:
		return "mesh point"
	case InterfaceTypeP2PClient:
		return "P2P client"
	case InterfaceTypeP2PGroupOwner:
		return "P2P group owner"
	case InterfaceTypeP2PDevice:
		return "P2P device"
	case InterfaceTypeOCB:
		return "outside context of BSS"
	case InterfaceTypeNAN:
		return "near-me area network"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}

// An Interface is a wireless network interface as described by a
// new_interface message.
type Interface struct {
	Index        int
	Name         string
	HardwareAddr net.HardwareAddr

	// PHY is the wiphy index and Device the wdev identifier within it.
	PHY    int
	Device int

	Type InterfaceType

	// Frequency of the operating channel in MHz, zero when not tuned.
	Frequency int

	// The width of the interface's operating channel.
	ChannelWidth ChannelWidth

	// The interface's transmit power in mBm.
	TxPower int

	// The SSID the interface is connected to or beaconing, if any.
	SSID string

	// Whether the interface uses 4-address frames.
	Use4Addr bool
}

// A Station contains statistics about a peer of a WiFi interface: the access
// point of a station-mode interface, or a client of an access point.
type Station struct {
	// The interface the statistics were read from.
	InterfaceIndex int

	HardwareAddr net.HardwareAddr

	// Connection age and time since the last activity.
	Connected time.Duration
	Inactive  time.Duration

	// Traffic counters. Byte counts prefer the 64-bit kernel counters.
	ReceivedBytes      int
	TransmittedBytes   int
	ReceivedPackets    int
	TransmittedPackets int

	// Last data rates in bits/second.
	ReceiveBitrate  int
	TransmitBitrate int

	// Signal of the last received PPDU and its running average, in dBm.
	Signal        int
	SignalAverage int

	TransmitRetries int
	TransmitFailed  int
	BeaconLoss      int

	// The raw statistics record.
	Info StationInfo
}

// A BSS is a scan result converted from a BSSInfo record and its
// information elements.
type BSS struct {
	// SSID decoded from the SSID element, invalid UTF-8 replaced.
	SSID  string
	BSSID net.HardwareAddr

	// Frequency in MHz.
	Frequency int

	BeaconInterval time.Duration

	// LastSeen is the age of the scan entry.
	LastSeen time.Duration

	Status BSSStatus

	// Signal in dBm, when the driver reports it in mBm.
	Signal int

	// Load and RSN are zero when the elements are absent or malformed.
	Load BSSLoad
	RSN  RSNInfo
}

// A BSSStatus is the relationship of the local interface with a BSS.
type BSSStatus uint32

// BSS status values. The kernel omits the status for any BSS the interface
// is not attached to; that case is BSSStatusNotAssociated.
const (
	BSSStatusAuthenticated BSSStatus = iota
	BSSStatusAssociated
	BSSStatusIBSSJoined
	BSSStatusNotAssociated BSSStatus = 1<<32 - 1
)

// String implements fmt.Stringer.
func (s BSSStatus) String() string {
	switch s {
	case BSSStatusAuthenticated:
		return "authenticated"
	case BSSStatusAssociated:
		return "associated"
	case BSSStatusIBSSJoined:
		return "IBSS joined"
	case BSSStatusNotAssociated:
		return "unassociated"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// A Survey is the channel usage reported by an interface for one frequency.
type Survey struct {
	// The interface the survey was read from.
	InterfaceIndex int

	Frequency int

	// Noise floor in dBm.
	Noise int

	// Radio-on time for the channel, split by activity.
	ChannelTime        time.Duration
	ChannelTimeBusy    time.Duration
	ChannelTimeExtBusy time.Duration
	ChannelTimeBssRx   time.Duration
	ChannelTimeRx      time.Duration
	ChannelTimeTx      time.Duration
	ChannelTimeScan    time.Duration

	// InUse marks the channel the interface is operating on.
	InUse bool
}

// A PHY is a wireless device assembled from the messages of a split wiphy
// dump.
type PHY struct {
	Index int
	Name  string

	SupportedIftypes []InterfaceType
	SoftwareIftypes  []InterfaceType

	// The raw band records, merged across a split dump.
	Bands []WiphyBand

	// BandAttributes interprets Bands, in the same order.
	BandAttributes []BandAttributes

	InterfaceCombinations []InterfaceCombination

	// The commands the driver implements.
	SupportedCommands []Command

	// The cipher suites the device supports.
	CipherSuites []CipherSuite

	// Feature flags and extended feature flags of the driver.
	Features    FeatureFlags
	ExtFeatures ExtFeatures

	// Extra holds top-level attributes with no decoder.
	Extra []Unknown
}

// BandAttributes is the interpreted form of a WiphyBand.
type BandAttributes struct {
	Band Band

	// Nil when the band carries no HT or VHT MCS set.
	HTCapabilities  *HTCapabilities
	VHTCapabilities *VHTCapabilities

	// MinRxAMPDUSpacing comes from the HT A-MPDU density.
	MinRxAMPDUSpacing time.Duration

	FrequencyAttributes []FrequencyAttrs
	BitrateAttributes   []BitrateAttrs
}

// FrequencyAttrs describes one channel of a band.
type FrequencyAttrs struct {
	// Frequency in MHz.
	Frequency int

	// Regulatory restrictions on the channel. NoIR forbids initiating
	// radiation.
	Disabled       bool
	NoIR           bool
	RadarDetection bool

	// MaxTxPower in dBm.
	MaxTxPower float32
}

// BitrateAttrs describes one legacy rate of a band.
type BitrateAttrs struct {
	// Bitrate in Mbit/s.
	Bitrate float32

	// ShortPreamble is only reported for 2.4 GHz rates.
	ShortPreamble bool
}

// A RegulatoryDomain is a set of regulatory rules in force for a country.
type RegulatoryDomain struct {
	// Alpha2 is the ISO 3166 country code, or "00" for the world domain.
	Alpha2 string

	// DFSRegion selects the radar detection rules.
	DFSRegion DFSDomain

	// PHY is the device a self-managed domain applies to, or -1 for the
	// global domain.
	PHY int

	// Rules are the frequency rules of the domain.
	Rules []RegulatoryRule
}

// FrequencyToChannel maps a center frequency in MHz to its channel number,
// following ieee80211_freq_khz_to_channel. It returns 0 for frequencies
// outside every band.
func FrequencyToChannel(freq int) int {
	switch {
	case freq < 1000:
		return 0
	case freq == 2484:
		return 14
	case freq < 2484:
		return (freq - 2407) / 5
	case freq >= 4910 && freq <= 4980:
		return (freq - 4000) / 5
	case freq < 5925:
		return (freq - 5000) / 5
	case freq == 5935:
		// 6GHz channel 2 sits below the regular channel raster.
		return 2
	case freq <= 45000:
		return (freq - 5950) / 5
	case freq >= 58320 && freq <= 70200:
		return (freq - 56160) / 2160
	default:
		return 0
	}
}

// ChannelToFrequency maps a channel number within band to its center
// frequency in MHz, or 0 if the channel does not exist.
func ChannelToFrequency(channel int, band Band) int {
	if channel <= 0 {
		return 0
	}

	switch band {
	case Band2GHz:
		if channel == 14 {
			return 2484
		} else if channel < 14 {
			return 2407 + channel*5
		}
	case Band5GHz:
		if channel >= 182 && channel <= 196 {
			return 4000 + channel*5
		}
		return 5000 + channel*5
	case Band6GHz:
		if channel == 2 {
			return 5935
		}
		if channel <= 233 {
			return 5950 + channel*5
		}
	case Band60GHz:
		if channel < 7 {
			return 56160 + channel*2160
		}
	}
	return 0
}
