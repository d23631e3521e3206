package wifi

import (
	"fmt"
	"net"
)

// A HardwareAddr is a fixed-size 802.11 hardware address.
type HardwareAddr [6]byte

// ParseHardwareAddr converts a net.HardwareAddr into a HardwareAddr. It
// returns ErrWrongLength if addr is not 6 bytes.
func ParseHardwareAddr(addr net.HardwareAddr) (HardwareAddr, error) {
	return decodeMAC(addr)
}

// String returns the colon-separated hexadecimal form of a.
func (a HardwareAddr) String() string { return net.HardwareAddr(a[:]).String() }

// A ChannelType is the legacy HT channel type of a channel.
type ChannelType uint32

// Possible ChannelType values.
const (
	ChannelTypeNoHT ChannelType = iota
	ChannelTypeHT20
	ChannelTypeHT40Minus
	ChannelTypeHT40Plus
)

// String returns the string representation of a ChannelType.
func (t ChannelType) String() string {
	switch t {
	case ChannelTypeNoHT:
		return "no HT"
	case ChannelTypeHT20:
		return "HT20"
	case ChannelTypeHT40Minus:
		return "HT40-"
	case ChannelTypeHT40Plus:
		return "HT40+"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}

// A ChannelWidth is the width of a channel.
type ChannelWidth uint32

// Possible ChannelWidth values, in nl80211 order.
const (
	ChannelWidth20NoHT ChannelWidth = iota
	ChannelWidth20
	ChannelWidth40
	ChannelWidth80
	ChannelWidth80P80
	ChannelWidth160
	ChannelWidth5
	ChannelWidth10
	ChannelWidth1
	ChannelWidth2
	ChannelWidth4
	ChannelWidth8
	ChannelWidth16
	ChannelWidth320
)

// String returns the string representation of a ChannelWidth.
func (w ChannelWidth) String() string {
	switch w {
	case ChannelWidth20NoHT:
		return "20 MHz (no HT)"
	case ChannelWidth80P80:
		return "80+80 MHz"
	}

	if mhz := w.MHz(); mhz != 0 {
		return fmt.Sprintf("%d MHz", mhz)
	}

	return fmt.Sprintf("unknown(%d)", w)
}

// MHz returns the total width of w in MHz, or 0 if w is unknown.
func (w ChannelWidth) MHz() int {
	switch w {
	case ChannelWidth20NoHT, ChannelWidth20:
		return 20
	case ChannelWidth40:
		return 40
	case ChannelWidth80:
		return 80
	case ChannelWidth80P80, ChannelWidth160:
		return 160
	case ChannelWidth5:
		return 5
	case ChannelWidth10:
		return 10
	case ChannelWidth1:
		return 1
	case ChannelWidth2:
		return 2
	case ChannelWidth4:
		return 4
	case ChannelWidth8:
		return 8
	case ChannelWidth16:
		return 16
	case ChannelWidth320:
		return 320
	default:
		return 0
	}
}

// A Band is a radio frequency band.
type Band uint32

// Constants representing the standard WiFi frequency bands.
const (
	Band2GHz Band = iota
	Band5GHz
	Band60GHz
	Band6GHz
	BandS1GHz
	BandLC
)

// String returns the string representation of a Band.
func (b Band) String() string {
	switch b {
	case Band2GHz:
		return "2.4GHz"
	case Band5GHz:
		return "5GHz"
	case Band60GHz:
		return "60GHz"
	case Band6GHz:
		return "6GHz"
	case BandS1GHz:
		return "sub-1GHz"
	case BandLC:
		return "light communication"
	default:
		return fmt.Sprintf("unknown(%d)", b)
	}
}

// A RegulatoryDomainType describes where a regulatory domain came from.
type RegulatoryDomainType uint8

// Possible RegulatoryDomainType values.
const (
	RegulatoryDomainCountry RegulatoryDomainType = iota
	RegulatoryDomainWorld
	RegulatoryDomainCustomWorld
	RegulatoryDomainIntersection
)

// String returns the string representation of a RegulatoryDomainType.
func (t RegulatoryDomainType) String() string {
	switch t {
	case RegulatoryDomainCountry:
		return "country"
	case RegulatoryDomainWorld:
		return "world"
	case RegulatoryDomainCustomWorld:
		return "custom world"
	case RegulatoryDomainIntersection:
		return "intersection"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}

// A RegulatoryInitiator identifies who requested a regulatory domain change.
type RegulatoryInitiator uint8

// Possible RegulatoryInitiator values.
const (
	RegulatoryInitiatorCore RegulatoryInitiator = iota
	RegulatoryInitiatorUser
	RegulatoryInitiatorDriver
	RegulatoryInitiatorCountryIE
)

// String returns the string representation of a RegulatoryInitiator.
func (i RegulatoryInitiator) String() string {
	switch i {
	case RegulatoryInitiatorCore:
		return "core"
	case RegulatoryInitiatorUser:
		return "user"
	case RegulatoryInitiatorDriver:
		return "driver"
	case RegulatoryInitiatorCountryIE:
		return "country IE"
	default:
		return fmt.Sprintf("unknown(%d)", i)
	}
}

// A DFSDomain is the dynamic frequency selection region of a regulatory
// domain.
type DFSDomain uint8

// Possible DFSDomain values.
const (
	DFSUnset DFSDomain = iota
	DFSFCC
	DFSETSI
	DFSJP
	DFSCN
)

// String returns the string representation of a DFSDomain.
func (d DFSDomain) String() string {
	switch d {
	case DFSUnset:
		return "unset"
	case DFSFCC:
		return "FCC"
	case DFSETSI:
		return "ETSI"
	case DFSJP:
		return "JP"
	case DFSCN:
		return "CN"
	default:
		return fmt.Sprintf("unknown(%d)", d)
	}
}

// A PowerSaveState is the power save mode of an interface.
type PowerSaveState uint32

// Possible PowerSaveState values.
const (
	PowerSaveDisabled PowerSaveState = iota
	PowerSaveEnabled
)

// An AuthAlgorithm is an 802.11 authentication algorithm.
type AuthAlgorithm uint32

// Possible AuthAlgorithm values.
const (
	AuthOpenSystem AuthAlgorithm = iota
	AuthSharedKey
	AuthFT
	AuthNetworkEAP
	AuthSAE
	AuthFILSSK
	AuthFILSSKPFS
	AuthFILSPK
	AuthAutomatic
)

// String returns the string representation of an AuthAlgorithm.
func (a AuthAlgorithm) String() string {
	switch a {
	case AuthOpenSystem:
		return "open system"
	case AuthSharedKey:
		return "shared key"
	case AuthFT:
		return "fast BSS transition"
	case AuthNetworkEAP:
		return "network EAP"
	case AuthSAE:
		return "SAE"
	case AuthFILSSK:
		return "FILS shared key"
	case AuthFILSSKPFS:
		return "FILS shared key with PFS"
	case AuthFILSPK:
		return "FILS public key"
	case AuthAutomatic:
		return "automatic"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// WPA protocol versions, combined as a bit mask in a WPAVersions attribute.
const (
	WPAVersion1 WPAVersions = 1 << 0
	WPAVersion2 WPAVersions = 1 << 1
	WPAVersion3 WPAVersions = 1 << 2
)

// A CipherSuite is an IEEE 802.11 cipher suite selector: an OUI in the upper
// 24 bits and a suite type in the lower 8 bits.
type CipherSuite uint32

// Possible CipherSuite values.
const (
	CipherUseGroup   CipherSuite = 0x000fac00
	CipherWEP40      CipherSuite = 0x000fac01
	CipherTKIP       CipherSuite = 0x000fac02
	CipherCCMP       CipherSuite = 0x000fac04
	CipherWEP104     CipherSuite = 0x000fac05
	CipherAESCMAC    CipherSuite = 0x000fac06
	CipherGCMP       CipherSuite = 0x000fac08
	CipherGCMP256    CipherSuite = 0x000fac09
	CipherCCMP256    CipherSuite = 0x000fac0a
	CipherBIPGMAC128 CipherSuite = 0x000fac0b
	CipherBIPGMAC256 CipherSuite = 0x000fac0c
	CipherBIPCMAC256 CipherSuite = 0x000fac0d
	CipherSMS4       CipherSuite = 0x00147201
)

// String returns the string representation of a CipherSuite.
func (c CipherSuite) String() string {
	switch c {
	case CipherUseGroup:
		return "use group"
	case CipherWEP40:
		return "WEP-40"
	case CipherTKIP:
		return "TKIP"
	case CipherCCMP:
		return "CCMP-128"
	case CipherWEP104:
		return "WEP-104"
	case CipherAESCMAC:
		return "BIP-CMAC-128"
	case CipherGCMP:
		return "GCMP-128"
	case CipherGCMP256:
		return "GCMP-256"
	case CipherCCMP256:
		return "CCMP-256"
	case CipherBIPGMAC128:
		return "BIP-GMAC-128"
	case CipherBIPGMAC256:
		return "BIP-GMAC-256"
	case CipherBIPCMAC256:
		return "BIP-CMAC-256"
	case CipherSMS4:
		return "SMS4"
	default:
		return fmt.Sprintf("%06x-%d", uint32(c)>>8, uint8(c))
	}
}

// An AKMSuite is an IEEE 802.11 authentication and key management suite
// selector.
type AKMSuite uint32

// Possible AKMSuite values.
const (
	AKM8021X       AKMSuite = 0x000fac01
	AKMPSK         AKMSuite = 0x000fac02
	AKMFT8021X     AKMSuite = 0x000fac03
	AKMFTPSK       AKMSuite = 0x000fac04
	AKM8021XSHA256 AKMSuite = 0x000fac05
	AKMPSKSHA256   AKMSuite = 0x000fac06
	AKMSAE         AKMSuite = 0x000fac08
	AKMFTSAE       AKMSuite = 0x000fac09
	AKMOWE         AKMSuite = 0x000fac12
)

// String returns the string representation of an AKMSuite.
func (a AKMSuite) String() string {
	switch a {
	case AKM8021X:
		return "802.1X"
	case AKMPSK:
		return "PSK"
	case AKMFT8021X:
		return "FT/802.1X"
	case AKMFTPSK:
		return "FT/PSK"
	case AKM8021XSHA256:
		return "802.1X/SHA-256"
	case AKMPSKSHA256:
		return "PSK/SHA-256"
	case AKMSAE:
		return "SAE"
	case AKMFTSAE:
		return "FT/SAE"
	case AKMOWE:
		return "OWE"
	default:
		return fmt.Sprintf("%06x-%d", uint32(a)>>8, uint8(a))
	}
}
