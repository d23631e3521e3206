package wifi

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/nlwifi/wifi/internal/nl80211"
)

// Lengths of the fixed-size capability blocks.
const (
	htCapabilityLen     = 26
	vhtCapabilityLen    = 12
	heMACCapabilityLen  = 6
	hePHYCapabilityLen  = 11
	ehtMACCapabilityLen = 2
	ehtPHYCapabilityLen = 9
)

// An HTCapabilityBlock is the 802.11n HT Capabilities element body
// (802.11-2020, 9.4.2.55). Multi-byte fields are little-endian.
type HTCapabilityBlock [htCapabilityLen]byte

// CapInfo returns the HT Capability Information field.
func (b HTCapabilityBlock) CapInfo() uint16 { return binary.LittleEndian.Uint16(b[0:2]) }

// AMPDUParams returns the A-MPDU Parameters field.
func (b HTCapabilityBlock) AMPDUParams() uint8 { return b[2] }

// MCSSet returns the Supported MCS Set field.
func (b HTCapabilityBlock) MCSSet() [16]byte {
	var mcs [16]byte
	copy(mcs[:], b[3:19])
	return mcs
}

// ExtendedCapInfo returns the HT Extended Capabilities field.
func (b HTCapabilityBlock) ExtendedCapInfo() uint16 { return binary.LittleEndian.Uint16(b[19:21]) }

// TxBFCapInfo returns the Transmit Beamforming Capabilities field.
func (b HTCapabilityBlock) TxBFCapInfo() uint32 { return binary.LittleEndian.Uint32(b[21:25]) }

// ASELCapInfo returns the ASEL Capability field.
func (b HTCapabilityBlock) ASELCapInfo() uint8 { return b[25] }

// MinRxAMPDUSpacing returns the minimum MPDU start spacing encoded in the
// A-MPDU Parameters field.
func (b HTCapabilityBlock) MinRxAMPDUSpacing() time.Duration {
	return ampduSpacing((b[2] >> 2) & 0x7)
}

// Capabilities interprets the block.
func (b HTCapabilityBlock) Capabilities() *HTCapabilities {
	c := b.CapInfo()
	has := func(bit uint) bool { return c&(1<<bit) != 0 }

	return &HTCapabilities{
		RxLDPC:             has(0),
		CW40:               has(1),
		HTGreenfield:       has(4),
		SGI20:              has(5),
		SGI40:              has(6),
		TxSTBC:             has(7),
		RxSTBCStreams:      uint8(c>>8) & 0x3,
		HTDelayedBlockAck:  has(10),
		LongMaxAMSDULength: has(11),
		DSSSCCKHT40:        has(12),
		FortyMhzIntolerant: has(14),
		LSIGTxOPProtection: has(15),
		MaxRxAMPDULength:   1<<(13+int(b[2]&0x3)) - 1,
		SupportedMCS:       b.MCSSet(),
	}
}

// ampduSpacing decodes the 3-bit Minimum MPDU Start Spacing subfield.
func ampduSpacing(v uint8) time.Duration {
	if v == 0 {
		return 0
	}

	// 1 is 1/4 usec, doubling for each step.
	return time.Microsecond / 8 << v
}

// A VHTCapabilityBlock is the 802.11ac VHT Capabilities element body
// (802.11-2020, 9.4.2.157). Multi-byte fields are little-endian.
type VHTCapabilityBlock [vhtCapabilityLen]byte

// CapInfo returns the VHT Capabilities Information field.
func (b VHTCapabilityBlock) CapInfo() uint32 { return binary.LittleEndian.Uint32(b[0:4]) }

// RxMCSMap returns the Rx VHT-MCS Map subfield.
func (b VHTCapabilityBlock) RxMCSMap() uint16 { return binary.LittleEndian.Uint16(b[4:6]) }

// TxMCSMap returns the Tx VHT-MCS Map subfield.
func (b VHTCapabilityBlock) TxMCSMap() uint16 { return binary.LittleEndian.Uint16(b[8:10]) }

// Capabilities interprets the block.
func (b VHTCapabilityBlock) Capabilities() *VHTCapabilities {
	c := b.CapInfo()
	has := func(bit uint) bool { return c&(1<<bit) != 0 }
	bits := func(shift, mask uint32) int { return int((c >> shift) & mask) }

	vc := &VHTCapabilities{
		RXLDPC:           has(4),
		ShortGI80:        has(5),
		ShortGI160:       has(6),
		TXSTBC:           has(7),
		RXSTBC:           bits(8, 0x7),
		SuBeamFormer:     has(11),
		SuBeamFormee:     has(12),
		MuBeamformer:     has(19),
		MuBeamformee:     has(20),
		VTHTXOPPS:        has(21),
		HTCVHT:           has(22),
		MaxAMPDU:         1<<(13+bits(23, 0x7)) - 1,
		VHTLinkAdapt:     bits(26, 0x3),
		RXAntennaPattern: has(28),
		TXAntennaPattern: has(29),
		ExtendedNSSBW:    bits(30, 0x3),
	}
	copy(vc.SupportedMCS[:], b[4:12])

	switch bits(0, 0x3) {
	case 0:
		vc.MaxMPDULength = 3895
	case 1:
		vc.MaxMPDULength = 7991
	case 2:
		vc.MaxMPDULength = 11454
	}

	switch bits(2, 0x3) {
	case 1:
		vc.VHT160 = true
	case 2:
		vc.VHT160 = true
		vc.VHT8080 = true
	}

	if vc.SuBeamFormee {
		vc.BFAntenna = bits(13, 0x7) + 1
	}
	if vc.SuBeamFormer {
		vc.SoundingDimension = bits(16, 0x7) + 1
	}

	return vc
}

// HTCapabilities represents 802.11n (High Throughput) capabilities.  This group
// of attributes is specific to each band of frequencies.  Failure to support
// any given attribute may be due to lack support in the driver or the firmware,
// not only in the hardware.  Some of them may also be overridden during station
// association.
//
// The fields represent those in the HT Capabilities element (802.11-2016,
// 9.4.2.56).  Notably missing is information about the device's Spatial
// Multiplexing Power Save (SMPS) capability.  SMPS support must be determined
// by checking FeatureStaticSMPS and FeatureDynamicSMPS in a PHY's FeatureFlags.
type HTCapabilities struct {
	// Device supports Low Density Parity Check codes.
	RxLDPC bool

	// Device supports 40MHz channels (in addition to 20MHz channels).
	CW40 bool

	// Device supports HT Greenfield (802.11n-only) mode, in which a/b/g
	// frames will be ignored.
	HTGreenfield bool

	// Device supports short guard intervals in 20MHz channels.
	SGI20 bool

	// Device supports short guard intervals in 40MHz channels.
	SGI40 bool

	// Device supports Space-Time Block Coding transmission.
	TxSTBC bool

	// Number of STBC receive streams supported by the device.  Valid values
	// are 0-3.
	RxSTBCStreams uint8

	// Device supports delayed Block Ack frames when acknowledging an
	// A-MPDU.
	HTDelayedBlockAck bool

	// Device supports long (7935 bytes) maximum A-MSDU length, compared to
	// standard 3839 bytes.
	LongMaxAMSDULength bool

	// Device supports DSSS/CCK in 40MHz channels.
	DSSSCCKHT40 bool

	// (2.4GHz) Band cannot tolerate 40MHz channels because someone has
	// requested it support 20MHz channels.
	FortyMhzIntolerant bool

	// Device supports L-SIG (non-HT) Transmit Opportunity protection.
	LSIGTxOPProtection bool

	// Maximum receivable A-MPDU (Aggregated MAC Protocol Data Unit) frame
	// size.
	MaxRxAMPDULength int

	// Supported MCS Set field, uninterpreted.
	SupportedMCS [16]byte
}

// VHTCapabilities represents 802.11ac (Very High Throughput) capabilities.
//
// The fields represent those in the VHT Capabilities element (802.11-2020,
// 9.4.2.157).
type VHTCapabilities struct {
	// Maximum MPDU length supported by the device.
	MaxMPDULength int

	// Device supports 160MHz channel width.
	VHT160 bool

	// Device supports 80+80MHz channel width (non-contiguous 160MHz) along with 160MHz channel.
	VHT8080 bool

	// Device supports receiving Low Density Parity Check codes.
	RXLDPC bool

	// Device supports short guard intervals in 80MHz channels.
	ShortGI80 bool

	// Device supports short guard intervals in 160MHz and 80+80MHz channels.
	ShortGI160 bool

	// Device supports transmission of at least 2x1 Space-Time Block Coding transmission.
	TXSTBC bool

	// Number of STBC receive streams supported by the device. Valid values are 0-4.
	RXSTBC int

	// Device supports SU (Single User) Beamforming as a transmitter.
	SuBeamFormer bool

	// Device supports SU (Single User) Beamforming as a receiver.
	SuBeamFormee bool

	// Number of sounding antennas supported by the device for SU Beamforming transmission.
	BFAntenna int

	// Maximum sounding dimensions supported by the device for SU Beamforming.
	SoundingDimension int

	// Device supports MU (Multi-User) Beamforming as a transmitter.
	MuBeamformer bool

	// Device supports MU (Multi-User) Beamforming as a receiver.
	MuBeamformee bool

	// Device supports VHT TXOP power save mode.
	VTHTXOPPS bool

	// Device supports HT Control field when operating in VHT mode.
	HTCVHT bool

	// Maximum A-MPDU (Aggregated MAC Protocol Data Unit) frame size supported by the device.
	MaxAMPDU int

	// Device supports VHT Link Adaptation capabilities. Valid values
	// specify the type of link adaptation supported (e.g., no feedback,
	// unsolicited feedback, or both).
	VHTLinkAdapt int

	// Device supports receive antenna pattern consistency.
	RXAntennaPattern bool

	// Device supports transmit antenna pattern consistency.
	TXAntennaPattern bool

	// Indicates whether the STA is capable of interpreting the Extended NSS BW
	// Support subfield of the VHT Capabilities Information field.
	ExtendedNSSBW int

	// Supported VHT-MCS and NSS Set field, uninterpreted.
	SupportedMCS [8]byte
}

// HE and EHT capability blocks carried within band interface type data.
type (
	HEMACCapability  [heMACCapabilityLen]byte
	HEPHYCapability  [hePHYCapabilityLen]byte
	EHTMACCapability [ehtMACCapabilityLen]byte
	EHTPHYCapability [ehtPHYCapabilityLen]byte
)

// Has reports whether the numbered capability bit is set.
func (b HEMACCapability) Has(bit uint) bool { return bitSet(b[:], bit) }

// Has reports whether the numbered capability bit is set.
func (b HEPHYCapability) Has(bit uint) bool { return bitSet(b[:], bit) }

// Has reports whether the numbered capability bit is set.
func (b EHTMACCapability) Has(bit uint) bool { return bitSet(b[:], bit) }

// Has reports whether the numbered capability bit is set.
func (b EHTPHYCapability) Has(bit uint) bool { return bitSet(b[:], bit) }

// An ExtendedCapability is the body of an 802.11 Extended Capabilities
// element. Its length varies with the capabilities advertised.
type ExtendedCapability []byte

// Has reports whether the numbered capability bit is set.
func (e ExtendedCapability) Has(bit uint) bool { return bitSet(e, bit) }

// bitSet reports whether bit n of the little-endian bit vector b is set. Bits
// beyond the end of b are clear.
func bitSet(b []byte, n uint) bool {
	i := int(n / 8)
	if i >= len(b) {
		return false
	}

	return b[i]&(1<<(n%8)) != 0
}

// setBit returns b with bit n set, growing b if necessary.
func setBit(b []byte, n uint) []byte {
	i := int(n / 8)
	if i >= len(b) {
		b = append(b, make([]byte, i-len(b)+1)...)
	}

	b[i] |= 1 << (n % 8)
	return b
}

// decodeFixed copies b into dst, which must be exactly as long as b.
func decodeFixed(dst, b []byte) error {
	if len(b) != len(dst) {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrWrongLength, len(dst), len(b))
	}

	copy(dst, b)
	return nil
}

// Capability and mask attributes. Each pair shares one block type and so one
// wire codec.
type (
	HTCapability      struct{ HTCapabilityBlock }
	HTCapabilityMask  struct{ HTCapabilityBlock }
	VHTCapability     struct{ VHTCapabilityBlock }
	VHTCapabilityMask struct{ VHTCapabilityBlock }
	ExtCapa           struct{ ExtendedCapability }
	ExtCapaMask       struct{ ExtendedCapability }
)

func (HTCapability) Kind() uint16        { return nl80211.AttrHtCapability }
func (a HTCapability) field() field      { return bytesField(a.HTCapabilityBlock[:]) }
func (HTCapabilityMask) Kind() uint16    { return nl80211.AttrHtCapabilityMask }
func (a HTCapabilityMask) field() field  { return bytesField(a.HTCapabilityBlock[:]) }
func (VHTCapability) Kind() uint16       { return nl80211.AttrVhtCapability }
func (a VHTCapability) field() field     { return bytesField(a.VHTCapabilityBlock[:]) }
func (VHTCapabilityMask) Kind() uint16   { return nl80211.AttrVhtCapabilityMask }
func (a VHTCapabilityMask) field() field { return bytesField(a.VHTCapabilityBlock[:]) }
func (ExtCapa) Kind() uint16             { return nl80211.AttrExtCapa }
func (a ExtCapa) field() field           { return bytesField(a.ExtendedCapability) }
func (ExtCapaMask) Kind() uint16         { return nl80211.AttrExtCapaMask }
func (a ExtCapaMask) field() field       { return bytesField(a.ExtendedCapability) }

func decodeHTCapabilityBlock(b []byte) (HTCapabilityBlock, error) {
	var blk HTCapabilityBlock
	err := decodeFixed(blk[:], b)
	return blk, err
}

func decodeVHTCapabilityBlock(b []byte) (VHTCapabilityBlock, error) {
	var blk VHTCapabilityBlock
	err := decodeFixed(blk[:], b)
	return blk, err
}

func decodeHTCapability(b []byte) (Attribute, error) {
	blk, err := decodeHTCapabilityBlock(b)
	return HTCapability{blk}, err
}

func decodeHTCapabilityMask(b []byte) (Attribute, error) {
	blk, err := decodeHTCapabilityBlock(b)
	return HTCapabilityMask{blk}, err
}

func decodeVHTCapability(b []byte) (Attribute, error) {
	blk, err := decodeVHTCapabilityBlock(b)
	return VHTCapability{blk}, err
}

func decodeVHTCapabilityMask(b []byte) (Attribute, error) {
	blk, err := decodeVHTCapabilityBlock(b)
	return VHTCapabilityMask{blk}, err
}

func decodeExtCapa(b []byte) (Attribute, error) {
	return ExtCapa{ExtendedCapability(cloneBytes(b))}, nil
}

func decodeExtCapaMask(b []byte) (Attribute, error) {
	return ExtCapaMask{ExtendedCapability(cloneBytes(b))}, nil
}

// ExtFeatures is the extended feature bit vector of a wiphy. It grows as the
// kernel gains features, so any length is accepted.
type ExtFeatures []byte

func (ExtFeatures) Kind() uint16   { return nl80211.AttrExtFeatures }
func (a ExtFeatures) field() field { return bytesField(a) }

// Has reports whether the feature is supported.
func (a ExtFeatures) Has(f ExtFeature) bool { return bitSet(a, uint(f)) }

// Set returns a copy of a with the feature set.
func (a ExtFeatures) Set(f ExtFeature) ExtFeatures {
	return setBit(append(ExtFeatures(nil), a...), uint(f))
}

// List returns the supported features in ascending order.
func (a ExtFeatures) List() []ExtFeature {
	var fs []ExtFeature
	for i := 0; i < len(a)*8; i++ {
		if a.Has(ExtFeature(i)) {
			fs = append(fs, ExtFeature(i))
		}
	}

	return fs
}

// An ExtFeature is an index into an ExtFeatures bit vector.
type ExtFeature uint

// Possible ExtFeature values.
const (
	ExtFeatureVHTIBSS ExtFeature = iota
	ExtFeatureRRM
	ExtFeatureMUMIMOAirSniffer
	ExtFeatureScanStartTime
	ExtFeatureBSSParentTSF
	ExtFeatureSetScanDwell
	ExtFeatureBeaconRateLegacy
	ExtFeatureBeaconRateHT
	ExtFeatureBeaconRateVHT
	ExtFeatureFILSSTA
	ExtFeatureMgmtTxRandomTA
	ExtFeatureMgmtTxRandomTAConnected
	ExtFeatureSchedScanRelativeRSSI
	ExtFeatureCQMRSSIList
	ExtFeatureFILSSKOffload
	ExtFeature4WayHandshakeSTAPSK
	ExtFeature4WayHandshakeSTA1X
	ExtFeatureFILSMaxChannelTime
	ExtFeatureAcceptBcastProbeResp
	ExtFeatureOCEProbeReqHighTxRate
	ExtFeatureOCEProbeReqDeferralSuppression
	ExtFeatureMFPOptional
	ExtFeatureLowSpanScan
	ExtFeatureLowPowerScan
	ExtFeatureHighAccuracyScan
	ExtFeatureDFSOffload
	ExtFeatureControlPortOverNL80211
	ExtFeatureAckSignalSupport
	ExtFeatureTXQs
	ExtFeatureScanRandomSN
	ExtFeatureScanMinPreqContent
	ExtFeatureCanReplacePTK0
	ExtFeatureEnableFTMResponder
	ExtFeatureAirtimeFairness
	ExtFeatureAPPMKSACaching
	ExtFeatureSchedScanBandSpecificRSSIThold
	ExtFeatureExtKeyID
	ExtFeatureSTATxPwr
	ExtFeatureSAEOffload
	ExtFeatureVLANOffload
	ExtFeatureAQL
	ExtFeatureBeaconProtection
	ExtFeatureControlPortNoPreauth
	ExtFeatureProtectedTWT
	ExtFeatureDelIBSSSTA
	ExtFeatureMulticastRegistrations
	ExtFeatureBeaconProtectionClient
	ExtFeatureScanFreqKHz
	ExtFeatureControlPortOverNL80211TxStatus
	ExtFeatureOperatingChannelValidation
	ExtFeature4WayHandshakeAPPSK
	ExtFeatureSAEOffloadAP
	ExtFeatureFILSDiscovery
	ExtFeatureUnsolBcastProbeResp
	ExtFeatureBeaconRateHE
	ExtFeatureSecureLTF
	ExtFeatureSecureRTT
	ExtFeatureProtRangeNegoAndMeasure
	ExtFeatureBSSColor
	ExtFeatureFILSCryptoOffload
	ExtFeatureRadarBackground
	ExtFeaturePoweredAddrChange
	ExtFeaturePunct
	ExtFeatureSecureNAN
	ExtFeatureAuthAndDeauthRandomTA
	ExtFeatureOWEOffload
	ExtFeatureOWEOffloadAP
	ExtFeatureDFSConcurrent
	ExtFeatureSPPAMSDUSupport
)

var extFeatureNames = [...]string{
	ExtFeatureVHTIBSS:                        "VHT_IBSS",
	ExtFeatureRRM:                            "RRM",
	ExtFeatureMUMIMOAirSniffer:               "MU_MIMO_AIR_SNIFFER",
	ExtFeatureScanStartTime:                  "SCAN_START_TIME",
	ExtFeatureBSSParentTSF:                   "BSS_PARENT_TSF",
	ExtFeatureSetScanDwell:                   "SET_SCAN_DWELL",
	ExtFeatureBeaconRateLegacy:               "BEACON_RATE_LEGACY",
	ExtFeatureBeaconRateHT:                   "BEACON_RATE_HT",
	ExtFeatureBeaconRateVHT:                  "BEACON_RATE_VHT",
	ExtFeatureFILSSTA:                        "FILS_STA",
	ExtFeatureMgmtTxRandomTA:                 "MGMT_TX_RANDOM_TA",
	ExtFeatureMgmtTxRandomTAConnected:        "MGMT_TX_RANDOM_TA_CONNECTED",
	ExtFeatureSchedScanRelativeRSSI:          "SCHED_SCAN_RELATIVE_RSSI",
	ExtFeatureCQMRSSIList:                    "CQM_RSSI_LIST",
	ExtFeatureFILSSKOffload:                  "FILS_SK_OFFLOAD",
	ExtFeature4WayHandshakeSTAPSK:            "4WAY_HANDSHAKE_STA_PSK",
	ExtFeature4WayHandshakeSTA1X:             "4WAY_HANDSHAKE_STA_1X",
	ExtFeatureFILSMaxChannelTime:             "FILS_MAX_CHANNEL_TIME",
	ExtFeatureAcceptBcastProbeResp:           "ACCEPT_BCAST_PROBE_RESP",
	ExtFeatureOCEProbeReqHighTxRate:          "OCE_PROBE_REQ_HIGH_TX_RATE",
	ExtFeatureOCEProbeReqDeferralSuppression: "OCE_PROBE_REQ_DEFERRAL_SUPPRESSION",
	ExtFeatureMFPOptional:                    "MFP_OPTIONAL",
	ExtFeatureLowSpanScan:                    "LOW_SPAN_SCAN",
	ExtFeatureLowPowerScan:                   "LOW_POWER_SCAN",
	ExtFeatureHighAccuracyScan:               "HIGH_ACCURACY_SCAN",
	ExtFeatureDFSOffload:                     "DFS_OFFLOAD",
	ExtFeatureControlPortOverNL80211:         "CONTROL_PORT_OVER_NL80211",
	ExtFeatureAckSignalSupport:               "ACK_SIGNAL_SUPPORT",
	ExtFeatureTXQs:                           "TXQS",
	ExtFeatureScanRandomSN:                   "SCAN_RANDOM_SN",
	ExtFeatureScanMinPreqContent:             "SCAN_MIN_PREQ_CONTENT",
	ExtFeatureCanReplacePTK0:                 "CAN_REPLACE_PTK0",
	ExtFeatureEnableFTMResponder:             "ENABLE_FTM_RESPONDER",
	ExtFeatureAirtimeFairness:                "AIRTIME_FAIRNESS",
	ExtFeatureAPPMKSACaching:                 "AP_PMKSA_CACHING",
	ExtFeatureSchedScanBandSpecificRSSIThold: "SCHED_SCAN_BAND_SPECIFIC_RSSI_THOLD",
	ExtFeatureExtKeyID:                       "EXT_KEY_ID",
	ExtFeatureSTATxPwr:                       "STA_TX_PWR",
	ExtFeatureSAEOffload:                     "SAE_OFFLOAD",
	ExtFeatureVLANOffload:                    "VLAN_OFFLOAD",
	ExtFeatureAQL:                            "AQL",
	ExtFeatureBeaconProtection:               "BEACON_PROTECTION",
	ExtFeatureControlPortNoPreauth:           "CONTROL_PORT_NO_PREAUTH",
	ExtFeatureProtectedTWT:                   "PROTECTED_TWT",
	ExtFeatureDelIBSSSTA:                     "DEL_IBSS_STA",
	ExtFeatureMulticastRegistrations:         "MULTICAST_REGISTRATIONS",
	ExtFeatureBeaconProtectionClient:         "BEACON_PROTECTION_CLIENT",
	ExtFeatureScanFreqKHz:                    "SCAN_FREQ_KHZ",
	ExtFeatureControlPortOverNL80211TxStatus: "CONTROL_PORT_OVER_NL80211_TX_STATUS",
	ExtFeatureOperatingChannelValidation:     "OPERATING_CHANNEL_VALIDATION",
	ExtFeature4WayHandshakeAPPSK:             "4WAY_HANDSHAKE_AP_PSK",
	ExtFeatureSAEOffloadAP:                   "SAE_OFFLOAD_AP",
	ExtFeatureFILSDiscovery:                  "FILS_DISCOVERY",
	ExtFeatureUnsolBcastProbeResp:            "UNSOL_BCAST_PROBE_RESP",
	ExtFeatureBeaconRateHE:                   "BEACON_RATE_HE",
	ExtFeatureSecureLTF:                      "SECURE_LTF",
	ExtFeatureSecureRTT:                      "SECURE_RTT",
	ExtFeatureProtRangeNegoAndMeasure:        "PROT_RANGE_NEGO_AND_MEASURE",
	ExtFeatureBSSColor:                       "BSS_COLOR",
	ExtFeatureFILSCryptoOffload:              "FILS_CRYPTO_OFFLOAD",
	ExtFeatureRadarBackground:                "RADAR_BACKGROUND",
	ExtFeaturePoweredAddrChange:              "POWERED_ADDR_CHANGE",
	ExtFeaturePunct:                          "PUNCT",
	ExtFeatureSecureNAN:                      "SECURE_NAN",
	ExtFeatureAuthAndDeauthRandomTA:          "AUTH_AND_DEAUTH_RANDOM_TA",
	ExtFeatureOWEOffload:                     "OWE_OFFLOAD",
	ExtFeatureOWEOffloadAP:                   "OWE_OFFLOAD_AP",
	ExtFeatureDFSConcurrent:                  "DFS_CONCURRENT",
	ExtFeatureSPPAMSDUSupport:                "SPP_AMSDU_SUPPORT",
}

// String returns the kernel name of an ExtFeature.
func (f ExtFeature) String() string {
	if int(f) < len(extFeatureNames) {
		return extFeatureNames[f]
	}

	return fmt.Sprintf("unknown(%d)", f)
}

// FeatureFlags is the wiphy feature bit mask.
type FeatureFlags uint32

func (FeatureFlags) Kind() uint16   { return nl80211.AttrFeatureFlags }
func (a FeatureFlags) field() field { return u32Field(a) }

// Has reports whether the feature is supported.
func (a FeatureFlags) Has(f Feature) bool { return f < 32 && a&(1<<f) != 0 }

// A Feature is a bit position within FeatureFlags.
type Feature uint

// Possible Feature values. Bit 13 is reserved.
const (
	FeatureSKTxStatus Feature = iota
	FeatureHTIBSS
	FeatureInactivityTimer
	FeatureCellBaseRegHints
	FeatureP2PDeviceNeedsChannel
	FeatureSAE
	FeatureLowPriorityScan
	FeatureScanFlush
	FeatureAPScan
	FeatureVIFTxPower
	FeatureNeedOBSSScan
	FeatureP2PGOCTWin
	FeatureP2PGOOppPS
	_
	FeatureAdvertiseChanLimits
	FeatureFullAPClientState
	FeatureUserspaceMPM
	FeatureActiveMonitor
	FeatureAPModeChanWidthChange
	FeatureDSParamSetIEInProbes
	FeatureWFATPCIEInProbes
	FeatureQuiet
	FeatureTxPowerInsertion
	FeatureACKTOEstimation
	FeatureStaticSMPS
	FeatureDynamicSMPS
	FeatureSupportsWMMAdmission
	FeatureMACOnCreate
	FeatureTDLSChannelSwitch
	FeatureScanRandomMACAddr
	FeatureSchedScanRandomMACAddr
	FeatureNDRandomMACAddr
)

// Bands is the bit mask of bands supported by a wiphy, indexed by Band.
type Bands uint32

func (Bands) Kind() uint16   { return nl80211.AttrBands }
func (a Bands) field() field { return u32Field(a) }

// Has reports whether the band is set.
func (a Bands) Has(b Band) bool { return b < 32 && a&(1<<b) != 0 }

// List returns the bands set in ascending order.
func (a Bands) List() []Band {
	var bs []Band
	for b := Band(0); b < 32; b++ {
		if a.Has(b) {
			bs = append(bs, b)
		}
	}

	return bs
}
