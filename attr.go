package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// An Attribute is a single typed nl80211 attribute. Each first-class
// attribute is a distinct Go type; attributes this package does not model are
// carried as Unknown.
type Attribute interface {
	// Kind returns the nl80211 attribute kind.
	Kind() uint16

	// field returns the wire shape of the attribute's value.
	field() field
}

// ValueLen returns the length in bytes of the encoded value of a, excluding
// the attribute header and padding.
func ValueLen(a Attribute) int { return a.field().size() }

// EncodeValue writes exactly ValueLen(a) bytes of a's value into b. It panics
// if b is too short.
func EncodeValue(a Attribute, b []byte) {
	f := a.field()
	if n := f.size(); len(b) < n {
		panicf("wifi: buffer of %d bytes too short for %d byte value of attribute %d",
			len(b), n, a.Kind())
	}

	f.put(b)
}

// DecodeAttribute decodes the value b of an attribute with the given kind.
// Kinds this package does not model decode as Unknown and never fail.
func DecodeAttribute(kind uint16, b []byte) (Attribute, error) {
	fn, ok := decoders[kind]
	if !ok {
		return Unknown{Type: kind, Data: copyValue(b)}, nil
	}

	a, err := fn(b)
	if err != nil {
		return nil, annotate(err, kind, "", -1)
	}

	return a, nil
}

// An Unknown is an attribute of a kind which this package does not model. Its
// value is kept verbatim.
type Unknown struct {
	Type uint16
	Data []byte
}

// IsUnknown reports whether a is an Unknown attribute.
func IsUnknown(a Attribute) bool {
	_, ok := a.(Unknown)
	return ok
}

func (a Unknown) Kind() uint16 { return a.Type }
func (a Unknown) field() field { return bytesField(a.Data) }

// Attributes with 32-bit integer values.
type (
	Wiphy                      uint32
	IfIndex                    uint32
	Generation                 uint32
	WiphyFreq                  uint32
	WiphyFreqOffset            uint32
	CenterFreq1                uint32
	CenterFreq2                uint32
	WiphyTxPowerLevel          uint32
	WiphyFragThreshold         uint32
	WiphyRTSThreshold          uint32
	WiphyAntennaTx             uint32
	WiphyAntennaRx             uint32
	WiphyAntennaAvailTx        uint32
	WiphyAntennaAvailRx        uint32
	ProbeRespOffload           uint32
	MaxRemainOnChannelDuration uint32
	MaxNumSchedScanPlans       uint32
	MaxScanPlanInterval        uint32
	MaxScanPlanIterations      uint32
	SchedScanMaxReqs           uint32
	TXQLimit                   uint32
	TXQMemoryLimit             uint32
	TXQQuantum                 uint32
	WPAVersions                uint32
	BeaconInterval             uint32
	DTIMPeriod                 uint32
)

func (Wiphy) Kind() uint16                        { return nl80211.AttrWiphy }
func (a Wiphy) field() field                      { return u32Field(a) }
func (IfIndex) Kind() uint16                      { return nl80211.AttrIfindex }
func (a IfIndex) field() field                    { return u32Field(a) }
func (Generation) Kind() uint16                   { return nl80211.AttrGeneration }
func (a Generation) field() field                 { return u32Field(a) }
func (WiphyFreq) Kind() uint16                    { return nl80211.AttrWiphyFreq }
func (a WiphyFreq) field() field                  { return u32Field(a) }
func (WiphyFreqOffset) Kind() uint16              { return nl80211.AttrWiphyFreqOffset }
func (a WiphyFreqOffset) field() field            { return u32Field(a) }
func (CenterFreq1) Kind() uint16                  { return nl80211.AttrCenterFreq1 }
func (a CenterFreq1) field() field                { return u32Field(a) }
func (CenterFreq2) Kind() uint16                  { return nl80211.AttrCenterFreq2 }
func (a CenterFreq2) field() field                { return u32Field(a) }
func (WiphyTxPowerLevel) Kind() uint16            { return nl80211.AttrWiphyTxPowerLevel }
func (a WiphyTxPowerLevel) field() field          { return u32Field(a) }
func (WiphyFragThreshold) Kind() uint16           { return nl80211.AttrWiphyFragThreshold }
func (a WiphyFragThreshold) field() field         { return u32Field(a) }
func (WiphyRTSThreshold) Kind() uint16            { return nl80211.AttrWiphyRtsThreshold }
func (a WiphyRTSThreshold) field() field          { return u32Field(a) }
func (WiphyAntennaTx) Kind() uint16               { return nl80211.AttrWiphyAntennaTx }
func (a WiphyAntennaTx) field() field             { return u32Field(a) }
func (WiphyAntennaRx) Kind() uint16               { return nl80211.AttrWiphyAntennaRx }
func (a WiphyAntennaRx) field() field             { return u32Field(a) }
func (WiphyAntennaAvailTx) Kind() uint16          { return nl80211.AttrWiphyAntennaAvailTx }
func (a WiphyAntennaAvailTx) field() field        { return u32Field(a) }
func (WiphyAntennaAvailRx) Kind() uint16          { return nl80211.AttrWiphyAntennaAvailRx }
func (a WiphyAntennaAvailRx) field() field        { return u32Field(a) }
func (ProbeRespOffload) Kind() uint16             { return nl80211.AttrProbeRespOffload }
func (a ProbeRespOffload) field() field           { return u32Field(a) }
func (MaxRemainOnChannelDuration) Kind() uint16   { return nl80211.AttrMaxRemainOnChannelDuration }
func (a MaxRemainOnChannelDuration) field() field { return u32Field(a) }
func (MaxNumSchedScanPlans) Kind() uint16         { return nl80211.AttrMaxNumSchedScanPlans }
func (a MaxNumSchedScanPlans) field() field       { return u32Field(a) }
func (MaxScanPlanInterval) Kind() uint16          { return nl80211.AttrMaxScanPlanInterval }
func (a MaxScanPlanInterval) field() field        { return u32Field(a) }
func (MaxScanPlanIterations) Kind() uint16        { return nl80211.AttrMaxScanPlanIterations }
func (a MaxScanPlanIterations) field() field      { return u32Field(a) }
func (SchedScanMaxReqs) Kind() uint16             { return nl80211.AttrSchedScanMaxReqs }
func (a SchedScanMaxReqs) field() field           { return u32Field(a) }
func (TXQLimit) Kind() uint16                     { return nl80211.AttrTxqLimit }
func (a TXQLimit) field() field                   { return u32Field(a) }
func (TXQMemoryLimit) Kind() uint16               { return nl80211.AttrTxqMemoryLimit }
func (a TXQMemoryLimit) field() field             { return u32Field(a) }
func (TXQQuantum) Kind() uint16                   { return nl80211.AttrTxqQuantum }
func (a TXQQuantum) field() field                 { return u32Field(a) }
func (WPAVersions) Kind() uint16                  { return nl80211.AttrWpaVersions }
func (a WPAVersions) field() field                { return u32Field(a) }
func (BeaconInterval) Kind() uint16               { return nl80211.AttrBeaconInterval }
func (a BeaconInterval) field() field             { return u32Field(a) }
func (DTIMPeriod) Kind() uint16                   { return nl80211.AttrDtimPeriod }
func (a DTIMPeriod) field() field                 { return u32Field(a) }

// Attributes whose 32-bit values are enumerations.
type (
	IfType           InterfaceType
	WiphyChannelType ChannelType
	ChanWidth        ChannelWidth
	PSState          PowerSaveState
	AuthType         AuthAlgorithm
	CipherSuiteGroup CipherSuite
	HiddenSSID       uint32
)

// Possible HiddenSSID values.
const (
	HiddenSSIDNotInUse HiddenSSID = iota
	HiddenSSIDZeroLen
	HiddenSSIDZeroContents
)

func (IfType) Kind() uint16               { return nl80211.AttrIftype }
func (a IfType) field() field             { return u32Field(a) }
func (a IfType) String() string           { return InterfaceType(a).String() }
func (WiphyChannelType) Kind() uint16     { return nl80211.AttrWiphyChannelType }
func (a WiphyChannelType) field() field   { return u32Field(a) }
func (a WiphyChannelType) String() string { return ChannelType(a).String() }
func (ChanWidth) Kind() uint16            { return nl80211.AttrChannelWidth }
func (a ChanWidth) field() field          { return u32Field(a) }
func (a ChanWidth) String() string        { return ChannelWidth(a).String() }
func (PSState) Kind() uint16              { return nl80211.AttrPsState }
func (a PSState) field() field            { return u32Field(a) }
func (AuthType) Kind() uint16             { return nl80211.AttrAuthType }
func (a AuthType) field() field           { return u32Field(a) }
func (a AuthType) String() string         { return AuthAlgorithm(a).String() }
func (CipherSuiteGroup) Kind() uint16     { return nl80211.AttrCipherSuiteGroup }
func (a CipherSuiteGroup) field() field   { return u32Field(a) }
func (a CipherSuiteGroup) String() string { return CipherSuite(a).String() }
func (HiddenSSID) Kind() uint16           { return nl80211.AttrHiddenSsid }
func (a HiddenSSID) field() field         { return u32Field(a) }

// Attributes with 64-bit integer values.
type Wdev uint64

func (Wdev) Kind() uint16   { return nl80211.AttrWdev }
func (a Wdev) field() field { return u64Field(a) }

// Attributes with 16-bit integer values.
type (
	MaxScanIELen        uint16
	MaxSchedScanIELen   uint16
	EMLCapability       uint16
	MLDCapaAndOps       uint16
	MaxNumAKMSuites     uint16
	MaxHWTimestampPeers uint16
	FrameType           uint16
	ReasonCode          uint16
)

func (MaxScanIELen) Kind() uint16          { return nl80211.AttrMaxScanIeLen }
func (a MaxScanIELen) field() field        { return u16Field(a) }
func (MaxSchedScanIELen) Kind() uint16     { return nl80211.AttrMaxSchedScanIeLen }
func (a MaxSchedScanIELen) field() field   { return u16Field(a) }
func (EMLCapability) Kind() uint16         { return nl80211.AttrEmlCapability }
func (a EMLCapability) field() field       { return u16Field(a) }
func (MLDCapaAndOps) Kind() uint16         { return nl80211.AttrMldCapaAndOps }
func (a MLDCapaAndOps) field() field       { return u16Field(a) }
func (MaxNumAKMSuites) Kind() uint16       { return nl80211.AttrMaxNumAkmSuites }
func (a MaxNumAKMSuites) field() field     { return u16Field(a) }
func (MaxHWTimestampPeers) Kind() uint16   { return nl80211.AttrMaxHwTimestampPeers }
func (a MaxHWTimestampPeers) field() field { return u16Field(a) }
func (FrameType) Kind() uint16             { return nl80211.AttrFrameType }
func (a FrameType) field() field           { return u16Field(a) }
func (ReasonCode) Kind() uint16            { return nl80211.AttrReasonCode }
func (a ReasonCode) field() field          { return u16Field(a) }

// Attributes with 8-bit integer values.
type (
	WiphyRetryShort      uint8
	WiphyRetryLong       uint8
	WiphyCoverageClass   uint8
	MaxNumScanSSIDs      uint8
	MaxNumSchedScanSSIDs uint8
	MaxMatchSets         uint8
	MaxNumPMKIDs         uint8
	MaxCSACounters       uint8
	MLOLinkID            uint8
	RegType              RegulatoryDomainType
	RegInitiator         RegulatoryInitiator
	DFSRegion            DFSDomain
)

func (WiphyRetryShort) Kind() uint16        { return nl80211.AttrWiphyRetryShort }
func (a WiphyRetryShort) field() field      { return u8Field(a) }
func (WiphyRetryLong) Kind() uint16         { return nl80211.AttrWiphyRetryLong }
func (a WiphyRetryLong) field() field       { return u8Field(a) }
func (WiphyCoverageClass) Kind() uint16     { return nl80211.AttrWiphyCoverageClass }
func (a WiphyCoverageClass) field() field   { return u8Field(a) }
func (MaxNumScanSSIDs) Kind() uint16        { return nl80211.AttrMaxNumScanSsids }
func (a MaxNumScanSSIDs) field() field      { return u8Field(a) }
func (MaxNumSchedScanSSIDs) Kind() uint16   { return nl80211.AttrMaxNumSchedScanSsids }
func (a MaxNumSchedScanSSIDs) field() field { return u8Field(a) }
func (MaxMatchSets) Kind() uint16           { return nl80211.AttrMaxMatchSets }
func (a MaxMatchSets) field() field         { return u8Field(a) }
func (MaxNumPMKIDs) Kind() uint16           { return nl80211.AttrMaxNumPmkids }
func (a MaxNumPMKIDs) field() field         { return u8Field(a) }
func (MaxCSACounters) Kind() uint16         { return nl80211.AttrMaxCsaCounters }
func (a MaxCSACounters) field() field       { return u8Field(a) }
func (MLOLinkID) Kind() uint16              { return nl80211.AttrMloLinkId }
func (a MLOLinkID) field() field            { return u8Field(a) }
func (RegType) Kind() uint16                { return nl80211.AttrRegType }
func (a RegType) field() field              { return u8Field(a) }
func (a RegType) String() string            { return RegulatoryDomainType(a).String() }
func (RegInitiator) Kind() uint16           { return nl80211.AttrRegInitiator }
func (a RegInitiator) field() field         { return u8Field(a) }
func (a RegInitiator) String() string       { return RegulatoryInitiator(a).String() }
func (DFSRegion) Kind() uint16              { return nl80211.AttrDfsRegion }
func (a DFSRegion) field() field            { return u8Field(a) }
func (a DFSRegion) String() string          { return DFSDomain(a).String() }

// Use4Addr reports whether an interface uses 4-address frames. It is encoded
// as a u8 of 0 or 1.
type Use4Addr bool

func (Use4Addr) Kind() uint16 { return nl80211.Attr4addr }

func (a Use4Addr) field() field {
	if a {
		return u8Field(1)
	}

	return u8Field(0)
}

// Attributes with NUL-terminated string values.
type (
	WiphyName string
	IfName    string
	RegAlpha2 string
)

func (WiphyName) Kind() uint16   { return nl80211.AttrWiphyName }
func (a WiphyName) field() field { return stringField(a) }
func (IfName) Kind() uint16      { return nl80211.AttrIfname }
func (a IfName) field() field    { return stringField(a) }
func (RegAlpha2) Kind() uint16   { return nl80211.AttrRegAlpha2 }
func (a RegAlpha2) field() field { return stringField(a) }

// Attributes with hardware address values.
type (
	MAC     HardwareAddr
	BSSID   HardwareAddr
	MLDAddr HardwareAddr
)

func (MAC) Kind() uint16         { return nl80211.AttrMac }
func (a MAC) field() field       { return bytesField(a[:]) }
func (a MAC) String() string     { return HardwareAddr(a).String() }
func (BSSID) Kind() uint16       { return nl80211.AttrBssid }
func (a BSSID) field() field     { return bytesField(a[:]) }
func (a BSSID) String() string   { return HardwareAddr(a).String() }
func (MLDAddr) Kind() uint16     { return nl80211.AttrMldAddr }
func (a MLDAddr) field() field   { return bytesField(a[:]) }
func (a MLDAddr) String() string { return HardwareAddr(a).String() }

// Attributes with opaque byte values. An SSID is up to 32 arbitrary bytes
// and carries no terminator.
type (
	SSID        []byte
	BeaconHead  []byte
	BeaconTail  []byte
	IE          []byte
	IEProbeResp []byte
	IEAssocResp []byte
	ReqIE       []byte
	RespIE      []byte
	Frame       []byte
	FrameMatch  []byte
	PMK         []byte
)

func (SSID) Kind() uint16          { return nl80211.AttrSsid }
func (a SSID) field() field        { return bytesField(a) }
func (BeaconHead) Kind() uint16    { return nl80211.AttrBeaconHead }
func (a BeaconHead) field() field  { return bytesField(a) }
func (BeaconTail) Kind() uint16    { return nl80211.AttrBeaconTail }
func (a BeaconTail) field() field  { return bytesField(a) }
func (IE) Kind() uint16            { return nl80211.AttrIe }
func (a IE) field() field          { return bytesField(a) }
func (IEProbeResp) Kind() uint16   { return nl80211.AttrIeProbeResp }
func (a IEProbeResp) field() field { return bytesField(a) }
func (IEAssocResp) Kind() uint16   { return nl80211.AttrIeAssocResp }
func (a IEAssocResp) field() field { return bytesField(a) }
func (ReqIE) Kind() uint16         { return nl80211.AttrReqIe }
func (a ReqIE) field() field       { return bytesField(a) }
func (RespIE) Kind() uint16        { return nl80211.AttrRespIe }
func (a RespIE) field() field      { return bytesField(a) }
func (Frame) Kind() uint16         { return nl80211.AttrFrame }
func (a Frame) field() field       { return bytesField(a) }
func (FrameMatch) Kind() uint16    { return nl80211.AttrFrameMatch }
func (a FrameMatch) field() field  { return bytesField(a) }
func (PMK) Kind() uint16           { return nl80211.AttrPmk }
func (a PMK) field() field         { return bytesField(a) }

// Flag attributes. Their presence in a message is their value.
type (
	SupportIBSSRSN         struct{}
	SupportMeshAuth        struct{}
	SupportAPUAPSD         struct{}
	RoamSupport            struct{}
	TDLSSupport            struct{}
	TDLSExternalSetup      struct{}
	ControlPortEthertype   struct{}
	OffchannelTxOK         struct{}
	WiphySelfManagedReg    struct{}
	SplitWiphyDump         struct{}
	Privacy                struct{}
	ControlPort            struct{}
	ControlPortOverNL80211 struct{}
	ControlPortNoPreauth   struct{}
	SocketOwner            struct{}
	Want1X4WayHS           struct{}
	DisableHT              struct{}
	DisableVHT             struct{}
	DisableHE              struct{}
	DisableEHT             struct{}
)

func (SupportIBSSRSN) Kind() uint16         { return nl80211.AttrSupportIbssRsn }
func (SupportIBSSRSN) field() field         { return flagField{} }
func (SupportMeshAuth) Kind() uint16        { return nl80211.AttrSupportMeshAuth }
func (SupportMeshAuth) field() field        { return flagField{} }
func (SupportAPUAPSD) Kind() uint16         { return nl80211.AttrSupportApUapsd }
func (SupportAPUAPSD) field() field         { return flagField{} }
func (RoamSupport) Kind() uint16            { return nl80211.AttrRoamSupport }
func (RoamSupport) field() field            { return flagField{} }
func (TDLSSupport) Kind() uint16            { return nl80211.AttrTdlsSupport }
func (TDLSSupport) field() field            { return flagField{} }
func (TDLSExternalSetup) Kind() uint16      { return nl80211.AttrTdlsExternalSetup }
func (TDLSExternalSetup) field() field      { return flagField{} }
func (ControlPortEthertype) Kind() uint16   { return nl80211.AttrControlPortEthertype }
func (ControlPortEthertype) field() field   { return flagField{} }
func (OffchannelTxOK) Kind() uint16         { return nl80211.AttrOffchannelTxOk }
func (OffchannelTxOK) field() field         { return flagField{} }
func (WiphySelfManagedReg) Kind() uint16    { return nl80211.AttrWiphySelfManagedReg }
func (WiphySelfManagedReg) field() field    { return flagField{} }
func (SplitWiphyDump) Kind() uint16         { return nl80211.AttrSplitWiphyDump }
func (SplitWiphyDump) field() field         { return flagField{} }
func (Privacy) Kind() uint16                { return nl80211.AttrPrivacy }
func (Privacy) field() field                { return flagField{} }
func (ControlPort) Kind() uint16            { return nl80211.AttrControlPort }
func (ControlPort) field() field            { return flagField{} }
func (ControlPortOverNL80211) Kind() uint16 { return nl80211.AttrControlPortOverNl80211 }
func (ControlPortOverNL80211) field() field { return flagField{} }
func (ControlPortNoPreauth) Kind() uint16   { return nl80211.AttrControlPortNoPreauth }
func (ControlPortNoPreauth) field() field   { return flagField{} }
func (SocketOwner) Kind() uint16            { return nl80211.AttrSocketOwner }
func (SocketOwner) field() field            { return flagField{} }
func (Want1X4WayHS) Kind() uint16           { return nl80211.AttrWant1x4wayHs }
func (Want1X4WayHS) field() field           { return flagField{} }
func (DisableHT) Kind() uint16              { return nl80211.AttrDisableHt }
func (DisableHT) field() field              { return flagField{} }
func (DisableVHT) Kind() uint16             { return nl80211.AttrDisableVht }
func (DisableVHT) field() field             { return flagField{} }
func (DisableHE) Kind() uint16              { return nl80211.AttrDisableHe }
func (DisableHE) field() field              { return flagField{} }
func (DisableEHT) Kind() uint16             { return nl80211.AttrDisableEht }
func (DisableEHT) field() field             { return flagField{} }

// Attributes with packed arrays of 32-bit suite selectors.
type (
	CipherSuites         []CipherSuite
	CipherSuitesPairwise []CipherSuite
	AKMSuites            []AKMSuite
)

func (CipherSuites) Kind() uint16           { return nl80211.AttrCipherSuites }
func (a CipherSuites) field() field         { return u32s(a) }
func (CipherSuitesPairwise) Kind() uint16   { return nl80211.AttrCipherSuitesPairwise }
func (a CipherSuitesPairwise) field() field { return u32s(a) }
func (AKMSuites) Kind() uint16              { return nl80211.AttrAkmSuites }
func (a AKMSuites) field() field            { return u32s(a) }

func u32s[E ~uint32](v []E) u32sField {
	out := make(u32sField, 0, len(v))
	for _, e := range v {
		out = append(out, uint32(e))
	}

	return out
}

// A decoder decodes the value of one attribute kind.
type decoder func(b []byte) (Attribute, error)

var decoders = map[uint16]decoder{
	nl80211.AttrWiphy:                      u32As[Wiphy],
	nl80211.AttrIfindex:                    u32As[IfIndex],
	nl80211.AttrGeneration:                 u32As[Generation],
	nl80211.AttrWiphyFreq:                  u32As[WiphyFreq],
	nl80211.AttrWiphyFreqOffset:            u32As[WiphyFreqOffset],
	nl80211.AttrCenterFreq1:                u32As[CenterFreq1],
	nl80211.AttrCenterFreq2:                u32As[CenterFreq2],
	nl80211.AttrWiphyTxPowerLevel:          u32As[WiphyTxPowerLevel],
	nl80211.AttrWiphyFragThreshold:         u32As[WiphyFragThreshold],
	nl80211.AttrWiphyRtsThreshold:          u32As[WiphyRTSThreshold],
	nl80211.AttrWiphyAntennaTx:             u32As[WiphyAntennaTx],
	nl80211.AttrWiphyAntennaRx:             u32As[WiphyAntennaRx],
	nl80211.AttrWiphyAntennaAvailTx:        u32As[WiphyAntennaAvailTx],
	nl80211.AttrWiphyAntennaAvailRx:        u32As[WiphyAntennaAvailRx],
	nl80211.AttrProbeRespOffload:           u32As[ProbeRespOffload],
	nl80211.AttrMaxRemainOnChannelDuration: u32As[MaxRemainOnChannelDuration],
	nl80211.AttrMaxNumSchedScanPlans:       u32As[MaxNumSchedScanPlans],
	nl80211.AttrMaxScanPlanInterval:        u32As[MaxScanPlanInterval],
	nl80211.AttrMaxScanPlanIterations:      u32As[MaxScanPlanIterations],
	nl80211.AttrSchedScanMaxReqs:           u32As[SchedScanMaxReqs],
	nl80211.AttrTxqLimit:                   u32As[TXQLimit],
	nl80211.AttrTxqMemoryLimit:             u32As[TXQMemoryLimit],
	nl80211.AttrTxqQuantum:                 u32As[TXQQuantum],
	nl80211.AttrWpaVersions:                u32As[WPAVersions],
	nl80211.AttrBeaconInterval:             u32As[BeaconInterval],
	nl80211.AttrDtimPeriod:                 u32As[DTIMPeriod],
	nl80211.AttrIftype:                     u32As[IfType],
	nl80211.AttrWiphyChannelType:           u32As[WiphyChannelType],
	nl80211.AttrChannelWidth:               u32As[ChanWidth],
	nl80211.AttrPsState:                    u32As[PSState],
	nl80211.AttrAuthType:                   u32As[AuthType],
	nl80211.AttrCipherSuiteGroup:           u32As[CipherSuiteGroup],
	nl80211.AttrHiddenSsid:                 u32As[HiddenSSID],
	nl80211.AttrFeatureFlags:               u32As[FeatureFlags],
	nl80211.AttrBands:                      u32As[Bands],
	nl80211.AttrWdev:                       u64As[Wdev],
	nl80211.AttrMaxScanIeLen:               u16As[MaxScanIELen],
	nl80211.AttrMaxSchedScanIeLen:          u16As[MaxSchedScanIELen],
	nl80211.AttrEmlCapability:              u16As[EMLCapability],
	nl80211.AttrMldCapaAndOps:              u16As[MLDCapaAndOps],
	nl80211.AttrMaxNumAkmSuites:            u16As[MaxNumAKMSuites],
	nl80211.AttrMaxHwTimestampPeers:        u16As[MaxHWTimestampPeers],
	nl80211.AttrFrameType:                  u16As[FrameType],
	nl80211.AttrReasonCode:                 u16As[ReasonCode],
	nl80211.AttrWiphyRetryShort:            u8As[WiphyRetryShort],
	nl80211.AttrWiphyRetryLong:             u8As[WiphyRetryLong],
	nl80211.AttrWiphyCoverageClass:         u8As[WiphyCoverageClass],
	nl80211.AttrMaxNumScanSsids:            u8As[MaxNumScanSSIDs],
	nl80211.AttrMaxNumSchedScanSsids:       u8As[MaxNumSchedScanSSIDs],
	nl80211.AttrMaxMatchSets:               u8As[MaxMatchSets],
	nl80211.AttrMaxNumPmkids:               u8As[MaxNumPMKIDs],
	nl80211.AttrMaxCsaCounters:             u8As[MaxCSACounters],
	nl80211.AttrMloLinkId:                  u8As[MLOLinkID],
	nl80211.AttrRegType:                    u8As[RegType],
	nl80211.AttrRegInitiator:               u8As[RegInitiator],
	nl80211.AttrDfsRegion:                  u8As[DFSRegion],
	nl80211.Attr4addr:                      decodeUse4Addr,
	nl80211.AttrWiphyName:                  stringAs[WiphyName],
	nl80211.AttrIfname:                     stringAs[IfName],
	nl80211.AttrRegAlpha2:                  stringAs[RegAlpha2],
	nl80211.AttrMac:                        macAs[MAC],
	nl80211.AttrBssid:                      macAs[BSSID],
	nl80211.AttrMldAddr:                    macAs[MLDAddr],
	nl80211.AttrSsid:                       bytesAs[SSID],
	nl80211.AttrBeaconHead:                 bytesAs[BeaconHead],
	nl80211.AttrBeaconTail:                 bytesAs[BeaconTail],
	nl80211.AttrIe:                         bytesAs[IE],
	nl80211.AttrIeProbeResp:                bytesAs[IEProbeResp],
	nl80211.AttrIeAssocResp:                bytesAs[IEAssocResp],
	nl80211.AttrReqIe:                      bytesAs[ReqIE],
	nl80211.AttrRespIe:                     bytesAs[RespIE],
	nl80211.AttrFrame:                      bytesAs[Frame],
	nl80211.AttrFrameMatch:                 bytesAs[FrameMatch],
	nl80211.AttrPmk:                        bytesAs[PMK],
	nl80211.AttrExtFeatures:                bytesAs[ExtFeatures],
	nl80211.AttrSupportIbssRsn:             flagAs[SupportIBSSRSN],
	nl80211.AttrSupportMeshAuth:            flagAs[SupportMeshAuth],
	nl80211.AttrSupportApUapsd:             flagAs[SupportAPUAPSD],
	nl80211.AttrRoamSupport:                flagAs[RoamSupport],
	nl80211.AttrTdlsSupport:                flagAs[TDLSSupport],
	nl80211.AttrTdlsExternalSetup:          flagAs[TDLSExternalSetup],
	nl80211.AttrControlPortEthertype:       flagAs[ControlPortEthertype],
	nl80211.AttrOffchannelTxOk:             flagAs[OffchannelTxOK],
	nl80211.AttrWiphySelfManagedReg:        flagAs[WiphySelfManagedReg],
	nl80211.AttrSplitWiphyDump:             flagAs[SplitWiphyDump],
	nl80211.AttrPrivacy:                    flagAs[Privacy],
	nl80211.AttrControlPort:                flagAs[ControlPort],
	nl80211.AttrControlPortOverNl80211:     flagAs[ControlPortOverNL80211],
	nl80211.AttrControlPortNoPreauth:       flagAs[ControlPortNoPreauth],
	nl80211.AttrSocketOwner:                flagAs[SocketOwner],
	nl80211.AttrWant1x4wayHs:               flagAs[Want1X4WayHS],
	nl80211.AttrDisableHt:                  flagAs[DisableHT],
	nl80211.AttrDisableVht:                 flagAs[DisableVHT],
	nl80211.AttrDisableHe:                  flagAs[DisableHE],
	nl80211.AttrDisableEht:                 flagAs[DisableEHT],
	nl80211.AttrCipherSuites:               u32sAs[CipherSuites, CipherSuite],
	nl80211.AttrCipherSuitesPairwise:       u32sAs[CipherSuitesPairwise, CipherSuite],
	nl80211.AttrAkmSuites:                  u32sAs[AKMSuites, AKMSuite],
	nl80211.AttrHtCapability:               decodeHTCapability,
	nl80211.AttrHtCapabilityMask:           decodeHTCapabilityMask,
	nl80211.AttrVhtCapability:              decodeVHTCapability,
	nl80211.AttrVhtCapabilityMask:          decodeVHTCapabilityMask,
	nl80211.AttrExtCapa:                    decodeExtCapa,
	nl80211.AttrExtCapaMask:                decodeExtCapaMask,
	nl80211.AttrStaInfo:                    nestAs(decodeStationInfo),
	nl80211.AttrTxqStats:                   nestAs(decodeTXQStats),
	nl80211.AttrBss:                        nestAs(decodeBSSInfo),
	nl80211.AttrSurveyInfo:                 nestAs(decodeSurveyInfo),
	nl80211.AttrWiphyBands:                 nestAs(decodeWiphyBands),
	nl80211.AttrInterfaceCombinations:      nestAs(decodeInterfaceCombinations),
	nl80211.AttrSupportedIftypes:           nestAs(decodeIfTypeSet[SupportedIftypes]),
	nl80211.AttrSoftwareIftypes:            nestAs(decodeIfTypeSet[SoftwareIftypes]),
	nl80211.AttrSupportedCommands:          nestAs(decodeSupportedCommands),
	nl80211.AttrMacAddrs:                   nestAs(decodeMACAddrs),
	nl80211.AttrTxFrameTypes:               nestAs(decodeFrameTypesAs[TxFrameTypes]),
	nl80211.AttrRxFrameTypes:               nestAs(decodeFrameTypesAs[RxFrameTypes]),
	nl80211.AttrWowlanTriggersSupported:    nestAs(decodeWowlanTriggersSupported),
	nl80211.AttrIftypeExtCapa:              nestAs(decodeIftypeExtCapa),
	nl80211.AttrMloLinks:                   nestAs(decodeMLOLinks),
	nl80211.AttrScanSsids:                  nestAs(decodeScanSSIDs),
	nl80211.AttrScanFrequencies:            nestAs(decodeScanFrequencies),
	nl80211.AttrRegRules:                   nestAs(decodeRegRules),
}

func u8As[T interface {
	~uint8
	Attribute
}](b []byte) (Attribute, error) {
	v, err := decodeU8(b)
	return T(v), err
}

func u16As[T interface {
	~uint16
	Attribute
}](b []byte) (Attribute, error) {
	v, err := decodeU16(b)
	return T(v), err
}

func u32As[T interface {
	~uint32
	Attribute
}](b []byte) (Attribute, error) {
	v, err := decodeU32(b)
	return T(v), err
}

func u64As[T interface {
	~uint64
	Attribute
}](b []byte) (Attribute, error) {
	v, err := decodeU64(b)
	return T(v), err
}

func stringAs[T interface {
	~string
	Attribute
}](b []byte) (Attribute, error) {
	v, err := decodeString(b)
	return T(v), err
}

func macAs[T interface {
	~[6]byte
	Attribute
}](b []byte) (Attribute, error) {
	v, err := decodeMAC(b)
	return T(v), err
}

func bytesAs[T interface {
	~[]byte
	Attribute
}](b []byte) (Attribute, error) {
	return T(copyValue(b)), nil
}

// flagAs ignores any payload: a flag which is present is set.
func flagAs[T Attribute](_ []byte) (Attribute, error) {
	var v T
	return v, nil
}

func u32sAs[T interface {
	~[]E
	Attribute
}, E ~uint32](b []byte) (Attribute, error) {
	vs, err := decodeU32s(b)
	if err != nil {
		return nil, err
	}

	out := make(T, 0, len(vs))
	for _, v := range vs {
		out = append(out, E(v))
	}

	return out, nil
}

func decodeUse4Addr(b []byte) (Attribute, error) {
	v, err := decodeU8(b)
	return Use4Addr(v != 0), err
}

// nestAs adapts a container decoder to a decoder.
func nestAs[T Attribute](fn func(b []byte) (T, error)) decoder {
	return func(b []byte) (Attribute, error) {
		v, err := fn(b)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}
