package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// BSSInfo is a scan result record carried by the Bss attribute. Status is a
// pointer because BSSStatusAuthenticated is zero; it is only present for the
// BSS an interface is associated with.
type BSSInfo struct {
	BSSID               HardwareAddr
	Frequency           uint32 // MHz
	TSF                 uint64
	BeaconInterval      uint16 // TUs
	Capability          uint16
	InformationElements []byte
	SignalMBM           int32  // mBm
	SignalUnspec        uint8
	Status              *BSSStatus
	SeenMsAgo           uint32
	BeaconIEs           []byte
	ChanWidth           uint32
	BeaconTSF           uint64
	PrespData           bool
	LastSeenBoottime    uint64 // nsecs
	ParentTSF           uint64
	ParentBSSID         HardwareAddr
	ChainSignal         []ChainSignal
	FrequencyOffset     uint32 // KHz
	MLOLinkID           uint8
	MLDAddr             HardwareAddr
	UseFor              uint32
	CannotUseReasons    uint64

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (BSSInfo) Kind() uint16 { return nl80211.AttrBss }

func (bss BSSInfo) field() field {
	var f nestField
	f.mac(nl80211.BssBssid, bss.BSSID)
	f.u32(nl80211.BssFrequency, bss.Frequency)
	f.u64(nl80211.BssTsf, bss.TSF)
	f.u16(nl80211.BssBeaconInterval, bss.BeaconInterval)
	f.u16(nl80211.BssCapability, bss.Capability)
	f.bytes(nl80211.BssInformationElements, bss.InformationElements)
	f.s32(nl80211.BssSignalMbm, bss.SignalMBM)
	f.u8(nl80211.BssSignalUnspec, bss.SignalUnspec)
	if bss.Status != nil {
		f.add(nl80211.BssStatus, u32Field(*bss.Status))
	}
	f.u32(nl80211.BssSeenMsAgo, bss.SeenMsAgo)
	f.bytes(nl80211.BssBeaconIes, bss.BeaconIEs)
	f.u32(nl80211.BssChanWidth, bss.ChanWidth)
	f.u64(nl80211.BssBeaconTsf, bss.BeaconTSF)
	f.flag(nl80211.BssPrespData, bss.PrespData)
	f.u64(nl80211.BssLastSeenBoottime, bss.LastSeenBoottime)
	f.u64(nl80211.BssParentTsf, bss.ParentTSF)
	f.mac(nl80211.BssParentBssid, bss.ParentBSSID)
	f.nested(nl80211.BssChainSignal, chainSignalList(bss.ChainSignal))
	f.u32(nl80211.BssFrequencyOffset, bss.FrequencyOffset)
	f.u8(nl80211.BssMloLinkId, bss.MLOLinkID)
	f.mac(nl80211.BssMldAddr, bss.MLDAddr)
	f.u32(nl80211.BssUseFor, bss.UseFor)
	f.u64(nl80211.BssCannotUseReasons, bss.CannotUseReasons)
	f.extra(bss.Extra)
	return f
}

func decodeBSSInfo(b []byte) (BSSInfo, error) {
	var bss BSSInfo
	err := decodeRecord("bss", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.BssBssid:
			bss.BSSID, err = decodeMAC(b)
		case nl80211.BssFrequency:
			bss.Frequency, err = decodeU32(b)
		case nl80211.BssTsf:
			bss.TSF, err = decodeU64(b)
		case nl80211.BssBeaconInterval:
			bss.BeaconInterval, err = decodeU16(b)
		case nl80211.BssCapability:
			bss.Capability, err = decodeU16(b)
		case nl80211.BssInformationElements:
			bss.InformationElements = cloneBytes(b)
		case nl80211.BssSignalMbm:
			bss.SignalMBM, err = decodeS32(b)
		case nl80211.BssSignalUnspec:
			bss.SignalUnspec, err = decodeU8(b)
		case nl80211.BssStatus:
			var v uint32
			v, err = decodeU32(b)
			status := BSSStatus(v)
			bss.Status = &status
		case nl80211.BssSeenMsAgo:
			bss.SeenMsAgo, err = decodeU32(b)
		case nl80211.BssBeaconIes:
			bss.BeaconIEs = cloneBytes(b)
		case nl80211.BssChanWidth:
			bss.ChanWidth, err = decodeU32(b)
		case nl80211.BssBeaconTsf:
			bss.BeaconTSF, err = decodeU64(b)
		case nl80211.BssPrespData:
			bss.PrespData = true
		case nl80211.BssLastSeenBoottime:
			bss.LastSeenBoottime, err = decodeU64(b)
		case nl80211.BssPad:
		case nl80211.BssParentTsf:
			bss.ParentTSF, err = decodeU64(b)
		case nl80211.BssParentBssid:
			bss.ParentBSSID, err = decodeMAC(b)
		case nl80211.BssChainSignal:
			bss.ChainSignal, err = decodeChainSignal("bss chain signal", b)
		case nl80211.BssFrequencyOffset:
			bss.FrequencyOffset, err = decodeU32(b)
		case nl80211.BssMloLinkId:
			bss.MLOLinkID, err = decodeU8(b)
		case nl80211.BssMldAddr:
			bss.MLDAddr, err = decodeMAC(b)
		case nl80211.BssUseFor:
			bss.UseFor, err = decodeU32(b)
		case nl80211.BssCannotUseReasons:
			bss.CannotUseReasons, err = decodeU64(b)
		default:
			bss.Extra = append(bss.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return BSSInfo{}, err
	}

	return bss, nil
}
