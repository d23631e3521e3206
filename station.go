package wifi

import (
	"fmt"

	"github.com/nlwifi/wifi/internal/nl80211"
)

// StationInfo is the station statistics record carried by the StaInfo
// attribute. Values are in the units used by nl80211; zero values are absent
// and are omitted when encoding.
type StationInfo struct {
	InactiveTime       uint32 // msecs
	RxBytes            uint32
	TxBytes            uint32
	LLID               uint16
	PLID               uint16
	PlinkState         uint8
	Signal             int8   // dBm
	TxBitrate          *RateInfo
	RxPackets          uint32
	TxPackets          uint32
	TxRetries          uint32
	TxFailed           uint32
	SignalAvg          int8   // dBm
	RxBitrate          *RateInfo
	BSSParam           *StaBSSParam
	ConnectedTime      uint32 // secs
	StaFlags           []byte
	BeaconLoss         uint32
	TOffset            int64
	LocalPM            uint32
	PeerPM             uint32
	NonpeerPM          uint32
	RxBytes64          uint64
	TxBytes64          uint64
	ExpectedThroughput uint32 // kbps
	RxDropMisc         uint64
	BeaconRx           uint64
	BeaconSignalAvg    int8
	RxDuration         uint64 // usecs
	AckSignal          int8
	AckSignalAvg       int8
	RxMPDUs            uint32
	FCSErrorCount      uint32
	ConnectedToGate    uint8
	TxDuration         uint64 // usecs
	AirtimeWeight      uint16
	AirtimeLinkMetric  uint32
	AssocAtBoottime    uint64 // nsecs
	ConnectedToAS      uint8

	// Per-antenna signal strengths, present only for antennas in use.
	ChainSignal    []ChainSignal
	ChainSignalAvg []ChainSignal

	// Per-TID statistics for TIDs with traffic.
	TIDStats []TIDStats

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (StationInfo) Kind() uint16 { return nl80211.AttrStaInfo }

func (s StationInfo) field() field {
	var f nestField
	f.u32(nl80211.StaInfoInactiveTime, s.InactiveTime)
	f.u32(nl80211.StaInfoRxBytes, s.RxBytes)
	f.u32(nl80211.StaInfoTxBytes, s.TxBytes)
	f.u16(nl80211.StaInfoLlid, s.LLID)
	f.u16(nl80211.StaInfoPlid, s.PLID)
	f.u8(nl80211.StaInfoPlinkState, s.PlinkState)
	f.s8(nl80211.StaInfoSignal, s.Signal)
	if s.TxBitrate != nil {
		f.add(nl80211.StaInfoTxBitrate, s.TxBitrate.field())
	}
	f.u32(nl80211.StaInfoRxPackets, s.RxPackets)
	f.u32(nl80211.StaInfoTxPackets, s.TxPackets)
	f.u32(nl80211.StaInfoTxRetries, s.TxRetries)
	f.u32(nl80211.StaInfoTxFailed, s.TxFailed)
	f.s8(nl80211.StaInfoSignalAvg, s.SignalAvg)
	if s.RxBitrate != nil {
		f.add(nl80211.StaInfoRxBitrate, s.RxBitrate.field())
	}
	if s.BSSParam != nil {
		f.add(nl80211.StaInfoBssParam, s.BSSParam.field())
	}
	f.u32(nl80211.StaInfoConnectedTime, s.ConnectedTime)
	f.bytes(nl80211.StaInfoStaFlags, s.StaFlags)
	f.u32(nl80211.StaInfoBeaconLoss, s.BeaconLoss)
	f.s64(nl80211.StaInfoTOffset, s.TOffset)
	f.u32(nl80211.StaInfoLocalPm, s.LocalPM)
	f.u32(nl80211.StaInfoPeerPm, s.PeerPM)
	f.u32(nl80211.StaInfoNonpeerPm, s.NonpeerPM)
	f.u64(nl80211.StaInfoRxBytes64, s.RxBytes64)
	f.u64(nl80211.StaInfoTxBytes64, s.TxBytes64)
	f.nested(nl80211.StaInfoChainSignal, chainSignalList(s.ChainSignal))
	f.nested(nl80211.StaInfoChainSignalAvg, chainSignalList(s.ChainSignalAvg))
	f.u32(nl80211.StaInfoExpectedThroughput, s.ExpectedThroughput)
	f.u64(nl80211.StaInfoRxDropMisc, s.RxDropMisc)
	f.u64(nl80211.StaInfoBeaconRx, s.BeaconRx)
	f.s8(nl80211.StaInfoBeaconSignalAvg, s.BeaconSignalAvg)
	f.nested(nl80211.StaInfoTidStats, indexed(s.TIDStats, func(t TIDStats) (uint16, field) {
		return uint16(t.TID) + 1, t.field()
	}))
	f.u64(nl80211.StaInfoRxDuration, s.RxDuration)
	f.s8(nl80211.StaInfoAckSignal, s.AckSignal)
	f.s8(nl80211.StaInfoAckSignalAvg, s.AckSignalAvg)
	f.u32(nl80211.StaInfoRxMpdus, s.RxMPDUs)
	f.u32(nl80211.StaInfoFcsErrorCount, s.FCSErrorCount)
	f.u8(nl80211.StaInfoConnectedToGate, s.ConnectedToGate)
	f.u64(nl80211.StaInfoTxDuration, s.TxDuration)
	f.u16(nl80211.StaInfoAirtimeWeight, s.AirtimeWeight)
	f.u32(nl80211.StaInfoAirtimeLinkMetric, s.AirtimeLinkMetric)
	f.u64(nl80211.StaInfoAssocAtBoottime, s.AssocAtBoottime)
	f.u8(nl80211.StaInfoConnectedToAs, s.ConnectedToAS)
	f.extra(s.Extra)
	return f
}

func decodeStationInfo(b []byte) (StationInfo, error) {
	var s StationInfo
	err := decodeRecord("station info", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.StaInfoInactiveTime:
			s.InactiveTime, err = decodeU32(b)
		case nl80211.StaInfoRxBytes:
			s.RxBytes, err = decodeU32(b)
		case nl80211.StaInfoTxBytes:
			s.TxBytes, err = decodeU32(b)
		case nl80211.StaInfoLlid:
			s.LLID, err = decodeU16(b)
		case nl80211.StaInfoPlid:
			s.PLID, err = decodeU16(b)
		case nl80211.StaInfoPlinkState:
			s.PlinkState, err = decodeU8(b)
		case nl80211.StaInfoSignal:
			// Signal strengths are signed despite the u8 encoding.
			s.Signal, err = decodeS8(b)
		case nl80211.StaInfoTxBitrate:
			s.TxBitrate, err = ptr(decodeRateInfo(b))
		case nl80211.StaInfoRxPackets:
			s.RxPackets, err = decodeU32(b)
		case nl80211.StaInfoTxPackets:
			s.TxPackets, err = decodeU32(b)
		case nl80211.StaInfoTxRetries:
			s.TxRetries, err = decodeU32(b)
		case nl80211.StaInfoTxFailed:
			s.TxFailed, err = decodeU32(b)
		case nl80211.StaInfoSignalAvg:
			s.SignalAvg, err = decodeS8(b)
		case nl80211.StaInfoRxBitrate:
			s.RxBitrate, err = ptr(decodeRateInfo(b))
		case nl80211.StaInfoBssParam:
			s.BSSParam, err = ptr(decodeStaBSSParam(b))
		case nl80211.StaInfoConnectedTime:
			s.ConnectedTime, err = decodeU32(b)
		case nl80211.StaInfoStaFlags:
			s.StaFlags = cloneBytes(b)
		case nl80211.StaInfoBeaconLoss:
			s.BeaconLoss, err = decodeU32(b)
		case nl80211.StaInfoTOffset:
			s.TOffset, err = decodeS64(b)
		case nl80211.StaInfoLocalPm:
			s.LocalPM, err = decodeU32(b)
		case nl80211.StaInfoPeerPm:
			s.PeerPM, err = decodeU32(b)
		case nl80211.StaInfoNonpeerPm:
			s.NonpeerPM, err = decodeU32(b)
		case nl80211.StaInfoRxBytes64:
			s.RxBytes64, err = decodeU64(b)
		case nl80211.StaInfoTxBytes64:
			s.TxBytes64, err = decodeU64(b)
		case nl80211.StaInfoChainSignal:
			s.ChainSignal, err = decodeChainSignal("chain signal", b)
		case nl80211.StaInfoChainSignalAvg:
			s.ChainSignalAvg, err = decodeChainSignal("chain signal avg", b)
		case nl80211.StaInfoExpectedThroughput:
			s.ExpectedThroughput, err = decodeU32(b)
		case nl80211.StaInfoRxDropMisc:
			s.RxDropMisc, err = decodeU64(b)
		case nl80211.StaInfoBeaconRx:
			s.BeaconRx, err = decodeU64(b)
		case nl80211.StaInfoBeaconSignalAvg:
			s.BeaconSignalAvg, err = decodeS8(b)
		case nl80211.StaInfoTidStats:
			s.TIDStats, err = decodeTIDStatsList(b)
		case nl80211.StaInfoRxDuration:
			s.RxDuration, err = decodeU64(b)
		case nl80211.StaInfoPad:
			// Alignment padding for 64-bit values.
		case nl80211.StaInfoAckSignal:
			s.AckSignal, err = decodeS8(b)
		case nl80211.StaInfoAckSignalAvg:
			s.AckSignalAvg, err = decodeS8(b)
		case nl80211.StaInfoRxMpdus:
			s.RxMPDUs, err = decodeU32(b)
		case nl80211.StaInfoFcsErrorCount:
			s.FCSErrorCount, err = decodeU32(b)
		case nl80211.StaInfoConnectedToGate:
			s.ConnectedToGate, err = decodeU8(b)
		case nl80211.StaInfoTxDuration:
			s.TxDuration, err = decodeU64(b)
		case nl80211.StaInfoAirtimeWeight:
			s.AirtimeWeight, err = decodeU16(b)
		case nl80211.StaInfoAirtimeLinkMetric:
			s.AirtimeLinkMetric, err = decodeU32(b)
		case nl80211.StaInfoAssocAtBoottime:
			s.AssocAtBoottime, err = decodeU64(b)
		case nl80211.StaInfoConnectedToAs:
			s.ConnectedToAS, err = decodeU8(b)
		default:
			s.Extra = append(s.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return StationInfo{}, err
	}

	return s, nil
}

// A ChainSignal is the signal strength received on one antenna chain. The
// chain number is the element kind on the wire.
type ChainSignal struct {
	Chain  uint8
	Signal int8 // dBm
}

func chainSignalList(cs []ChainSignal) nestField {
	return indexed(cs, func(c ChainSignal) (uint16, field) {
		return uint16(c.Chain), u8Field(uint8(c.Signal))
	})
}

// decodeChainSignal decodes a list of per-antenna signal strengths.
func decodeChainSignal(container string, b []byte) ([]ChainSignal, error) {
	var out []ChainSignal
	err := decodeList(container, b, func(_ int, kind uint16, b []byte) error {
		if kind > 0xff {
			return fmt.Errorf("%w: chain number %d out of range", ErrMalformed, kind)
		}

		v, err := decodeS8(b)
		if err != nil {
			return err
		}

		out = append(out, ChainSignal{Chain: uint8(kind), Signal: v})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// RateInfo describes a transmit or receive bitrate. MCS, guard interval and
// resource unit fields are pointers since zero is a valid index.
type RateInfo struct {
	Bitrate    uint16 // 100 kbit/s
	MCS        *uint8
	Width40    bool
	ShortGI    bool
	Bitrate32  uint32 // 100 kbit/s
	VHTMCS     *uint8
	VHTNSS     uint8
	Width80    bool
	Width80P80 bool
	Width160   bool
	Width10    bool
	Width5     bool
	HEMCS      *uint8
	HENSS      uint8
	HEGI       *uint8
	HEDCM      *uint8
	HERUAlloc  *uint8
	Width320   bool
	EHTMCS     *uint8
	EHTNSS     uint8
	EHTGI      *uint8
	EHTRUAlloc *uint8

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

// BitsPerSecond returns the bitrate in bits per second, preferring the 32-bit
// value when it is present.
func (r RateInfo) BitsPerSecond() int {
	rate := int(r.Bitrate32)
	if rate == 0 {
		rate = int(r.Bitrate)
	}

	return rate * 100 * 1000
}

func (r RateInfo) field() nestField {
	var f nestField
	f.u16(nl80211.RateInfoBitrate, r.Bitrate)
	f.u8p(nl80211.RateInfoMcs, r.MCS)
	f.flag(nl80211.RateInfo40MhzWidth, r.Width40)
	f.flag(nl80211.RateInfoShortGi, r.ShortGI)
	f.u32(nl80211.RateInfoBitrate32, r.Bitrate32)
	f.u8p(nl80211.RateInfoVhtMcs, r.VHTMCS)
	f.u8(nl80211.RateInfoVhtNss, r.VHTNSS)
	f.flag(nl80211.RateInfo80MhzWidth, r.Width80)
	f.flag(nl80211.RateInfo80p80MhzWidth, r.Width80P80)
	f.flag(nl80211.RateInfo160MhzWidth, r.Width160)
	f.flag(nl80211.RateInfo10MhzWidth, r.Width10)
	f.flag(nl80211.RateInfo5MhzWidth, r.Width5)
	f.u8p(nl80211.RateInfoHeMcs, r.HEMCS)
	f.u8(nl80211.RateInfoHeNss, r.HENSS)
	f.u8p(nl80211.RateInfoHeGi, r.HEGI)
	f.u8p(nl80211.RateInfoHeDcm, r.HEDCM)
	f.u8p(nl80211.RateInfoHeRuAlloc, r.HERUAlloc)
	f.flag(nl80211.RateInfo320MhzWidth, r.Width320)
	f.u8p(nl80211.RateInfoEhtMcs, r.EHTMCS)
	f.u8(nl80211.RateInfoEhtNss, r.EHTNSS)
	f.u8p(nl80211.RateInfoEhtGi, r.EHTGI)
	f.u8p(nl80211.RateInfoEhtRuAlloc, r.EHTRUAlloc)
	f.extra(r.Extra)
	return f
}

func decodeRateInfo(b []byte) (RateInfo, error) {
	var r RateInfo
	err := decodeRecord("rate info", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.RateInfoBitrate:
			r.Bitrate, err = decodeU16(b)
		case nl80211.RateInfoMcs:
			r.MCS, err = ptr(decodeU8(b))
		case nl80211.RateInfo40MhzWidth:
			r.Width40 = true
		case nl80211.RateInfoShortGi:
			r.ShortGI = true
		case nl80211.RateInfoBitrate32:
			r.Bitrate32, err = decodeU32(b)
		case nl80211.RateInfoVhtMcs:
			r.VHTMCS, err = ptr(decodeU8(b))
		case nl80211.RateInfoVhtNss:
			r.VHTNSS, err = decodeU8(b)
		case nl80211.RateInfo80MhzWidth:
			r.Width80 = true
		case nl80211.RateInfo80p80MhzWidth:
			r.Width80P80 = true
		case nl80211.RateInfo160MhzWidth:
			r.Width160 = true
		case nl80211.RateInfo10MhzWidth:
			r.Width10 = true
		case nl80211.RateInfo5MhzWidth:
			r.Width5 = true
		case nl80211.RateInfoHeMcs:
			r.HEMCS, err = ptr(decodeU8(b))
		case nl80211.RateInfoHeNss:
			r.HENSS, err = decodeU8(b)
		case nl80211.RateInfoHeGi:
			r.HEGI, err = ptr(decodeU8(b))
		case nl80211.RateInfoHeDcm:
			r.HEDCM, err = ptr(decodeU8(b))
		case nl80211.RateInfoHeRuAlloc:
			r.HERUAlloc, err = ptr(decodeU8(b))
		case nl80211.RateInfo320MhzWidth:
			r.Width320 = true
		case nl80211.RateInfoEhtMcs:
			r.EHTMCS, err = ptr(decodeU8(b))
		case nl80211.RateInfoEhtNss:
			r.EHTNSS, err = decodeU8(b)
		case nl80211.RateInfoEhtGi:
			r.EHTGI, err = ptr(decodeU8(b))
		case nl80211.RateInfoEhtRuAlloc:
			r.EHTRUAlloc, err = ptr(decodeU8(b))
		default:
			r.Extra = append(r.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return RateInfo{}, err
	}

	return r, nil
}

// StaBSSParam holds the parameters of the BSS a station belongs to.
type StaBSSParam struct {
	CTSProt        bool
	ShortPreamble  bool
	ShortSlotTime  bool
	DTIMPeriod     uint8
	BeaconInterval uint16 // TUs

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (p StaBSSParam) field() nestField {
	var f nestField
	f.flag(nl80211.StaBssParamCtsProt, p.CTSProt)
	f.flag(nl80211.StaBssParamShortPreamble, p.ShortPreamble)
	f.flag(nl80211.StaBssParamShortSlotTime, p.ShortSlotTime)
	f.u8(nl80211.StaBssParamDtimPeriod, p.DTIMPeriod)
	f.u16(nl80211.StaBssParamBeaconInterval, p.BeaconInterval)
	f.extra(p.Extra)
	return f
}

func decodeStaBSSParam(b []byte) (StaBSSParam, error) {
	var p StaBSSParam
	err := decodeRecord("bss param", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.StaBssParamCtsProt:
			p.CTSProt = true
		case nl80211.StaBssParamShortPreamble:
			p.ShortPreamble = true
		case nl80211.StaBssParamShortSlotTime:
			p.ShortSlotTime = true
		case nl80211.StaBssParamDtimPeriod:
			p.DTIMPeriod, err = decodeU8(b)
		case nl80211.StaBssParamBeaconInterval:
			p.BeaconInterval, err = decodeU16(b)
		default:
			p.Extra = append(p.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return StaBSSParam{}, err
	}

	return p, nil
}

// TIDStats holds the statistics of one traffic identifier. TID 16 carries
// non-QoS traffic. The TID is encoded as the element kind, offset by one.
type TIDStats struct {
	TID           uint8
	RxMSDU        uint64
	TxMSDU        uint64
	TxMSDURetries uint64
	TxMSDUFailed  uint64
	TXQStats      *TXQStats

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (t TIDStats) field() nestField {
	var f nestField
	f.u64(nl80211.TidStatsRxMsdu, t.RxMSDU)
	f.u64(nl80211.TidStatsTxMsdu, t.TxMSDU)
	f.u64(nl80211.TidStatsTxMsduRetries, t.TxMSDURetries)
	f.u64(nl80211.TidStatsTxMsduFailed, t.TxMSDUFailed)
	if t.TXQStats != nil {
		f.add(nl80211.TidStatsTxqStats, t.TXQStats.nest())
	}
	f.extra(t.Extra)
	return f
}

func decodeTIDStatsList(b []byte) ([]TIDStats, error) {
	var out []TIDStats
	err := decodeList("tid stats", b, func(_ int, kind uint16, b []byte) error {
		if kind == 0 || kind > 0x100 {
			return fmt.Errorf("%w: TID element kind %d out of range", ErrMalformed, kind)
		}

		t, err := decodeTIDStats(b)
		if err != nil {
			return err
		}

		t.TID = uint8(kind - 1)

		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decodeTIDStats(b []byte) (TIDStats, error) {
	var t TIDStats
	err := decodeRecord("tid stats", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.TidStatsRxMsdu:
			t.RxMSDU, err = decodeU64(b)
		case nl80211.TidStatsTxMsdu:
			t.TxMSDU, err = decodeU64(b)
		case nl80211.TidStatsTxMsduRetries:
			t.TxMSDURetries, err = decodeU64(b)
		case nl80211.TidStatsTxMsduFailed:
			t.TxMSDUFailed, err = decodeU64(b)
		case nl80211.TidStatsPad:
		case nl80211.TidStatsTxqStats:
			t.TXQStats, err = ptr(decodeTXQStats(b))
		default:
			t.Extra = append(t.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return TIDStats{}, err
	}

	return t, nil
}
