package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// SurveyInfo is the channel survey record for one frequency. Times are in
// milliseconds.
type SurveyInfo struct {
	Frequency       uint32 // MHz
	Noise           int8   // dBm
	InUse           bool
	Time            uint64
	TimeBusy        uint64
	TimeExtBusy     uint64
	TimeRx          uint64
	TimeTx          uint64
	TimeScan        uint64
	TimeBSSRx       uint64
	FrequencyOffset uint32 // KHz

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (SurveyInfo) Kind() uint16 { return nl80211.AttrSurveyInfo }

func (s SurveyInfo) field() field {
	var f nestField
	f.u32(nl80211.SurveyInfoFrequency, s.Frequency)
	f.s8(nl80211.SurveyInfoNoise, s.Noise)
	f.flag(nl80211.SurveyInfoInUse, s.InUse)
	f.u64(nl80211.SurveyInfoTime, s.Time)
	f.u64(nl80211.SurveyInfoTimeBusy, s.TimeBusy)
	f.u64(nl80211.SurveyInfoTimeExtBusy, s.TimeExtBusy)
	f.u64(nl80211.SurveyInfoTimeRx, s.TimeRx)
	f.u64(nl80211.SurveyInfoTimeTx, s.TimeTx)
	f.u64(nl80211.SurveyInfoTimeScan, s.TimeScan)
	f.u64(nl80211.SurveyInfoTimeBssRx, s.TimeBSSRx)
	f.u32(nl80211.SurveyInfoFrequencyOffset, s.FrequencyOffset)
	f.extra(s.Extra)
	return f
}

func decodeSurveyInfo(b []byte) (SurveyInfo, error) {
	var s SurveyInfo
	err := decodeRecord("survey info", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.SurveyInfoFrequency:
			s.Frequency, err = decodeU32(b)
		case nl80211.SurveyInfoNoise:
			s.Noise, err = decodeS8(b)
		case nl80211.SurveyInfoInUse:
			s.InUse = true
		case nl80211.SurveyInfoTime:
			s.Time, err = decodeU64(b)
		case nl80211.SurveyInfoTimeBusy:
			s.TimeBusy, err = decodeU64(b)
		case nl80211.SurveyInfoTimeExtBusy:
			s.TimeExtBusy, err = decodeU64(b)
		case nl80211.SurveyInfoTimeRx:
			s.TimeRx, err = decodeU64(b)
		case nl80211.SurveyInfoTimeTx:
			s.TimeTx, err = decodeU64(b)
		case nl80211.SurveyInfoTimeScan:
			s.TimeScan, err = decodeU64(b)
		case nl80211.SurveyInfoTimeBssRx:
			s.TimeBSSRx, err = decodeU64(b)
		case nl80211.SurveyInfoFrequencyOffset:
			s.FrequencyOffset, err = decodeU32(b)
		case nl80211.SurveyInfoPad:
		default:
			s.Extra = append(s.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return SurveyInfo{}, err
	}

	return s, nil
}
