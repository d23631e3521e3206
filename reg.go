package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// Regulatory rule flags.
const (
	RuleNoOFDM       uint32 = 1 << 0
	RuleNoCCK        uint32 = 1 << 1
	RuleNoIndoor     uint32 = 1 << 2
	RuleNoOutdoor    uint32 = 1 << 3
	RuleDFS          uint32 = 1 << 4
	RulePTPOnly      uint32 = 1 << 5
	RulePTMPOnly     uint32 = 1 << 6
	RuleNoIR         uint32 = 1 << 7
	RuleAutoBW       uint32 = 1 << 11
	RuleIRConcurrent uint32 = 1 << 12
	RuleNoHT40Minus  uint32 = 1 << 13
	RuleNoHT40Plus   uint32 = 1 << 14
	RuleNo80MHz      uint32 = 1 << 15
	RuleNo160MHz     uint32 = 1 << 16
)

// A RegulatoryRule is one frequency range rule of a regulatory domain.
// Frequencies and bandwidths are in KHz, powers in mBi and mBm.
type RegulatoryRule struct {
	Flags          uint32
	FreqRangeStart uint32
	FreqRangeEnd   uint32
	FreqRangeMaxBW uint32
	MaxAntennaGain uint32
	MaxEIRP        uint32

	// DFSCACTime is the channel availability check time in milliseconds.
	DFSCACTime uint32

	// PSD is the power spectral density limit in dBm/MHz.
	PSD int8

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (r RegulatoryRule) nest() nestField {
	var f nestField
	f.u32(nl80211.RegRuleAttrFlags, r.Flags)
	f.u32(nl80211.RegRuleAttrFreqRangeStart, r.FreqRangeStart)
	f.u32(nl80211.RegRuleAttrFreqRangeEnd, r.FreqRangeEnd)
	f.u32(nl80211.RegRuleAttrFreqRangeMaxBw, r.FreqRangeMaxBW)
	f.u32(nl80211.RegRuleAttrPowerRuleMaxAntGain, r.MaxAntennaGain)
	f.u32(nl80211.RegRuleAttrPowerRuleMaxEirp, r.MaxEIRP)
	f.u32(nl80211.RegRuleAttrDfsCacTime, r.DFSCACTime)
	f.s8(nl80211.RegRuleAttrPowerRulePsd, r.PSD)
	f.extra(r.Extra)
	return f
}

// RegRules lists the rules of a regulatory domain. Element kinds are
// regenerated from position starting at 0 when encoding.
type RegRules []RegulatoryRule

func (RegRules) Kind() uint16 { return nl80211.AttrRegRules }

func (a RegRules) field() field {
	return list(0, a, func(r RegulatoryRule) field { return r.nest() })
}

func decodeRegRules(b []byte) (RegRules, error) {
	var out RegRules
	err := decodeList("reg rules", b, func(_ int, _ uint16, b []byte) error {
		var r RegulatoryRule
		err := decodeRecord("reg rule", b, func(kind uint16, b []byte) error {
			var err error
			switch kind {
			case nl80211.RegRuleAttrFlags:
				r.Flags, err = decodeU32(b)
			case nl80211.RegRuleAttrFreqRangeStart:
				r.FreqRangeStart, err = decodeU32(b)
			case nl80211.RegRuleAttrFreqRangeEnd:
				r.FreqRangeEnd, err = decodeU32(b)
			case nl80211.RegRuleAttrFreqRangeMaxBw:
				r.FreqRangeMaxBW, err = decodeU32(b)
			case nl80211.RegRuleAttrPowerRuleMaxAntGain:
				r.MaxAntennaGain, err = decodeU32(b)
			case nl80211.RegRuleAttrPowerRuleMaxEirp:
				r.MaxEIRP, err = decodeU32(b)
			case nl80211.RegRuleAttrDfsCacTime:
				r.DFSCACTime, err = decodeU32(b)
			case nl80211.RegRuleAttrPowerRulePsd:
				r.PSD, err = decodeS8(b)
			default:
				r.Extra = append(r.Extra, unknown(kind, b))
			}

			return err
		})
		if err != nil {
			return err
		}

		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
