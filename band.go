package wifi

import (
	"encoding/binary"

	"github.com/nlwifi/wifi/internal/nl80211"
)

// WiphyBands lists the per-band capabilities of a wiphy. Each element is
// nested under its band identifier, so Band doubles as the element kind.
type WiphyBands []WiphyBand

func (WiphyBands) Kind() uint16 { return nl80211.AttrWiphyBands }

func (a WiphyBands) field() field {
	f := make(nestField, 0, len(a))
	for _, band := range a {
		f = append(f, nla{kind: uint16(band.Band), f: band.nest()})
	}

	return f
}

func decodeWiphyBands(b []byte) (WiphyBands, error) {
	var out WiphyBands
	err := decodeList("wiphy bands", b, func(_ int, kind uint16, b []byte) error {
		band, err := decodeWiphyBand(Band(kind), b)
		if err != nil {
			return err
		}

		out = append(out, band)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// A WiphyBand describes the channels, rates and capabilities of one band.
//
// The HT fields are sent together: when HTMCSSet is present the capability,
// A-MPDU factor and density are encoded even if zero. The same holds for
// VHTCapa and VHTMCSSet.
type WiphyBand struct {
	Band           Band
	Frequencies    []Frequency
	Bitrates       []Bitrate
	HTMCSSet       []byte
	HTCapa         uint16
	HTAMPDUFactor  uint8
	HTAMPDUDensity uint8
	VHTMCSSet      []byte
	VHTCapa        uint32
	IftypeData     []BandIftypeData
	EDMGChannels   uint8
	EDMGBWConfig   uint8
	S1GMCSNSSSet   []byte
	S1GCapa        []byte

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

// HTCapabilities interprets the band's HT capabilities, or returns nil if the
// band does not support HT.
func (b WiphyBand) HTCapabilities() *HTCapabilities {
	blk, ok := b.HTCapabilityBlock()
	if !ok {
		return nil
	}

	return blk.Capabilities()
}

// HTCapabilityBlock assembles the band's HT fields into the layout of an HT
// Capabilities element.
func (b WiphyBand) HTCapabilityBlock() (HTCapabilityBlock, bool) {
	var blk HTCapabilityBlock
	if len(b.HTMCSSet) == 0 {
		return blk, false
	}

	binary.LittleEndian.PutUint16(blk[0:2], b.HTCapa)
	blk[2] = b.HTAMPDUFactor&0x3 | (b.HTAMPDUDensity&0x7)<<2
	copy(blk[3:19], b.HTMCSSet)
	return blk, true
}

// VHTCapabilities interprets the band's VHT capabilities, or returns nil if
// the band does not support VHT.
func (b WiphyBand) VHTCapabilities() *VHTCapabilities {
	if len(b.VHTMCSSet) == 0 {
		return nil
	}

	var blk VHTCapabilityBlock
	binary.LittleEndian.PutUint32(blk[0:4], b.VHTCapa)
	copy(blk[4:12], b.VHTMCSSet)
	return blk.Capabilities()
}

func (b WiphyBand) nest() nestField {
	var f nestField
	f.nested(nl80211.BandAttrFreqs, list(0, b.Frequencies, func(fr Frequency) field { return fr.nest() }))
	f.nested(nl80211.BandAttrRates, list(0, b.Bitrates, func(r Bitrate) field { return r.nest() }))
	if len(b.HTMCSSet) > 0 {
		f.add(nl80211.BandAttrHtMcsSet, bytesField(b.HTMCSSet))
		f.add(nl80211.BandAttrHtCapa, u16Field(b.HTCapa))
		f.add(nl80211.BandAttrHtAmpduFactor, u8Field(b.HTAMPDUFactor))
		f.add(nl80211.BandAttrHtAmpduDensity, u8Field(b.HTAMPDUDensity))
	}
	if len(b.VHTMCSSet) > 0 {
		f.add(nl80211.BandAttrVhtMcsSet, bytesField(b.VHTMCSSet))
		f.add(nl80211.BandAttrVhtCapa, u32Field(b.VHTCapa))
	}
	f.nested(nl80211.BandAttrIftypeData, list(1, b.IftypeData, func(d BandIftypeData) field { return d.nest() }))
	f.u8(nl80211.BandAttrEdmgChannels, b.EDMGChannels)
	f.u8(nl80211.BandAttrEdmgBwConfig, b.EDMGBWConfig)
	f.bytes(nl80211.BandAttrS1gMcsNssSet, b.S1GMCSNSSSet)
	f.bytes(nl80211.BandAttrS1gCapa, b.S1GCapa)
	f.extra(b.Extra)
	return f
}

func decodeWiphyBand(band Band, b []byte) (WiphyBand, error) {
	wb := WiphyBand{Band: band}
	err := decodeRecord("band", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.BandAttrFreqs:
			wb.Frequencies, err = decodeFrequencies(b)
		case nl80211.BandAttrRates:
			wb.Bitrates, err = decodeBitrates(b)
		case nl80211.BandAttrHtMcsSet:
			wb.HTMCSSet = cloneBytes(b)
		case nl80211.BandAttrHtCapa:
			wb.HTCapa, err = decodeU16(b)
		case nl80211.BandAttrHtAmpduFactor:
			wb.HTAMPDUFactor, err = decodeU8(b)
		case nl80211.BandAttrHtAmpduDensity:
			wb.HTAMPDUDensity, err = decodeU8(b)
		case nl80211.BandAttrVhtMcsSet:
			wb.VHTMCSSet = cloneBytes(b)
		case nl80211.BandAttrVhtCapa:
			wb.VHTCapa, err = decodeU32(b)
		case nl80211.BandAttrIftypeData:
			wb.IftypeData, err = decodeBandIftypeDataList(b)
		case nl80211.BandAttrEdmgChannels:
			wb.EDMGChannels, err = decodeU8(b)
		case nl80211.BandAttrEdmgBwConfig:
			wb.EDMGBWConfig, err = decodeU8(b)
		case nl80211.BandAttrS1gMcsNssSet:
			wb.S1GMCSNSSSet = cloneBytes(b)
		case nl80211.BandAttrS1gCapa:
			wb.S1GCapa = cloneBytes(b)
		default:
			wb.Extra = append(wb.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return WiphyBand{}, err
	}

	return wb, nil
}

// A Frequency describes one channel of a band. DFSState is a pointer since
// the usable state is zero.
type Frequency struct {
	Freq          uint32 // MHz
	Disabled      bool
	NoIR          bool
	NoIBSS        bool
	Radar         bool
	MaxTxPower    uint32 // mBm
	DFSState      *uint32
	DFSTime       uint32 // msecs
	NoHT40Minus   bool
	NoHT40Plus    bool
	No80MHz       bool
	No160MHz      bool
	DFSCACTime    uint32 // msecs
	IndoorOnly    bool
	IRConcurrent  bool
	No20MHz       bool
	No10MHz       bool
	WMM           []WMMRule
	NoHE          bool
	Offset        uint32 // KHz
	Allow1MHz     bool
	Allow2MHz     bool
	Allow4MHz     bool
	Allow8MHz     bool
	Allow16MHz    bool
	No320MHz      bool
	NoEHT         bool
	PSD           int8
	DFSConcurrent bool

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (fr Frequency) nest() nestField {
	var f nestField
	f.u32(nl80211.FrequencyAttrFreq, fr.Freq)
	f.flag(nl80211.FrequencyAttrDisabled, fr.Disabled)
	f.flag(nl80211.FrequencyAttrNoIr, fr.NoIR)
	f.flag(nl80211.FrequencyAttrNoIbss, fr.NoIBSS)
	f.flag(nl80211.FrequencyAttrRadar, fr.Radar)
	f.u32(nl80211.FrequencyAttrMaxTxPower, fr.MaxTxPower)
	if fr.DFSState != nil {
		f.add(nl80211.FrequencyAttrDfsState, u32Field(*fr.DFSState))
	}
	f.u32(nl80211.FrequencyAttrDfsTime, fr.DFSTime)
	f.flag(nl80211.FrequencyAttrNoHt40Minus, fr.NoHT40Minus)
	f.flag(nl80211.FrequencyAttrNoHt40Plus, fr.NoHT40Plus)
	f.flag(nl80211.FrequencyAttrNo80mhz, fr.No80MHz)
	f.flag(nl80211.FrequencyAttrNo160mhz, fr.No160MHz)
	f.u32(nl80211.FrequencyAttrDfsCacTime, fr.DFSCACTime)
	f.flag(nl80211.FrequencyAttrIndoorOnly, fr.IndoorOnly)
	f.flag(nl80211.FrequencyAttrIrConcurrent, fr.IRConcurrent)
	f.flag(nl80211.FrequencyAttrNo20mhz, fr.No20MHz)
	f.flag(nl80211.FrequencyAttrNo10mhz, fr.No10MHz)
	f.nested(nl80211.FrequencyAttrWmm, list(0, fr.WMM, func(r WMMRule) field { return r.nest() }))
	f.flag(nl80211.FrequencyAttrNoHe, fr.NoHE)
	f.u32(nl80211.FrequencyAttrOffset, fr.Offset)
	f.flag(nl80211.FrequencyAttr1mhz, fr.Allow1MHz)
	f.flag(nl80211.FrequencyAttr2mhz, fr.Allow2MHz)
	f.flag(nl80211.FrequencyAttr4mhz, fr.Allow4MHz)
	f.flag(nl80211.FrequencyAttr8mhz, fr.Allow8MHz)
	f.flag(nl80211.FrequencyAttr16mhz, fr.Allow16MHz)
	f.flag(nl80211.FrequencyAttrNo320mhz, fr.No320MHz)
	f.flag(nl80211.FrequencyAttrNoEht, fr.NoEHT)
	f.s8(nl80211.FrequencyAttrPsd, fr.PSD)
	f.flag(nl80211.FrequencyAttrDfsConcurrent, fr.DFSConcurrent)
	f.extra(fr.Extra)
	return f
}

func decodeFrequencies(b []byte) ([]Frequency, error) {
	var out []Frequency
	err := decodeList("frequencies", b, func(_ int, _ uint16, b []byte) error {
		fr, err := decodeFrequency(b)
		if err != nil {
			return err
		}

		out = append(out, fr)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decodeFrequency(b []byte) (Frequency, error) {
	var fr Frequency
	err := decodeRecord("frequency", b, func(kind uint16, b []byte) error {
		var flag *bool
		switch kind {
		case nl80211.FrequencyAttrFreq:
			return decodeInto(&fr.Freq, b, decodeU32)
		case nl80211.FrequencyAttrMaxTxPower:
			return decodeInto(&fr.MaxTxPower, b, decodeU32)
		case nl80211.FrequencyAttrDfsState:
			var err error
			fr.DFSState, err = ptr(decodeU32(b))
			return err
		case nl80211.FrequencyAttrDfsTime:
			return decodeInto(&fr.DFSTime, b, decodeU32)
		case nl80211.FrequencyAttrDfsCacTime:
			return decodeInto(&fr.DFSCACTime, b, decodeU32)
		case nl80211.FrequencyAttrWmm:
			var err error
			fr.WMM, err = decodeWMMRules(b)
			return err
		case nl80211.FrequencyAttrOffset:
			return decodeInto(&fr.Offset, b, decodeU32)
		case nl80211.FrequencyAttrPsd:
			return decodeInto(&fr.PSD, b, decodeS8)
		case nl80211.FrequencyAttrDisabled:
			flag = &fr.Disabled
		case nl80211.FrequencyAttrNoIr:
			flag = &fr.NoIR
		case nl80211.FrequencyAttrNoIbss:
			flag = &fr.NoIBSS
		case nl80211.FrequencyAttrRadar:
			flag = &fr.Radar
		case nl80211.FrequencyAttrNoHt40Minus:
			flag = &fr.NoHT40Minus
		case nl80211.FrequencyAttrNoHt40Plus:
			flag = &fr.NoHT40Plus
		case nl80211.FrequencyAttrNo80mhz:
			flag = &fr.No80MHz
		case nl80211.FrequencyAttrNo160mhz:
			flag = &fr.No160MHz
		case nl80211.FrequencyAttrIndoorOnly:
			flag = &fr.IndoorOnly
		case nl80211.FrequencyAttrIrConcurrent:
			flag = &fr.IRConcurrent
		case nl80211.FrequencyAttrNo20mhz:
			flag = &fr.No20MHz
		case nl80211.FrequencyAttrNo10mhz:
			flag = &fr.No10MHz
		case nl80211.FrequencyAttrNoHe:
			flag = &fr.NoHE
		case nl80211.FrequencyAttr1mhz:
			flag = &fr.Allow1MHz
		case nl80211.FrequencyAttr2mhz:
			flag = &fr.Allow2MHz
		case nl80211.FrequencyAttr4mhz:
			flag = &fr.Allow4MHz
		case nl80211.FrequencyAttr8mhz:
			flag = &fr.Allow8MHz
		case nl80211.FrequencyAttr16mhz:
			flag = &fr.Allow16MHz
		case nl80211.FrequencyAttrNo320mhz:
			flag = &fr.No320MHz
		case nl80211.FrequencyAttrNoEht:
			flag = &fr.NoEHT
		case nl80211.FrequencyAttrDfsConcurrent:
			flag = &fr.DFSConcurrent
		default:
			fr.Extra = append(fr.Extra, unknown(kind, b))
			return nil
		}

		*flag = true
		return nil
	})
	if err != nil {
		return Frequency{}, err
	}

	return fr, nil
}

// decodeInto stores the result of decode(b) in dst.
func decodeInto[T any](dst *T, b []byte, decode func([]byte) (T, error)) error {
	v, err := decode(b)
	if err != nil {
		return err
	}

	*dst = v
	return nil
}

// A WMMRule holds the regulatory WMM limits of one access category.
type WMMRule struct {
	CWMin uint16
	CWMax uint16
	AIFSN uint8
	TXOP  uint16

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (r WMMRule) nest() nestField {
	var f nestField
	f.u16(nl80211.WmmRuleCwMin, r.CWMin)
	f.u16(nl80211.WmmRuleCwMax, r.CWMax)
	f.u8(nl80211.WmmRuleAifsn, r.AIFSN)
	f.u16(nl80211.WmmRuleTxop, r.TXOP)
	f.extra(r.Extra)
	return f
}

func decodeWMMRules(b []byte) ([]WMMRule, error) {
	var out []WMMRule
	err := decodeList("wmm rules", b, func(_ int, _ uint16, b []byte) error {
		var r WMMRule
		err := decodeRecord("wmm rule", b, func(kind uint16, b []byte) error {
			switch kind {
			case nl80211.WmmRuleCwMin:
				return decodeInto(&r.CWMin, b, decodeU16)
			case nl80211.WmmRuleCwMax:
				return decodeInto(&r.CWMax, b, decodeU16)
			case nl80211.WmmRuleAifsn:
				return decodeInto(&r.AIFSN, b, decodeU8)
			case nl80211.WmmRuleTxop:
				return decodeInto(&r.TXOP, b, decodeU16)
			default:
				r.Extra = append(r.Extra, unknown(kind, b))
				return nil
			}
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

// A Bitrate is a legacy bitrate supported within a band.
type Bitrate struct {
	Rate              uint32 // 100 kbit/s
	ShortPreamble2GHz bool

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (r Bitrate) nest() nestField {
	var f nestField
	f.u32(nl80211.BitrateAttrRate, r.Rate)
	f.flag(nl80211.BitrateAttr2ghzShortpreamble, r.ShortPreamble2GHz)
	f.extra(r.Extra)
	return f
}

func decodeBitrates(b []byte) ([]Bitrate, error) {
	var out []Bitrate
	err := decodeList("bitrates", b, func(_ int, _ uint16, b []byte) error {
		var r Bitrate
		err := decodeRecord("bitrate", b, func(kind uint16, b []byte) error {
			switch kind {
			case nl80211.BitrateAttrRate:
				return decodeInto(&r.Rate, b, decodeU32)
			case nl80211.BitrateAttr2ghzShortpreamble:
				r.ShortPreamble2GHz = true
			default:
				r.Extra = append(r.Extra, unknown(kind, b))
			}

			return nil
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

// BandIftypeData holds the HE and EHT capabilities a band offers to a set of
// interface types.
type BandIftypeData struct {
	IfTypes     []InterfaceType
	HEMACCap    *HEMACCapability
	HEPHYCap    *HEPHYCapability
	HEMCSSet    []byte
	HEPPE       []byte
	HE6GHzCapa  uint16
	VendorElems []byte
	EHTMACCap   *EHTMACCapability
	EHTPHYCap   *EHTPHYCapability
	EHTMCSSet   []byte
	EHTPPE      []byte

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (d BandIftypeData) nest() nestField {
	var f nestField
	f.nested(nl80211.BandIftypeAttrIftypes, ifTypesField(d.IfTypes))
	if d.HEMACCap != nil {
		f.add(nl80211.BandIftypeAttrHeCapMac, bytesField(d.HEMACCap[:]))
	}
	if d.HEPHYCap != nil {
		f.add(nl80211.BandIftypeAttrHeCapPhy, bytesField(d.HEPHYCap[:]))
	}
	f.bytes(nl80211.BandIftypeAttrHeCapMcsSet, d.HEMCSSet)
	f.bytes(nl80211.BandIftypeAttrHeCapPpe, d.HEPPE)
	f.u16(nl80211.BandIftypeAttrHe6ghzCapa, d.HE6GHzCapa)
	f.bytes(nl80211.BandIftypeAttrVendorElems, d.VendorElems)
	if d.EHTMACCap != nil {
		f.add(nl80211.BandIftypeAttrEhtCapMac, bytesField(d.EHTMACCap[:]))
	}
	if d.EHTPHYCap != nil {
		f.add(nl80211.BandIftypeAttrEhtCapPhy, bytesField(d.EHTPHYCap[:]))
	}
	f.bytes(nl80211.BandIftypeAttrEhtCapMcsSet, d.EHTMCSSet)
	f.bytes(nl80211.BandIftypeAttrEhtCapPpe, d.EHTPPE)
	f.extra(d.Extra)
	return f
}

func decodeBandIftypeDataList(b []byte) ([]BandIftypeData, error) {
	var out []BandIftypeData
	err := decodeList("iftype data", b, func(_ int, _ uint16, b []byte) error {
		d, err := decodeBandIftypeData(b)
		if err != nil {
			return err
		}

		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decodeBandIftypeData(b []byte) (BandIftypeData, error) {
	var d BandIftypeData
	err := decodeRecord("iftype data", b, func(kind uint16, b []byte) error {
		var err error
		switch kind {
		case nl80211.BandIftypeAttrIftypes:
			d.IfTypes, err = decodeIfTypes("iftypes", b)
		case nl80211.BandIftypeAttrHeCapMac:
			var c HEMACCapability
			if err = decodeFixed(c[:], b); err == nil {
				d.HEMACCap = &c
			}
		case nl80211.BandIftypeAttrHeCapPhy:
			var c HEPHYCapability
			if err = decodeFixed(c[:], b); err == nil {
				d.HEPHYCap = &c
			}
		case nl80211.BandIftypeAttrHeCapMcsSet:
			d.HEMCSSet = cloneBytes(b)
		case nl80211.BandIftypeAttrHeCapPpe:
			d.HEPPE = cloneBytes(b)
		case nl80211.BandIftypeAttrHe6ghzCapa:
			d.HE6GHzCapa, err = decodeU16(b)
		case nl80211.BandIftypeAttrVendorElems:
			d.VendorElems = cloneBytes(b)
		case nl80211.BandIftypeAttrEhtCapMac:
			var c EHTMACCapability
			if err = decodeFixed(c[:], b); err == nil {
				d.EHTMACCap = &c
			}
		case nl80211.BandIftypeAttrEhtCapPhy:
			var c EHTPHYCapability
			if err = decodeFixed(c[:], b); err == nil {
				d.EHTPHYCap = &c
			}
		case nl80211.BandIftypeAttrEhtCapMcsSet:
			d.EHTMCSSet = cloneBytes(b)
		case nl80211.BandIftypeAttrEhtCapPpe:
			d.EHTPPE = cloneBytes(b)
		default:
			d.Extra = append(d.Extra, unknown(kind, b))
		}

		return err
	})
	if err != nil {
		return BandIftypeData{}, err
	}

	return d, nil
}
