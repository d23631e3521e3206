package wifi

import (
	"errors"
	"net"
	"os"
	"time"

	"github.com/google/gopacket/layers"
)

// Replies to the commands used by the high-level client operations.
var replyCommands = map[Command]Command{
	CommandGetWiphy:     CommandNewWiphy,
	CommandGetInterface: CommandNewInterface,
	CommandNewInterface: CommandNewInterface,
	CommandGetStation:   CommandNewStation,
	CommandGetScan:      CommandNewScanResults,
	CommandGetSurvey:    CommandNewSurveyResults,
	CommandGetReg:       CommandGetReg,
}

// parseInterfaces parses zero or more Interfaces from nl80211 interface
// messages.
func parseInterfaces(msgs []Message) []*Interface {
	ifis := make([]*Interface, 0, len(msgs))
	for _, m := range msgs {
		ifis = append(ifis, parseInterface(m))
	}

	return ifis
}

// parseInterface parses an Interface's fields from a message.
func parseInterface(m Message) *Interface {
	var ifi Interface
	for _, a := range m.Attributes {
		switch a := a.(type) {
		case IfIndex:
			ifi.Index = int(a)
		case IfName:
			ifi.Name = string(a)
		case MAC:
			ifi.HardwareAddr = net.HardwareAddr(cloneBytes(a[:]))
		case Wiphy:
			ifi.PHY = int(a)
		case IfType:
			ifi.Type = InterfaceType(a)
		case Wdev:
			ifi.Device = int(a)
		case WiphyFreq:
			ifi.Frequency = int(a)
		case ChanWidth:
			ifi.ChannelWidth = ChannelWidth(a)
		case WiphyTxPowerLevel:
			ifi.TxPower = int(a)
		case SSID:
			ifi.SSID = decodeSSID(a)
		case Use4Addr:
			ifi.Use4Addr = bool(a)
		}
	}

	return &ifi
}

// parseStation parses a Station from a station message. A message without
// statistics is reported as os.ErrNotExist.
func parseStation(m Message) (*Station, error) {
	info, ok := Get[StationInfo](m)
	if !ok {
		return nil, os.ErrNotExist
	}

	s := Station{
		// Though nl80211 does not specify, this value appears to be in seconds.
		Connected:          time.Duration(info.ConnectedTime) * time.Second,
		Inactive:           time.Duration(info.InactiveTime) * time.Millisecond,
		ReceivedBytes:      int(info.RxBytes64),
		TransmittedBytes:   int(info.TxBytes64),
		ReceivedPackets:    int(info.RxPackets),
		TransmittedPackets: int(info.TxPackets),
		Signal:             int(info.Signal),
		SignalAverage:      int(info.SignalAvg),
		TransmitRetries:    int(info.TxRetries),
		TransmitFailed:     int(info.TxFailed),
		BeaconLoss:         int(info.BeaconLoss),
		Info:               info,
	}

	// Only use 32-bit counters if the 64-bit counters are not present.
	if s.ReceivedBytes == 0 {
		s.ReceivedBytes = int(info.RxBytes)
	}
	if s.TransmittedBytes == 0 {
		s.TransmittedBytes = int(info.TxBytes)
	}

	if info.RxBitrate != nil {
		s.ReceiveBitrate = info.RxBitrate.BitsPerSecond()
	}
	if info.TxBitrate != nil {
		s.TransmitBitrate = info.TxBitrate.BitsPerSecond()
	}

	if v, ok := Get[IfIndex](m); ok {
		s.InterfaceIndex = int(v)
	}
	if v, ok := Get[MAC](m); ok {
		s.HardwareAddr = net.HardwareAddr(cloneBytes(v[:]))
	}

	return &s, nil
}

// parseBSS parses the BSS an interface is associated with from scan result
// messages. Only that BSS carries a status.
func parseBSS(msgs []Message) (*BSS, error) {
	for _, m := range msgs {
		info, ok := Get[BSSInfo](m)
		if !ok || info.Status == nil {
			continue
		}

		return parseBSSInfo(info)
	}

	return nil, os.ErrNotExist
}

// parseGetScanResult parses every BSS from scan result messages. A BSS whose
// information elements are malformed is skipped.
func parseGetScanResult(msgs []Message) []*BSS {
	bsss := make([]*BSS, 0, len(msgs))
	for _, m := range msgs {
		info, ok := Get[BSSInfo](m)
		if !ok {
			continue
		}

		bss, err := parseBSSInfo(info)
		if err != nil {
			continue
		}

		bsss = append(bsss, bss)
	}

	return bsss
}

// parseBSSInfo converts a scan result record to a BSS.
func parseBSSInfo(info BSSInfo) (*BSS, error) {
	b := BSS{
		BSSID:     net.HardwareAddr(cloneBytes(info.BSSID[:])),
		Frequency: int(info.Frequency),
		// Raw value is in "Time Units (TU)".  See:
		// https://en.wikipedia.org/wiki/Beacon_frame
		BeaconInterval: time.Duration(info.BeaconInterval) * 1024 * time.Microsecond,
		LastSeen:       time.Duration(info.SeenMsAgo) * time.Millisecond,
		Status:         BSSStatusNotAssociated,
		Signal:         int(info.SignalMBM) / 100,
	}
	if info.Status != nil {
		b.Status = *info.Status
	}

	ies, err := parseIEs(info.InformationElements)
	if err != nil {
		return nil, err
	}

	for _, ie := range ies {
		switch ie.ID {
		case layers.Dot11InformationElementIDSSID:
			b.SSID = decodeSSID(ie.Data)
		case layers.Dot11InformationElementIDQBSSLoadElem:
			load, err := decodeBSSLoad(ie.Data)
			if err != nil {
				// This IE is malformed.
				continue
			}
			b.Load = *load
		case layers.Dot11InformationElementIDRSNInfo:
			rsn, err := decodeRSN(ie.Data)
			if err != nil {
				continue
			}
			b.RSN = *rsn
		}
	}

	return &b, nil
}

// parseSurvey parses a Survey from a survey message. A message without survey
// data is reported as os.ErrNotExist.
func parseSurvey(m Message) (*Survey, error) {
	info, ok := Get[SurveyInfo](m)
	if !ok {
		return nil, os.ErrNotExist
	}

	ms := func(v uint64) time.Duration { return time.Duration(v) * time.Millisecond }
	s := Survey{
		Frequency:          int(info.Frequency),
		Noise:              int(info.Noise),
		InUse:              info.InUse,
		ChannelTime:        ms(info.Time),
		ChannelTimeBusy:    ms(info.TimeBusy),
		ChannelTimeExtBusy: ms(info.TimeExtBusy),
		ChannelTimeBssRx:   ms(info.TimeBSSRx),
		ChannelTimeRx:      ms(info.TimeRx),
		ChannelTimeTx:      ms(info.TimeTx),
		ChannelTimeScan:    ms(info.TimeScan),
	}
	if v, ok := Get[IfIndex](m); ok {
		s.InterfaceIndex = int(v)
	}

	return &s, nil
}

// parsePHYs merges the messages of a split wiphy dump into one PHY per
// device, in the order devices first appear.
func parsePHYs(msgs []Message) ([]*PHY, error) {
	var (
		phys  []*PHY
		index = make(map[int]*PHY)
	)

	for _, m := range msgs {
		w, ok := Get[Wiphy](m)
		if !ok {
			return nil, errors.New("wifi: wiphy message without wiphy index")
		}

		p, ok := index[int(w)]
		if !ok {
			p = &PHY{Index: int(w)}
			index[p.Index] = p
			phys = append(phys, p)
		}

		p.merge(m)
	}

	for _, p := range phys {
		for _, b := range p.Bands {
			p.BandAttributes = append(p.BandAttributes, bandAttributes(b))
		}
	}

	return phys, nil
}

// merge applies the attributes of one wiphy message to p.
func (p *PHY) merge(m Message) {
	for _, a := range m.Attributes {
		switch a := a.(type) {
		case Wiphy:
		case WiphyName:
			p.Name = string(a)
		case SupportedIftypes:
			p.SupportedIftypes = append(p.SupportedIftypes, a...)
		case SoftwareIftypes:
			p.SoftwareIftypes = append(p.SoftwareIftypes, a...)
		case WiphyBands:
			for _, b := range a {
				p.mergeBand(b)
			}
		case InterfaceCombinations:
			p.InterfaceCombinations = append(p.InterfaceCombinations, a...)
		case SupportedCommands:
			p.SupportedCommands = append(p.SupportedCommands, a...)
		case CipherSuites:
			p.CipherSuites = append(p.CipherSuites, a...)
		case FeatureFlags:
			p.Features = a
		case ExtFeatures:
			p.ExtFeatures = a
		case Unknown:
			p.Extra = append(p.Extra, a)
		}
	}
}

// mergeBand adds b to p's bands. A split dump may spread one band across
// several messages.
func (p *PHY) mergeBand(b WiphyBand) {
	for i := range p.Bands {
		pb := &p.Bands[i]
		if pb.Band != b.Band {
			continue
		}

		pb.Frequencies = append(pb.Frequencies, b.Frequencies...)
		pb.Bitrates = append(pb.Bitrates, b.Bitrates...)
		pb.IftypeData = append(pb.IftypeData, b.IftypeData...)
		pb.Extra = append(pb.Extra, b.Extra...)
		if len(b.HTMCSSet) > 0 {
			pb.HTMCSSet = b.HTMCSSet
			pb.HTCapa = b.HTCapa
			pb.HTAMPDUFactor = b.HTAMPDUFactor
			pb.HTAMPDUDensity = b.HTAMPDUDensity
		}
		if len(b.VHTMCSSet) > 0 {
			pb.VHTMCSSet = b.VHTMCSSet
			pb.VHTCapa = b.VHTCapa
		}
		return
	}

	p.Bands = append(p.Bands, b)
}

// bandAttributes interprets a band record.
func bandAttributes(b WiphyBand) BandAttributes {
	ba := BandAttributes{
		Band:            b.Band,
		HTCapabilities:  b.HTCapabilities(),
		VHTCapabilities: b.VHTCapabilities(),
	}
	if blk, ok := b.HTCapabilityBlock(); ok {
		ba.MinRxAMPDUSpacing = blk.MinRxAMPDUSpacing()
	}

	for _, f := range b.Frequencies {
		ba.FrequencyAttributes = append(ba.FrequencyAttributes, FrequencyAttrs{
			Frequency:      int(f.Freq),
			Disabled:       f.Disabled,
			NoIR:           f.NoIR,
			RadarDetection: f.Radar,
			MaxTxPower:     float32(f.MaxTxPower) / 100,
		})
	}

	for _, r := range b.Bitrates {
		ba.BitrateAttributes = append(ba.BitrateAttributes, BitrateAttrs{
			Bitrate:       float32(r.Rate) / 10,
			ShortPreamble: r.ShortPreamble2GHz,
		})
	}

	return ba
}

// parseRegulatory parses a regulatory domain message.
func parseRegulatory(m Message) *RegulatoryDomain {
	rd := RegulatoryDomain{PHY: -1}
	for _, a := range m.Attributes {
		switch a := a.(type) {
		case RegAlpha2:
			rd.Alpha2 = string(a)
		case DFSRegion:
			rd.DFSRegion = DFSDomain(a)
		case Wiphy:
			rd.PHY = int(a)
		case RegRules:
			rd.Rules = append(rd.Rules, a...)
		}
	}

	return &rd
}
