package wifi

import (
	"github.com/nlwifi/wifi/internal/nl80211"
)

// TXQStats holds transmit queue statistics, either for a whole wiphy or for
// a single TID of a station.
type TXQStats struct {
	BacklogBytes   uint32
	BacklogPackets uint32
	Flows          uint32
	Drops          uint32
	ECNMarks       uint32
	Overlimit      uint32
	Overmemory     uint32
	Collisions     uint32
	TxBytes        uint32
	TxPackets      uint32
	MaxFlows       uint32

	// Extra holds sub-attributes not modeled above.
	Extra []Unknown
}

func (TXQStats) Kind() uint16   { return nl80211.AttrTxqStats }
func (t TXQStats) field() field { return t.nest() }

func (t TXQStats) nest() nestField {
	var f nestField
	f.u32(nl80211.TxqStatsBacklogBytes, t.BacklogBytes)
	f.u32(nl80211.TxqStatsBacklogPackets, t.BacklogPackets)
	f.u32(nl80211.TxqStatsFlows, t.Flows)
	f.u32(nl80211.TxqStatsDrops, t.Drops)
	f.u32(nl80211.TxqStatsEcnMarks, t.ECNMarks)
	f.u32(nl80211.TxqStatsOverlimit, t.Overlimit)
	f.u32(nl80211.TxqStatsOvermemory, t.Overmemory)
	f.u32(nl80211.TxqStatsCollisions, t.Collisions)
	f.u32(nl80211.TxqStatsTxBytes, t.TxBytes)
	f.u32(nl80211.TxqStatsTxPackets, t.TxPackets)
	f.u32(nl80211.TxqStatsMaxFlows, t.MaxFlows)
	f.extra(t.Extra)
	return f
}

func decodeTXQStats(b []byte) (TXQStats, error) {
	var t TXQStats
	err := decodeRecord("txq stats", b, func(kind uint16, b []byte) error {
		var dst *uint32
		switch kind {
		case nl80211.TxqStatsBacklogBytes:
			dst = &t.BacklogBytes
		case nl80211.TxqStatsBacklogPackets:
			dst = &t.BacklogPackets
		case nl80211.TxqStatsFlows:
			dst = &t.Flows
		case nl80211.TxqStatsDrops:
			dst = &t.Drops
		case nl80211.TxqStatsEcnMarks:
			dst = &t.ECNMarks
		case nl80211.TxqStatsOverlimit:
			dst = &t.Overlimit
		case nl80211.TxqStatsOvermemory:
			dst = &t.Overmemory
		case nl80211.TxqStatsCollisions:
			dst = &t.Collisions
		case nl80211.TxqStatsTxBytes:
			dst = &t.TxBytes
		case nl80211.TxqStatsTxPackets:
			dst = &t.TxPackets
		case nl80211.TxqStatsMaxFlows:
			dst = &t.MaxFlows
		default:
			t.Extra = append(t.Extra, unknown(kind, b))
			return nil
		}

		var err error
		*dst, err = decodeU32(b)
		return err
	})
	if err != nil {
		return TXQStats{}, err
	}

	return t, nil
}
