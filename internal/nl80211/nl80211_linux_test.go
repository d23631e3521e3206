//go:build linux
// +build linux

package nl80211

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"
)

func TestKindsMatchKernelHeaders(t *testing.T) {
	tests := []struct {
		name string
		got, want int
	}{
		{name: "ifindex", got: AttrIfindex, want: unix.NL80211_ATTR_IFINDEX},
		{name: "sta info", got: AttrStaInfo, want: unix.NL80211_ATTR_STA_INFO},
		{name: "wiphy bands", got: AttrWiphyBands, want: unix.NL80211_ATTR_WIPHY_BANDS},
		{name: "bss", got: AttrBss, want: unix.NL80211_ATTR_BSS},
		{name: "supported commands", got: AttrSupportedCommands, want: unix.NL80211_ATTR_SUPPORTED_COMMANDS},
		{name: "survey info", got: AttrSurveyInfo, want: unix.NL80211_ATTR_SURVEY_INFO},
		{name: "interface combinations", got: AttrInterfaceCombinations, want: unix.NL80211_ATTR_INTERFACE_COMBINATIONS},
		{name: "mac addrs", got: AttrMacAddrs, want: unix.NL80211_ATTR_MAC_ADDRS},
		{name: "ext features", got: AttrExtFeatures, want: unix.NL80211_ATTR_EXT_FEATURES},
		{name: "iftype ext capa", got: AttrIftypeExtCapa, want: unix.NL80211_ATTR_IFTYPE_EXT_CAPA},

		{name: "get wiphy", got: CmdGetWiphy, want: unix.NL80211_CMD_GET_WIPHY},
		{name: "new interface", got: CmdNewInterface, want: unix.NL80211_CMD_NEW_INTERFACE},
		{name: "del station", got: CmdDelStation, want: unix.NL80211_CMD_DEL_STATION},
		{name: "start ap", got: CmdStartAp, want: unix.NL80211_CMD_START_AP},
		{name: "get reg", got: CmdGetReg, want: unix.NL80211_CMD_GET_REG},
		{name: "trigger scan", got: CmdTriggerScan, want: unix.NL80211_CMD_TRIGGER_SCAN},
		{name: "new scan results", got: CmdNewScanResults, want: unix.NL80211_CMD_NEW_SCAN_RESULTS},
		{name: "connect", got: CmdConnect, want: unix.NL80211_CMD_CONNECT},
		{name: "set power save", got: CmdSetPowerSave, want: unix.NL80211_CMD_SET_POWER_SAVE},

		{name: "sta info signal", got: StaInfoSignal, want: unix.NL80211_STA_INFO_SIGNAL},
		{name: "sta info tx bitrate", got: StaInfoTxBitrate, want: unix.NL80211_STA_INFO_TX_BITRATE},
		{name: "rate info bitrate32", got: RateInfoBitrate32, want: unix.NL80211_RATE_INFO_BITRATE32},
		{name: "bss param dtim period", got: StaBssParamDtimPeriod, want: unix.NL80211_STA_BSS_PARAM_DTIM_PERIOD},
		{name: "tid stats txq stats", got: TidStatsTxqStats, want: unix.NL80211_TID_STATS_TXQ_STATS},
		{name: "txq stats backlog bytes", got: TxqStatsBacklogBytes, want: unix.NL80211_TXQ_STATS_BACKLOG_BYTES},
		{name: "bss status", got: BssStatus, want: unix.NL80211_BSS_STATUS},
		{name: "band freqs", got: BandAttrFreqs, want: unix.NL80211_BAND_ATTR_FREQS},
		{name: "band iftype he phy", got: BandIftypeAttrHeCapPhy, want: unix.NL80211_BAND_IFTYPE_ATTR_HE_CAP_PHY},
		{name: "frequency", got: FrequencyAttrFreq, want: unix.NL80211_FREQUENCY_ATTR_FREQ},
		{name: "bitrate", got: BitrateAttrRate, want: unix.NL80211_BITRATE_ATTR_RATE},
		{name: "combination maxnum", got: IfaceCombMaxnum, want: unix.NL80211_IFACE_COMB_MAXNUM},
		{name: "wowlan disconnect", got: WowlanTrigDisconnect, want: unix.NL80211_WOWLAN_TRIG_DISCONNECT},
		{name: "survey noise", got: SurveyInfoNoise, want: unix.NL80211_SURVEY_INFO_NOISE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Fatalf("unexpected kind (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMulticastGroupNames(t *testing.T) {
	want := []string{
		unix.NL80211_MULTICAST_GROUP_CONFIG,
		unix.NL80211_MULTICAST_GROUP_SCAN,
		unix.NL80211_MULTICAST_GROUP_REG,
		unix.NL80211_MULTICAST_GROUP_MLME,
		unix.NL80211_MULTICAST_GROUP_VENDOR,
		unix.NL80211_MULTICAST_GROUP_NAN,
		unix.NL80211_MULTICAST_GROUP_TESTMODE,
	}

	if diff := cmp.Diff(want, McgrpNames[:]); diff != "" {
		t.Fatalf("unexpected group names (-want +got):\n%s", diff)
	}
}
