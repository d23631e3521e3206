package nl80211

// nl80211_sta_info enumeration from nl80211.h.
const (
	StaInfoInvalid            = 0x0
	StaInfoInactiveTime       = 0x1
	StaInfoRxBytes            = 0x2
	StaInfoTxBytes            = 0x3
	StaInfoLlid               = 0x4
	StaInfoPlid               = 0x5
	StaInfoPlinkState         = 0x6
	StaInfoSignal             = 0x7
	StaInfoTxBitrate          = 0x8
	StaInfoRxPackets          = 0x9
	StaInfoTxPackets          = 0xa
	StaInfoTxRetries          = 0xb
	StaInfoTxFailed           = 0xc
	StaInfoSignalAvg          = 0xd
	StaInfoRxBitrate          = 0xe
	StaInfoBssParam           = 0xf
	StaInfoConnectedTime      = 0x10
	StaInfoStaFlags           = 0x11
	StaInfoBeaconLoss         = 0x12
	StaInfoTOffset            = 0x13
	StaInfoLocalPm            = 0x14
	StaInfoPeerPm             = 0x15
	StaInfoNonpeerPm          = 0x16
	StaInfoRxBytes64          = 0x17
	StaInfoTxBytes64          = 0x18
	StaInfoChainSignal        = 0x19
	StaInfoChainSignalAvg     = 0x1a
	StaInfoExpectedThroughput = 0x1b
	StaInfoRxDropMisc         = 0x1c
	StaInfoBeaconRx           = 0x1d
	StaInfoBeaconSignalAvg    = 0x1e
	StaInfoTidStats           = 0x1f
	StaInfoRxDuration         = 0x20
	StaInfoPad                = 0x21
	StaInfoAckSignal          = 0x22
	StaInfoAckSignalAvg       = 0x23
	StaInfoRxMpdus            = 0x24
	StaInfoFcsErrorCount      = 0x25
	StaInfoConnectedToGate    = 0x26
	StaInfoTxDuration         = 0x27
	StaInfoAirtimeWeight      = 0x28
	StaInfoAirtimeLinkMetric  = 0x29
	StaInfoAssocAtBoottime    = 0x2a
	StaInfoConnectedToAs      = 0x2b
)

// nl80211_rate_info enumeration from nl80211.h.
const (
	RateInfoInvalid       = 0x0
	RateInfoBitrate       = 0x1
	RateInfoMcs           = 0x2
	RateInfo40MhzWidth    = 0x3
	RateInfoShortGi       = 0x4
	RateInfoBitrate32     = 0x5
	RateInfoVhtMcs        = 0x6
	RateInfoVhtNss        = 0x7
	RateInfo80MhzWidth    = 0x8
	RateInfo80p80MhzWidth = 0x9
	RateInfo160MhzWidth   = 0xa
	RateInfo10MhzWidth    = 0xb
	RateInfo5MhzWidth     = 0xc
	RateInfoHeMcs         = 0xd
	RateInfoHeNss         = 0xe
	RateInfoHeGi          = 0xf
	RateInfoHeDcm         = 0x10
	RateInfoHeRuAlloc     = 0x11
	RateInfo320MhzWidth   = 0x12
	RateInfoEhtMcs        = 0x13
	RateInfoEhtNss        = 0x14
	RateInfoEhtGi         = 0x15
	RateInfoEhtRuAlloc    = 0x16
)

// nl80211_sta_bss_param enumeration from nl80211.h.
const (
	StaBssParamInvalid        = 0x0
	StaBssParamCtsProt        = 0x1
	StaBssParamShortPreamble  = 0x2
	StaBssParamShortSlotTime  = 0x3
	StaBssParamDtimPeriod     = 0x4
	StaBssParamBeaconInterval = 0x5
)

// nl80211_tid_stats enumeration from nl80211.h.
const (
	TidStatsInvalid       = 0x0
	TidStatsRxMsdu        = 0x1
	TidStatsTxMsdu        = 0x2
	TidStatsTxMsduRetries = 0x3
	TidStatsTxMsduFailed  = 0x4
	TidStatsPad           = 0x5
	TidStatsTxqStats      = 0x6
)

// nl80211_txq_stats enumeration from nl80211.h.
const (
	TxqStatsInvalid        = 0x0
	TxqStatsBacklogBytes   = 0x1
	TxqStatsBacklogPackets = 0x2
	TxqStatsFlows          = 0x3
	TxqStatsDrops          = 0x4
	TxqStatsEcnMarks       = 0x5
	TxqStatsOverlimit      = 0x6
	TxqStatsOvermemory     = 0x7
	TxqStatsCollisions     = 0x8
	TxqStatsTxBytes        = 0x9
	TxqStatsTxPackets      = 0xa
	TxqStatsMaxFlows       = 0xb
)

// nl80211_bss enumeration from nl80211.h.
const (
	BssInvalid             = 0x0
	BssBssid               = 0x1
	BssFrequency           = 0x2
	BssTsf                 = 0x3
	BssBeaconInterval      = 0x4
	BssCapability          = 0x5
	BssInformationElements = 0x6
	BssSignalMbm           = 0x7
	BssSignalUnspec        = 0x8
	BssStatus              = 0x9
	BssSeenMsAgo           = 0xa
	BssBeaconIes           = 0xb
	BssChanWidth           = 0xc
	BssBeaconTsf           = 0xd
	BssPrespData           = 0xe
	BssLastSeenBoottime    = 0xf
	BssPad                 = 0x10
	BssParentTsf           = 0x11
	BssParentBssid         = 0x12
	BssChainSignal         = 0x13
	BssFrequencyOffset     = 0x14
	BssMloLinkId           = 0x15
	BssMldAddr             = 0x16
	BssUseFor              = 0x17
	BssCannotUseReasons    = 0x18
)

// nl80211_band_attr enumeration from nl80211.h.
const (
	BandAttrInvalid        = 0x0
	BandAttrFreqs          = 0x1
	BandAttrRates          = 0x2
	BandAttrHtMcsSet       = 0x3
	BandAttrHtCapa         = 0x4
	BandAttrHtAmpduFactor  = 0x5
	BandAttrHtAmpduDensity = 0x6
	BandAttrVhtMcsSet      = 0x7
	BandAttrVhtCapa        = 0x8
	BandAttrIftypeData     = 0x9
	BandAttrEdmgChannels   = 0xa
	BandAttrEdmgBwConfig   = 0xb
	BandAttrS1gMcsNssSet   = 0xc
	BandAttrS1gCapa        = 0xd
)

// nl80211_band_iftype_attr enumeration from nl80211.h.
const (
	BandIftypeAttrInvalid      = 0x0
	BandIftypeAttrIftypes      = 0x1
	BandIftypeAttrHeCapMac     = 0x2
	BandIftypeAttrHeCapPhy     = 0x3
	BandIftypeAttrHeCapMcsSet  = 0x4
	BandIftypeAttrHeCapPpe     = 0x5
	BandIftypeAttrHe6ghzCapa   = 0x6
	BandIftypeAttrVendorElems  = 0x7
	BandIftypeAttrEhtCapMac    = 0x8
	BandIftypeAttrEhtCapPhy    = 0x9
	BandIftypeAttrEhtCapMcsSet = 0xa
	BandIftypeAttrEhtCapPpe    = 0xb
)

// nl80211_frequency_attr enumeration from nl80211.h.
const (
	FrequencyAttrInvalid       = 0x0
	FrequencyAttrFreq          = 0x1
	FrequencyAttrDisabled      = 0x2
	FrequencyAttrNoIr          = 0x3
	FrequencyAttrNoIbss        = 0x4
	FrequencyAttrRadar         = 0x5
	FrequencyAttrMaxTxPower    = 0x6
	FrequencyAttrDfsState      = 0x7
	FrequencyAttrDfsTime       = 0x8
	FrequencyAttrNoHt40Minus   = 0x9
	FrequencyAttrNoHt40Plus    = 0xa
	FrequencyAttrNo80mhz       = 0xb
	FrequencyAttrNo160mhz      = 0xc
	FrequencyAttrDfsCacTime    = 0xd
	FrequencyAttrIndoorOnly    = 0xe
	FrequencyAttrIrConcurrent  = 0xf
	FrequencyAttrNo20mhz       = 0x10
	FrequencyAttrNo10mhz       = 0x11
	FrequencyAttrWmm           = 0x12
	FrequencyAttrNoHe          = 0x13
	FrequencyAttrOffset        = 0x14
	FrequencyAttr1mhz          = 0x15
	FrequencyAttr2mhz          = 0x16
	FrequencyAttr4mhz          = 0x17
	FrequencyAttr8mhz          = 0x18
	FrequencyAttr16mhz         = 0x19
	FrequencyAttrNo320mhz      = 0x1a
	FrequencyAttrNoEht         = 0x1b
	FrequencyAttrPsd           = 0x1c
	FrequencyAttrDfsConcurrent = 0x1d
)

// nl80211_wmm_rule enumeration from nl80211.h.
const (
	WmmRuleInvalid = 0x0
	WmmRuleCwMin   = 0x1
	WmmRuleCwMax   = 0x2
	WmmRuleAifsn   = 0x3
	WmmRuleTxop    = 0x4
)

// nl80211_bitrate_attr enumeration from nl80211.h.
const (
	BitrateAttrInvalid           = 0x0
	BitrateAttrRate              = 0x1
	BitrateAttr2ghzShortpreamble = 0x2
)

// nl80211_if_combination_attrs enumeration from nl80211.h.
const (
	IfaceCombUnspec             = 0x0
	IfaceCombLimits             = 0x1
	IfaceCombMaxnum             = 0x2
	IfaceCombStaApBiMatch       = 0x3
	IfaceCombNumChannels        = 0x4
	IfaceCombRadarDetectWidths  = 0x5
	IfaceCombRadarDetectRegions = 0x6
	IfaceCombBiMinGcd           = 0x7
)

// nl80211_iface_limit_attrs enumeration from nl80211.h.
const (
	IfaceLimitUnspec = 0x0
	IfaceLimitMax    = 0x1
	IfaceLimitTypes  = 0x2
)

// nl80211_wowlan_triggers enumeration from nl80211.h.
const (
	WowlanTrigInvalid                   = 0x0
	WowlanTrigAny                       = 0x1
	WowlanTrigDisconnect                = 0x2
	WowlanTrigMagicPkt                  = 0x3
	WowlanTrigPktPattern                = 0x4
	WowlanTrigGtkRekeySupported         = 0x5
	WowlanTrigGtkRekeyFailure           = 0x6
	WowlanTrigEapIdentRequest           = 0x7
	WowlanTrig4wayHandshake             = 0x8
	WowlanTrigRfkillRelease             = 0x9
	WowlanTrigWakeupPkt80211            = 0xa
	WowlanTrigWakeupPkt80211Len         = 0xb
	WowlanTrigWakeupPkt8023             = 0xc
	WowlanTrigWakeupPkt8023Len          = 0xd
	WowlanTrigTcpConnection             = 0xe
	WowlanTrigWakeupTcpMatch            = 0xf
	WowlanTrigWakeupTcpConnlost         = 0x10
	WowlanTrigWakeupTcpNomoretokens     = 0x11
	WowlanTrigNetDetect                 = 0x12
	WowlanTrigNetDetectResults          = 0x13
	WowlanTrigUnprotectedDeauthDisassoc = 0x14
)

// nl80211_survey_info enumeration from nl80211.h.
const (
	SurveyInfoInvalid         = 0x0
	SurveyInfoFrequency       = 0x1
	SurveyInfoNoise           = 0x2
	SurveyInfoInUse           = 0x3
	SurveyInfoTime            = 0x4
	SurveyInfoTimeBusy        = 0x5
	SurveyInfoTimeExtBusy     = 0x6
	SurveyInfoTimeRx          = 0x7
	SurveyInfoTimeTx          = 0x8
	SurveyInfoTimeScan        = 0x9
	SurveyInfoPad             = 0xa
	SurveyInfoTimeBssRx       = 0xb
	SurveyInfoFrequencyOffset = 0xc
)
// nl80211_reg_rule_attr enumeration from nl80211.h.
const (
	RegRuleAttrInvalid             = 0x0
	RegRuleAttrFlags               = 0x1
	RegRuleAttrFreqRangeStart      = 0x2
	RegRuleAttrFreqRangeEnd        = 0x3
	RegRuleAttrFreqRangeMaxBw      = 0x4
	RegRuleAttrPowerRuleMaxAntGain = 0x5
	RegRuleAttrPowerRuleMaxEirp    = 0x6
	RegRuleAttrDfsCacTime          = 0x7
	RegRuleAttrPowerRulePsd        = 0x8
)
