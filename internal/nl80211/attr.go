package nl80211

// nl80211_attrs enumeration from nl80211.h. Kinds not listed here are still
// representable on the wire and decode to an opaque attribute.

const (
	AttrUnspec                       = 0x0
	AttrWiphy                        = 0x1
	AttrWiphyName                    = 0x2
	AttrIfindex                      = 0x3
	AttrIfname                       = 0x4
	AttrIftype                       = 0x5
	AttrMac                          = 0x6
	AttrKeyData                      = 0x7
	AttrKeyIdx                       = 0x8
	AttrKeyCipher                    = 0x9
	AttrKeySeq                       = 0xa
	AttrKeyDefault                   = 0xb
	AttrBeaconInterval               = 0xc
	AttrDtimPeriod                   = 0xd
	AttrBeaconHead                   = 0xe
	AttrBeaconTail                   = 0xf
	AttrStaAid                       = 0x10
	AttrStaFlags                     = 0x11
	AttrStaListenInterval            = 0x12
	AttrStaSupportedRates            = 0x13
	AttrStaVlan                      = 0x14
	AttrStaInfo                      = 0x15
	AttrWiphyBands                   = 0x16
	AttrMntrFlags                    = 0x17
	AttrMeshId                       = 0x18
	AttrStaPlinkAction               = 0x19
	AttrMpathNextHop                 = 0x1a
	AttrMpathInfo                    = 0x1b
	AttrBssCtsProt                   = 0x1c
	AttrBssShortPreamble             = 0x1d
	AttrBssShortSlotTime             = 0x1e
	AttrHtCapability                 = 0x1f
	AttrSupportedIftypes             = 0x20
	AttrRegAlpha2                    = 0x21
	AttrRegRules                     = 0x22
	AttrMeshConfig                   = 0x23
	AttrBssBasicRates                = 0x24
	AttrWiphyTxqParams               = 0x25
	AttrWiphyFreq                    = 0x26
	AttrWiphyChannelType             = 0x27
	AttrKeyDefaultMgmt               = 0x28
	AttrMgmtSubtype                  = 0x29
	AttrIe                           = 0x2a
	AttrMaxNumScanSsids              = 0x2b
	AttrScanFrequencies              = 0x2c
	AttrScanSsids                    = 0x2d
	AttrGeneration                   = 0x2e
	AttrBss                          = 0x2f
	AttrRegInitiator                 = 0x30
	AttrRegType                      = 0x31
	AttrSupportedCommands            = 0x32
	AttrFrame                        = 0x33
	AttrSsid                         = 0x34
	AttrAuthType                     = 0x35
	AttrReasonCode                   = 0x36
	AttrKeyType                      = 0x37
	AttrMaxScanIeLen                 = 0x38
	AttrCipherSuites                 = 0x39
	AttrFreqBefore                   = 0x3a
	AttrFreqAfter                    = 0x3b
	AttrFreqFixed                    = 0x3c
	AttrWiphyRetryShort              = 0x3d
	AttrWiphyRetryLong               = 0x3e
	AttrWiphyFragThreshold           = 0x3f
	AttrWiphyRtsThreshold            = 0x40
	AttrTimedOut                     = 0x41
	AttrUseMfp                       = 0x42
	AttrStaFlags2                    = 0x43
	AttrControlPort                  = 0x44
	AttrTestdata                     = 0x45
	AttrPrivacy                      = 0x46
	AttrDisconnectedByAp             = 0x47
	AttrStatusCode                   = 0x48
	AttrCipherSuitesPairwise         = 0x49
	AttrCipherSuiteGroup             = 0x4a
	AttrWpaVersions                  = 0x4b
	AttrAkmSuites                    = 0x4c
	AttrReqIe                        = 0x4d
	AttrRespIe                       = 0x4e
	AttrPrevBssid                    = 0x4f
	AttrKey                          = 0x50
	AttrKeys                         = 0x51
	AttrPid                          = 0x52
	Attr4addr                        = 0x53
	AttrSurveyInfo                   = 0x54
	AttrPmkid                        = 0x55
	AttrMaxNumPmkids                 = 0x56
	AttrDuration                     = 0x57
	AttrCookie                       = 0x58
	AttrWiphyCoverageClass           = 0x59
	AttrTxRates                      = 0x5a
	AttrFrameMatch                   = 0x5b
	AttrAck                          = 0x5c
	AttrPsState                      = 0x5d
	AttrCqm                          = 0x5e
	AttrLocalStateChange             = 0x5f
	AttrApIsolate                    = 0x60
	AttrWiphyTxPowerSetting          = 0x61
	AttrWiphyTxPowerLevel            = 0x62
	AttrTxFrameTypes                 = 0x63
	AttrRxFrameTypes                 = 0x64
	AttrFrameType                    = 0x65
	AttrControlPortEthertype         = 0x66
	AttrControlPortNoEncrypt         = 0x67
	AttrSupportIbssRsn               = 0x68
	AttrWiphyAntennaTx               = 0x69
	AttrWiphyAntennaRx               = 0x6a
	AttrMcastRate                    = 0x6b
	AttrOffchannelTxOk               = 0x6c
	AttrBssHtOpmode                  = 0x6d
	AttrKeyDefaultTypes              = 0x6e
	AttrMaxRemainOnChannelDuration   = 0x6f
	AttrMeshSetup                    = 0x70
	AttrWiphyAntennaAvailTx          = 0x71
	AttrWiphyAntennaAvailRx          = 0x72
	AttrSupportMeshAuth              = 0x73
	AttrStaPlinkState                = 0x74
	AttrWowlanTriggers               = 0x75
	AttrWowlanTriggersSupported      = 0x76
	AttrSchedScanInterval            = 0x77
	AttrInterfaceCombinations        = 0x78
	AttrSoftwareIftypes              = 0x79
	AttrRekeyData                    = 0x7a
	AttrMaxNumSchedScanSsids         = 0x7b
	AttrMaxSchedScanIeLen            = 0x7c
	AttrScanSuppRates                = 0x7d
	AttrHiddenSsid                   = 0x7e
	AttrIeProbeResp                  = 0x7f
	AttrIeAssocResp                  = 0x80
	AttrStaWme                       = 0x81
	AttrSupportApUapsd               = 0x82
	AttrRoamSupport                  = 0x83
	AttrSchedScanMatch               = 0x84
	AttrMaxMatchSets                 = 0x85
	AttrPmksaCandidate               = 0x86
	AttrTxNoCckRate                  = 0x87
	AttrTdlsAction                   = 0x88
	AttrTdlsDialogToken              = 0x89
	AttrTdlsOperation                = 0x8a
	AttrTdlsSupport                  = 0x8b
	AttrTdlsExternalSetup            = 0x8c
	AttrDeviceApSme                  = 0x8d
	AttrDontWaitForAck               = 0x8e
	AttrFeatureFlags                 = 0x8f
	AttrProbeRespOffload             = 0x90
	AttrProbeResp                    = 0x91
	AttrDfsRegion                    = 0x92
	AttrDisableHt                    = 0x93
	AttrHtCapabilityMask             = 0x94
	AttrNoackMap                     = 0x95
	AttrInactivityTimeout            = 0x96
	AttrRxSignalDbm                  = 0x97
	AttrBgScanPeriod                 = 0x98
	AttrWdev                         = 0x99
	AttrUserRegHintType              = 0x9a
	AttrConnFailedReason             = 0x9b
	AttrAuthData                     = 0x9c
	AttrVhtCapability                = 0x9d
	AttrScanFlags                    = 0x9e
	AttrChannelWidth                 = 0x9f
	AttrCenterFreq1                  = 0xa0
	AttrCenterFreq2                  = 0xa1
	AttrP2pCtwindow                  = 0xa2
	AttrP2pOppps                     = 0xa3
	AttrLocalMeshPowerMode           = 0xa4
	AttrAclPolicy                    = 0xa5
	AttrMacAddrs                     = 0xa6
	AttrMacAclMax                    = 0xa7
	AttrRadarEvent                   = 0xa8
	AttrExtCapa                      = 0xa9
	AttrExtCapaMask                  = 0xaa
	AttrStaCapability                = 0xab
	AttrStaExtCapability             = 0xac
	AttrProtocolFeatures             = 0xad
	AttrSplitWiphyDump               = 0xae
	AttrDisableVht                   = 0xaf
	AttrVhtCapabilityMask            = 0xb0
	AttrMdid                         = 0xb1
	AttrIeRic                        = 0xb2
	AttrCritProtId                   = 0xb3
	AttrMaxCritProtDuration          = 0xb4
	AttrPeerAid                      = 0xb5
	AttrCoalesceRule                 = 0xb6
	AttrChSwitchCount                = 0xb7
	AttrChSwitchBlockTx              = 0xb8
	AttrCsaIes                       = 0xb9
	AttrCntdwnOffsBeacon             = 0xba
	AttrCntdwnOffsPresp              = 0xbb
	AttrRxmgmtFlags                  = 0xbc
	AttrStaSupportedChannels         = 0xbd
	AttrStaSupportedOperClasses      = 0xbe
	AttrHandleDfs                    = 0xbf
	AttrSupport5Mhz                  = 0xc0
	AttrSupport10Mhz                 = 0xc1
	AttrOpmodeNotif                  = 0xc2
	AttrVendorId                     = 0xc3
	AttrVendorSubcmd                 = 0xc4
	AttrVendorData                   = 0xc5
	AttrVendorEvents                 = 0xc6
	AttrQosMap                       = 0xc7
	AttrMacHint                      = 0xc8
	AttrWiphyFreqHint                = 0xc9
	AttrMaxApAssocSta                = 0xca
	AttrTdlsPeerCapability           = 0xcb
	AttrSocketOwner                  = 0xcc
	AttrCsaCOffsetsTx                = 0xcd
	AttrMaxCsaCounters               = 0xce
	AttrTdlsInitiator                = 0xcf
	AttrUseRrm                       = 0xd0
	AttrWiphyDynAck                  = 0xd1
	AttrTsid                         = 0xd2
	AttrUserPrio                     = 0xd3
	AttrAdmittedTime                 = 0xd4
	AttrSmpsMode                     = 0xd5
	AttrOperClass                    = 0xd6
	AttrMacMask                      = 0xd7
	AttrWiphySelfManagedReg          = 0xd8
	AttrExtFeatures                  = 0xd9
	AttrSurveyRadioStats             = 0xda
	AttrNetnsFd                      = 0xdb
	AttrSchedScanDelay               = 0xdc
	AttrRegIndoor                    = 0xdd
	AttrMaxNumSchedScanPlans         = 0xde
	AttrMaxScanPlanInterval          = 0xdf
	AttrMaxScanPlanIterations        = 0xe0
	AttrSchedScanPlans               = 0xe1
	AttrPbss                         = 0xe2
	AttrBssSelect                    = 0xe3
	AttrStaSupportP2pPs              = 0xe4
	AttrPad                          = 0xe5
	AttrIftypeExtCapa                = 0xe6
	AttrMuMimoGroupData              = 0xe7
	AttrMuMimoFollowMacAddr          = 0xe8
	AttrScanStartTimeTsf             = 0xe9
	AttrScanStartTimeTsfBssid        = 0xea
	AttrMeasurementDuration          = 0xeb
	AttrMeasurementDurationMandatory = 0xec
	AttrMeshPeerAid                  = 0xed
	AttrNanMasterPref                = 0xee
	AttrBands                        = 0xef
	AttrNanFunc                      = 0xf0
	AttrNanMatch                     = 0xf1
	AttrFilsKek                      = 0xf2
	AttrFilsNonces                   = 0xf3
	AttrMulticastToUnicastEnabled    = 0xf4
	AttrBssid                        = 0xf5
	AttrSchedScanRelativeRssi        = 0xf6
	AttrSchedScanRssiAdjust          = 0xf7
	AttrTimeoutReason                = 0xf8
	AttrFilsErpUsername              = 0xf9
	AttrFilsErpRealm                 = 0xfa
	AttrFilsErpNextSeqNum            = 0xfb
	AttrFilsErpRrk                   = 0xfc
	AttrFilsCacheId                  = 0xfd
	AttrPmk                          = 0xfe
	AttrSchedScanMulti               = 0xff
	AttrSchedScanMaxReqs             = 0x100
	AttrWant1x4wayHs                 = 0x101
	AttrPmkr0Name                    = 0x102
	AttrPortAuthorized               = 0x103
	AttrExternalAuthAction           = 0x104
	AttrExternalAuthSupport          = 0x105
	AttrNss                          = 0x106
	AttrAckSignal                    = 0x107
	AttrControlPortOverNl80211       = 0x108
	AttrTxqStats                     = 0x109
	AttrTxqLimit                     = 0x10a
	AttrTxqMemoryLimit               = 0x10b
	AttrTxqQuantum                   = 0x10c
	AttrHeCapability                 = 0x10d
	AttrFtmResponder                 = 0x10e
	AttrFtmResponderStats            = 0x10f
	AttrTimeout                      = 0x110
	AttrPeerMeasurements             = 0x111
	AttrAirtimeWeight                = 0x112
	AttrStaTxPowerSetting            = 0x113
	AttrStaTxPower                   = 0x114
	AttrSaePassword                  = 0x115
	AttrTwtResponder                 = 0x116
	AttrHeObssPd                     = 0x117
	AttrWiphyEdmgChannels            = 0x118
	AttrWiphyEdmgBwConfig            = 0x119
	AttrVlanId                       = 0x11a
	AttrHeBssColor                   = 0x11b
	AttrIftypeAkmSuites              = 0x11c
	AttrTidConfig                    = 0x11d
	AttrControlPortNoPreauth         = 0x11e
	AttrPmkLifetime                  = 0x11f
	AttrPmkReauthThreshold           = 0x120
	AttrReceiveMulticast             = 0x121
	AttrWiphyFreqOffset              = 0x122
	AttrCenterFreq1Offset            = 0x123
	AttrScanFreqKhz                  = 0x124
	AttrHe6ghzCapability             = 0x125
	AttrFilsDiscovery                = 0x126
	AttrUnsolBcastProbeResp          = 0x127
	AttrS1gCapability                = 0x128
	AttrS1gCapabilityMask            = 0x129
	AttrSaePwe                       = 0x12a
	AttrReconnectRequested           = 0x12b
	AttrSarSpec                      = 0x12c
	AttrDisableHe                    = 0x12d
	AttrObssColorBitmap              = 0x12e
	AttrColorChangeCount             = 0x12f
	AttrColorChangeColor             = 0x130
	AttrColorChangeElems             = 0x131
	AttrMbssidConfig                 = 0x132
	AttrMbssidElems                  = 0x133
	AttrRadarBackground              = 0x134
	AttrApSettingsFlags              = 0x135
	AttrEhtCapability                = 0x136
	AttrDisableEht                   = 0x137
	AttrMloLinks                     = 0x138
	AttrMloLinkId                    = 0x139
	AttrMldAddr                      = 0x13a
	AttrMloSupport                   = 0x13b
	AttrMaxNumAkmSuites              = 0x13c
	AttrEmlCapability                = 0x13d
	AttrMldCapaAndOps                = 0x13e
	AttrTxHwTimestamp                = 0x13f
	AttrRxHwTimestamp                = 0x140
	AttrTdBitmap                     = 0x141
	AttrPunctBitmap                  = 0x142
	AttrMaxHwTimestampPeers          = 0x143
	AttrHwTimestampEnabled           = 0x144
	AttrEmaRnrElems                  = 0x145
	AttrMloLinkDisabled              = 0x146
	AttrBssDumpIncludeUseData        = 0x147
	AttrMloTtlmDlink                 = 0x148
	AttrMloTtlmUlink                 = 0x149
	AttrAssocSppAmsdu                = 0x14a
	AttrWiphyRadios                  = 0x14b
	AttrWiphyInterfaceCombinations   = 0x14c
	AttrMax                          = AttrWiphyInterfaceCombinations
)
