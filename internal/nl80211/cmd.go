package nl80211

// nl80211_commands enumeration from nl80211.h.
const (
	CmdUnspec                   = 0x0
	CmdGetWiphy                 = 0x1
	CmdSetWiphy                 = 0x2
	CmdNewWiphy                 = 0x3
	CmdDelWiphy                 = 0x4
	CmdGetInterface             = 0x5
	CmdSetInterface             = 0x6
	CmdNewInterface             = 0x7
	CmdDelInterface             = 0x8
	CmdGetKey                   = 0x9
	CmdSetKey                   = 0xa
	CmdNewKey                   = 0xb
	CmdDelKey                   = 0xc
	CmdGetBeacon                = 0xd
	CmdSetBeacon                = 0xe
	CmdStartAp                  = 0xf
	CmdStopAp                   = 0x10
	CmdGetStation               = 0x11
	CmdSetStation               = 0x12
	CmdNewStation               = 0x13
	CmdDelStation               = 0x14
	CmdGetMpath                 = 0x15
	CmdSetMpath                 = 0x16
	CmdNewMpath                 = 0x17
	CmdDelMpath                 = 0x18
	CmdSetBss                   = 0x19
	CmdSetReg                   = 0x1a
	CmdReqSetReg                = 0x1b
	CmdGetMeshConfig            = 0x1c
	CmdSetMeshConfig            = 0x1d
	CmdSetMgmtExtraIe           = 0x1e
	CmdGetReg                   = 0x1f
	CmdGetScan                  = 0x20
	CmdTriggerScan              = 0x21
	CmdNewScanResults           = 0x22
	CmdScanAborted              = 0x23
	CmdRegChange                = 0x24
	CmdAuthenticate             = 0x25
	CmdAssociate                = 0x26
	CmdDeauthenticate           = 0x27
	CmdDisassociate             = 0x28
	CmdMichaelMicFailure        = 0x29
	CmdRegBeaconHint            = 0x2a
	CmdJoinIbss                 = 0x2b
	CmdLeaveIbss                = 0x2c
	CmdTestmode                 = 0x2d
	CmdConnect                  = 0x2e
	CmdRoam                     = 0x2f
	CmdDisconnect               = 0x30
	CmdSetWiphyNetns            = 0x31
	CmdGetSurvey                = 0x32
	CmdNewSurveyResults         = 0x33
	CmdSetPmksa                 = 0x34
	CmdDelPmksa                 = 0x35
	CmdFlushPmksa               = 0x36
	CmdRemainOnChannel          = 0x37
	CmdCancelRemainOnChannel    = 0x38
	CmdSetTxBitrateMask         = 0x39
	CmdRegisterFrame            = 0x3a
	CmdFrame                    = 0x3b
	CmdFrameTxStatus            = 0x3c
	CmdSetPowerSave             = 0x3d
	CmdGetPowerSave             = 0x3e
	CmdSetCqm                   = 0x3f
	CmdNotifyCqm                = 0x40
	CmdSetChannel               = 0x41
	CmdSetWdsPeer               = 0x42
	CmdFrameWaitCancel          = 0x43
	CmdJoinMesh                 = 0x44
	CmdLeaveMesh                = 0x45
	CmdUnprotDeauthenticate     = 0x46
	CmdUnprotDisassociate       = 0x47
	CmdNewPeerCandidate         = 0x48
	CmdGetWowlan                = 0x49
	CmdSetWowlan                = 0x4a
	CmdStartSchedScan           = 0x4b
	CmdStopSchedScan            = 0x4c
	CmdSchedScanResults         = 0x4d
	CmdSchedScanStopped         = 0x4e
	CmdSetRekeyOffload          = 0x4f
	CmdPmksaCandidate           = 0x50
	CmdTdlsOper                 = 0x51
	CmdTdlsMgmt                 = 0x52
	CmdUnexpectedFrame          = 0x53
	CmdProbeClient              = 0x54
	CmdRegisterBeacons          = 0x55
	CmdUnexpected4addrFrame     = 0x56
	CmdSetNoackMap              = 0x57
	CmdChSwitchNotify           = 0x58
	CmdStartP2pDevice           = 0x59
	CmdStopP2pDevice            = 0x5a
	CmdConnFailed               = 0x5b
	CmdSetMcastRate             = 0x5c
	CmdSetMacAcl                = 0x5d
	CmdRadarDetect              = 0x5e
	CmdGetProtocolFeatures      = 0x5f
	CmdUpdateFtIes              = 0x60
	CmdFtEvent                  = 0x61
	CmdCritProtocolStart        = 0x62
	CmdCritProtocolStop         = 0x63
	CmdGetCoalesce              = 0x64
	CmdSetCoalesce              = 0x65
	CmdChannelSwitch            = 0x66
	CmdVendor                   = 0x67
	CmdSetQosMap                = 0x68
	CmdAddTxTs                  = 0x69
	CmdDelTxTs                  = 0x6a
	CmdGetMpp                   = 0x6b
	CmdJoinOcb                  = 0x6c
	CmdLeaveOcb                 = 0x6d
	CmdChSwitchStartedNotify    = 0x6e
	CmdTdlsChannelSwitch        = 0x6f
	CmdTdlsCancelChannelSwitch  = 0x70
	CmdWiphyRegChange           = 0x71
	CmdAbortScan                = 0x72
	CmdStartNan                 = 0x73
	CmdStopNan                  = 0x74
	CmdAddNanFunction           = 0x75
	CmdDelNanFunction           = 0x76
	CmdChangeNanConfig          = 0x77
	CmdNanMatch                 = 0x78
	CmdSetMulticastToUnicast    = 0x79
	CmdUpdateConnectParams      = 0x7a
	CmdSetPmk                   = 0x7b
	CmdDelPmk                   = 0x7c
	CmdPortAuthorized           = 0x7d
	CmdReloadRegdb              = 0x7e
	CmdExternalAuth             = 0x7f
	CmdStaOpmodeChanged         = 0x80
	CmdControlPortFrame         = 0x81
	CmdGetFtmResponderStats     = 0x82
	CmdPeerMeasurementStart     = 0x83
	CmdPeerMeasurementResult    = 0x84
	CmdPeerMeasurementComplete  = 0x85
	CmdNotifyRadar              = 0x86
	CmdUpdateOweInfo            = 0x87
	CmdProbeMeshLink            = 0x88
	CmdSetTidConfig             = 0x89
	CmdUnprotBeacon             = 0x8a
	CmdControlPortFrameTxStatus = 0x8b
	CmdSetSarSpecs              = 0x8c
	CmdObssColorCollision       = 0x8d
	CmdColorChangeRequest       = 0x8e
	CmdColorChangeStarted       = 0x8f
	CmdColorChangeAborted       = 0x90
	CmdColorChangeCompleted     = 0x91
	CmdSetFilsAad               = 0x92
	CmdAssocComeback            = 0x93
	CmdAddLink                  = 0x94
	CmdRemoveLink               = 0x95
	CmdAddLinkSta               = 0x96
	CmdModifyLinkSta            = 0x97
	CmdRemoveLinkSta            = 0x98
	CmdSetHwTimestamp           = 0x99
	CmdLinksRemoved             = 0x9a
	CmdSetTidToLinkMapping      = 0x9b
	CmdMax                      = CmdSetTidToLinkMapping
)
