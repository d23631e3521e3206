package nl80211

// Multicast groups registered by the nl80211 family. The kernel defines these
// in nl80211.c rather than the uapi header, so the indices are local to this
// package; groups are always joined by name.
const (
	McgrpConfig = iota
	McgrpScan
	McgrpRegulatory
	McgrpMlme
	McgrpVendor
	McgrpNan
	McgrpTestmode
)

// McgrpNames maps the Mcgrp constants to group names.
var McgrpNames = [...]string{
	McgrpConfig:     "config",
	McgrpScan:       "scan",
	McgrpRegulatory: "regulatory",
	McgrpMlme:       "mlme",
	McgrpVendor:     "vendor",
	McgrpNan:        "nan",
	McgrpTestmode:   "testmode",
}
