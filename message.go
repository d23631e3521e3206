package wifi

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mdlayher/netlink"
	"github.com/nlwifi/wifi/internal/nl80211"
)

// A Command is an nl80211 generic netlink command.
type Command uint8

// Commands used by this package. Any other value may still be sent or
// received as a Command.
const (
	CommandGetWiphy         Command = nl80211.CmdGetWiphy
	CommandSetWiphy         Command = nl80211.CmdSetWiphy
	CommandNewWiphy         Command = nl80211.CmdNewWiphy
	CommandDelWiphy         Command = nl80211.CmdDelWiphy
	CommandGetInterface     Command = nl80211.CmdGetInterface
	CommandSetInterface     Command = nl80211.CmdSetInterface
	CommandNewInterface     Command = nl80211.CmdNewInterface
	CommandDelInterface     Command = nl80211.CmdDelInterface
	CommandStartAP          Command = nl80211.CmdStartAp
	CommandStopAP           Command = nl80211.CmdStopAp
	CommandGetStation       Command = nl80211.CmdGetStation
	CommandNewStation       Command = nl80211.CmdNewStation
	CommandSetReg           Command = nl80211.CmdSetReg
	CommandReqSetReg        Command = nl80211.CmdReqSetReg
	CommandGetReg           Command = nl80211.CmdGetReg
	CommandGetScan          Command = nl80211.CmdGetScan
	CommandTriggerScan      Command = nl80211.CmdTriggerScan
	CommandNewScanResults   Command = nl80211.CmdNewScanResults
	CommandScanAborted      Command = nl80211.CmdScanAborted
	CommandRegChange        Command = nl80211.CmdRegChange
	CommandConnect          Command = nl80211.CmdConnect
	CommandDisconnect       Command = nl80211.CmdDisconnect
	CommandGetSurvey        Command = nl80211.CmdGetSurvey
	CommandNewSurveyResults Command = nl80211.CmdNewSurveyResults
	CommandRegisterFrame    Command = nl80211.CmdRegisterFrame
	CommandFrame            Command = nl80211.CmdFrame
	CommandSetPowerSave     Command = nl80211.CmdSetPowerSave
	CommandGetPowerSave     Command = nl80211.CmdGetPowerSave
	CommandSetChannel       Command = nl80211.CmdSetChannel
	CommandAbortScan        Command = nl80211.CmdAbortScan
	CommandWiphyRegChange   Command = nl80211.CmdWiphyRegChange
)

var commandNames = map[Command]string{
	CommandGetWiphy:         "get_wiphy",
	CommandSetWiphy:         "set_wiphy",
	CommandNewWiphy:         "new_wiphy",
	CommandDelWiphy:         "del_wiphy",
	CommandGetInterface:     "get_interface",
	CommandSetInterface:     "set_interface",
	CommandNewInterface:     "new_interface",
	CommandDelInterface:     "del_interface",
	CommandStartAP:          "start_ap",
	CommandStopAP:           "stop_ap",
	CommandGetStation:       "get_station",
	CommandNewStation:       "new_station",
	CommandSetReg:           "set_reg",
	CommandReqSetReg:        "req_set_reg",
	CommandGetReg:           "get_reg",
	CommandGetScan:          "get_scan",
	CommandTriggerScan:      "trigger_scan",
	CommandNewScanResults:   "new_scan_results",
	CommandScanAborted:      "scan_aborted",
	CommandRegChange:        "reg_change",
	CommandConnect:          "connect",
	CommandDisconnect:       "disconnect",
	CommandGetSurvey:        "get_survey",
	CommandNewSurveyResults: "new_survey_results",
	CommandRegisterFrame:    "register_frame",
	CommandFrame:            "frame",
	CommandSetPowerSave:     "set_power_save",
	CommandGetPowerSave:     "get_power_save",
	CommandSetChannel:       "set_channel",
	CommandAbortScan:        "abort_scan",
	CommandWiphyRegChange:   "wiphy_reg_change",
}

// String returns the string representation of a Command.
func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}

	return fmt.Sprintf("unknown(%d)", c)
}

// A Message is an nl80211 command and its ordered attributes. Methods which
// derive a new Message never modify the receiver.
type Message struct {
	Command    Command
	Attributes []Attribute
}

// NewMessage creates a Message with a copy of attrs.
func NewMessage(cmd Command, attrs ...Attribute) Message {
	return Message{Command: cmd}.With(attrs...)
}

// With returns a copy of m with attrs appended.
func (m Message) With(attrs ...Attribute) Message {
	out := make([]Attribute, 0, len(m.Attributes)+len(attrs))
	out = append(out, m.Attributes...)
	out = append(out, attrs...)

	return Message{Command: m.Command, Attributes: out}
}

// Without returns a copy of m without the attributes for which drop returns
// true.
func (m Message) Without(drop func(Attribute) bool) Message {
	return m.Retain(func(a Attribute) bool { return !drop(a) })
}

// Retain returns a copy of m keeping only the attributes for which keep
// returns true.
func (m Message) Retain(keep func(Attribute) bool) Message {
	out := make([]Attribute, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		if keep(a) {
			out = append(out, a)
		}
	}

	return Message{Command: m.Command, Attributes: out}
}

// Replace returns a copy of m with every attribute of a's kind removed and a
// appended.
func (m Message) Replace(a Attribute) Message {
	return m.Without(OfKind(a.Kind())).With(a)
}

// OfKind returns a predicate which matches attributes of any of kinds.
func OfKind(kinds ...uint16) func(Attribute) bool {
	return func(a Attribute) bool {
		for _, k := range kinds {
			if a.Kind() == k {
				return true
			}
		}

		return false
	}
}

// Attribute returns the first attribute of the given kind.
func (m Message) Attribute(kind uint16) (Attribute, bool) {
	for _, a := range m.Attributes {
		if a.Kind() == kind {
			return a, true
		}
	}

	return nil, false
}

// Get returns the first attribute in m of type T.
func Get[T Attribute](m Message) (T, bool) {
	for _, a := range m.Attributes {
		if v, ok := a.(T); ok {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// Len returns the length of m's encoded attributes, including headers and
// padding.
func (m Message) Len() int {
	var n int
	for _, a := range m.Attributes {
		n += nlaAlign(nlaHeaderLen + ValueLen(a))
	}

	return n
}

// MarshalBinary encodes m's attributes in order. The command is carried by
// the generic netlink header and is not part of the output.
func (m Message) MarshalBinary() ([]byte, error) {
	attrs := make([]netlink.Attribute, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		n := ValueLen(a)
		if nlaHeaderLen+n > math.MaxUint16 {
			return nil, fmt.Errorf("wifi: attribute %d with %d byte value: %w", a.Kind(), n, ErrTooLong)
		}

		b := make([]byte, n)
		EncodeValue(a, b)
		attrs = append(attrs, netlink.Attribute{Type: a.Kind(), Data: b})
	}

	return netlink.MarshalAttributes(attrs)
}

// UnmarshalMessage decodes the attributes in b as a Message for cmd. Any
// attribute which fails to decode fails the whole message.
func UnmarshalMessage(cmd Command, b []byte) (Message, error) {
	ad, err := netlink.NewAttributeDecoder(b)
	if err != nil {
		return Message{}, &DecodeError{Index: -1, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	m := Message{Command: cmd}
	for ad.Next() {
		a, err := DecodeAttribute(ad.Type(), ad.Bytes())
		if err != nil {
			return Message{}, err
		}

		m.Attributes = append(m.Attributes, a)
	}

	if err := ad.Err(); err != nil {
		return Message{}, &DecodeError{Index: -1, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	return m, nil
}

// Equal reports whether m and o carry the same command and equal attributes
// in the same order.
func (m Message) Equal(o Message) bool {
	return m.Command == o.Command &&
		cmp.Equal(m.Attributes, o.Attributes, cmpopts.EquateEmpty())
}

// String returns a debugging representation of m.
func (m Message) String() string {
	var sb strings.Builder
	sb.WriteString(m.Command.String())
	sb.WriteString("{")
	for i, a := range m.Attributes {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%s(%v)", strings.TrimPrefix(fmt.Sprintf("%T", a), "wifi."), a)
	}
	sb.WriteString("}")

	return sb.String()
}
