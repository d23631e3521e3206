//go:build linux
// +build linux

package wifi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/nlwifi/wifi/internal/nl80211"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

var (
	errInvalidCommand       = errors.New("invalid generic netlink response command")
	errInvalidFamilyVersion = errors.New("invalid generic netlink response family version")
)

// A client is the Linux osClient. It exchanges Messages with the nl80211
// generic netlink family.
type client struct {
	c             *genetlink.Conn
	familyID      uint16
	familyVersion uint8

	log    logrus.FieldLogger
	strict bool
	ncfg   *netlink.Config

	// Serializes Scan.
	scan sync.Mutex
}

// newClient dials generic netlink and resolves the nl80211 family.
func newClient(cfg *Config) (*client, error) {
	c, err := genetlink.Dial(cfg.netlinkConfig())
	if err != nil {
		return nil, err
	}

	// Extended acks and strict checking are best effort; older kernels
	// reject them.
	for _, o := range []netlink.ConnOption{
		netlink.ExtendedAcknowledge,
		netlink.GetStrictCheck,
	} {
		_ = c.SetOption(o, true)
	}

	return initClient(c, cfg)
}

func initClient(c *genetlink.Conn, cfg *Config) (*client, error) {
	family, err := c.GetFamily(unix.NL80211_GENL_NAME)
	if err != nil {
		// Don't leak the socket.
		_ = c.Close()
		return nil, err
	}

	log := cfg.logger().WithFields(logrus.Fields{
		"family":  family.Name,
		"version": family.Version,
	})
	log.Debug("wifi: nl80211 family resolved")

	return &client{
		c:             c,
		familyID:      family.ID,
		familyVersion: family.Version,

		log:    log,
		strict: cfg.strict(),
		ncfg:   cfg.netlinkConfig(),
	}, nil
}

// Close closes the client's generic netlink connection.
func (c *client) Close() error { return c.c.Close() }

// Execute sends msg and decodes the replies. The netlink.Request header flag
// is always set; dumps add netlink.Dump. Commands without a reply are sent
// with netlink.Acknowledge and return no messages.
func (c *client) Execute(msg Message, dump bool) ([]Message, error) {
	b, err := msg.MarshalBinary()
	if err != nil {
		return nil, err
	}

	_, replies := replyCommands[msg.Command]

	flags := netlink.Request
	switch {
	case dump:
		flags |= netlink.Dump
	case !replies:
		flags |= netlink.Acknowledge
	}

	gmsgs, err := c.c.Execute(
		genetlink.Message{
			Header: genetlink.Header{
				Command: uint8(msg.Command),
				Version: c.familyVersion,
			},
			Data: b,
		},
		c.familyID,
		flags,
	)
	if err != nil {
		return nil, err
	}
	if !dump && !replies {
		return nil, nil
	}

	msgs := make([]Message, 0, len(gmsgs))
	for _, gm := range gmsgs {
		m, err := c.decode(gm)
		if err != nil {
			return nil, err
		}

		msgs = append(msgs, m)
	}

	return msgs, nil
}

// decode checks a reply's family version and decodes its attributes.
func (c *client) decode(gm genetlink.Message) (Message, error) {
	if gm.Header.Version != c.familyVersion {
		return Message{}, errInvalidFamilyVersion
	}

	cmd := Command(gm.Header.Command)
	m, err := UnmarshalMessage(cmd, gm.Data)
	if err != nil {
		return Message{}, fmt.Errorf("wifi: decoding %s reply: %w", cmd, err)
	}

	for _, a := range m.Attributes {
		if !IsUnknown(a) {
			continue
		}

		c.log.WithFields(logrus.Fields{
			"kind":    a.Kind(),
			"command": cmd.String(),
		}).Debug("wifi: unknown attribute")

		if c.strict {
			return Message{}, fmt.Errorf("%w %d in %s reply", ErrUnknownAttribute, a.Kind(), cmd)
		}
	}

	return m, nil
}

// query executes msg and checks that every reply carries the expected
// command.
func (c *client) query(msg Message, dump bool) ([]Message, error) {
	msgs, err := c.Execute(msg, dump)
	if err != nil {
		return nil, err
	}

	want := replyCommands[msg.Command]
	for _, m := range msgs {
		if m.Command != want {
			return nil, errInvalidCommand
		}
	}

	return msgs, nil
}

// do executes a command which produces no reply.
func (c *client) do(msg Message) error {
	_, err := c.Execute(msg, false)
	return err
}

// Interfaces dumps every wireless interface.
func (c *client) Interfaces() ([]*Interface, error) {
	msgs, err := c.query(GetInterfaces(), true)
	if err != nil {
		return nil, err
	}

	return parseInterfaces(msgs), nil
}

// Interface requests a single WiFi interface by index.
func (c *client) Interface(ifindex int) (*Interface, error) {
	msgs, err := c.query(GetInterface(ifindex), false)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, os.ErrNotExist
	}

	return parseInterface(msgs[0]), nil
}

// PHYs requests a split dump of every wireless device.
func (c *client) PHYs() ([]*PHY, error) {
	msgs, err := c.query(GetWiphy(), true)
	if err != nil {
		return nil, err
	}

	return parsePHYs(msgs)
}

// Connect starts connecting the interface to the specified ssid.
func (c *client) Connect(ifi *Interface, ssid string) error {
	return c.do(Connect(ifi.Index, []byte(ssid)))
}

// Disconnect disconnects the interface.
func (c *client) Disconnect(ifi *Interface) error {
	return c.do(Disconnect(ifi.Index))
}

// ConnectWPAPSK starts connecting the interface to the specified SSID using
// WPA.
func (c *client) ConnectWPAPSK(ifi *Interface, ssid, psk string) error {
	support, err := c.checkExtFeature(ifi, ExtFeature4WayHandshakeSTAPSK)
	if err != nil {
		return err
	}
	if !support {
		return ErrNotSupported
	}

	return c.do(ConnectWPAPSK(ifi.Index, []byte(ssid), psk))
}

// BSS finds the BSS ifi is attached to in its scan results.
func (c *client) BSS(ifi *Interface) (*BSS, error) {
	msgs, err := c.query(GetScan(ifi.Index), true)
	if err != nil {
		return nil, err
	}

	return parseBSS(msgs)
}

// AccessPoints dumps the scan results of ifi.
func (c *client) AccessPoints(ifi *Interface) ([]*BSS, error) {
	msgs, err := c.query(GetScan(ifi.Index), true)
	if err != nil {
		return nil, err
	}

	return parseGetScanResult(msgs), nil
}

// StationInfo dumps the stations known to ifi.
func (c *client) StationInfo(ifi *Interface) ([]*Station, error) {
	msgs, err := c.query(GetStation(ifi.Index, HardwareAddr{}), true)
	if err != nil {
		return nil, err
	}

	stations := make([]*Station, len(msgs))
	for i := range msgs {
		if stations[i], err = parseStation(msgs[i]); err != nil {
			return nil, err
		}
	}

	return stations, nil
}

// SurveyInfo dumps the channel surveys of ifi.
func (c *client) SurveyInfo(ifi *Interface) ([]*Survey, error) {
	msgs, err := c.query(GetSurvey(ifi.Index), true)
	if err != nil {
		return nil, err
	}

	surveys := make([]*Survey, len(msgs))
	for i := range msgs {
		if surveys[i], err = parseSurvey(msgs[i]); err != nil {
			return nil, err
		}
	}
	return surveys, nil
}

// SetInterfaceType changes an interface's operating mode.
func (c *client) SetInterfaceType(ifi *Interface, t InterfaceType) error {
	return c.do(SetInterfaceType(ifi.Index, t))
}

// NewInterface creates a virtual interface and returns it as reported by
// nl80211.
func (c *client) NewInterface(ifi *Interface, name string, t InterfaceType) (*Interface, error) {
	msgs, err := c.query(NewInterface(ifi.Index, name, t), false)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, os.ErrNotExist
	}

	return parseInterface(msgs[0]), nil
}

// DeleteInterface removes a virtual interface.
func (c *client) DeleteInterface(ifi *Interface) error {
	return c.do(DeleteInterface(ifi.Index))
}

// SetChannel tunes an interface.
func (c *client) SetChannel(ifi *Interface, ch Channel) error {
	return c.do(SetChannel(ifi.Index, ch))
}

// SetPowerSave toggles power saving on an interface.
func (c *client) SetPowerSave(ifi *Interface, on bool) error {
	return c.do(SetPowerSave(ifi.Index, on))
}

// StartAP starts an access point on an interface.
func (c *client) StartAP(ifi *Interface, cfg APConfig) error {
	msg, err := StartAP(ifi.Index, cfg)
	if err != nil {
		return err
	}

	return c.do(msg)
}

// StopAP stops an access point.
func (c *client) StopAP(ifi *Interface) error {
	return c.do(StopAP(ifi.Index))
}

// RegisterFrame registers this connection for management frames.
func (c *client) RegisterFrame(ifi *Interface, frameType uint16, match []byte) error {
	return c.do(RegisterFrame(ifi.Index, frameType, match))
}

// Regulatory dumps the regulatory domains known to the kernel.
func (c *client) Regulatory() ([]*RegulatoryDomain, error) {
	msgs, err := c.query(GetRegulatory(), true)
	if err != nil {
		return nil, err
	}

	rds := make([]*RegulatoryDomain, 0, len(msgs))
	for _, m := range msgs {
		rds = append(rds, parseRegulatory(m))
	}

	return rds, nil
}

// RequestRegulatory sends a user regulatory hint.
func (c *client) RequestRegulatory(alpha2 string) error {
	return c.do(RequestRegulatory(alpha2))
}

// Scan triggers a scan on ifi and waits on the scan multicast group, over a
// second connection, until the kernel reports results or an abort for ifi.
// A context deadline bounds the wait. A scan already running on the device
// fails with syscall.EBUSY; an event that cannot be decoded yields an error
// wrapping ErrScanValidation.
func (c *client) Scan(ctx context.Context, ifi *Interface) error {
	c.scan.Lock()
	defer c.scan.Unlock()

	// Multicast events arrive on their own socket.
	ncfg := netlink.Config{Strict: true}
	if c.ncfg != nil {
		ncfg = *c.ncfg
		ncfg.Strict = true
	}

	conn, err := genetlink.Dial(&ncfg)
	if err != nil {
		return err
	}

	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		err := conn.SetDeadline(deadline)
		if err != nil {
			return err
		}
	}

	family, err := conn.GetFamily(unix.NL80211_GENL_NAME)
	if err != nil {
		return err
	}

	var id uint32
	for _, group := range family.Groups {
		if group.Name == nl80211.McgrpNames[nl80211.McgrpScan] {
			err = conn.JoinGroup(group.ID)
			if err != nil {
				return err
			}

			id = group.ID
			break
		}
	}

	if id == 0 {
		return ErrScanGroupNotFound
	}

	// Nothing useful to do with an error here.
	defer func() { _ = conn.LeaveGroup(id) }()

	log := c.log.WithFields(logrus.Fields{
		"ifindex": ifi.Index,
		"group":   id,
	})
	log.Debug("wifi: joined scan multicast group")

	data, err := TriggerScan(ifi.Index).MarshalBinary()
	if err != nil {
		return err
	}

	req := genetlink.Message{
		Header: genetlink.Header{
			Command: uint8(CommandTriggerScan),
			Version: c.familyVersion,
		},
		Data: data,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go unblockReceive(ctx, conn)

	result := make(chan error, 1)
	go func(ctx context.Context, conn *genetlink.Conn, ifiIndex int, familyVersion uint8, result chan<- error) {

		defer close(result)
		result <- listenNewScanResults(ctx, log, conn, ifiIndex, familyVersion)

	}(ctx, conn, ifi.Index, c.familyVersion, result)

	flags := netlink.Request | netlink.Acknowledge

	_, err = conn.Send(req, family.ID, flags)
	if err != nil {
		log.WithError(err).Debug("wifi: failed to trigger scan")
		cancel()
	}

	err2 := <-result

	return errors.Join(err, err2)
}

// SetDeadline sets the read and write deadlines associated with the connection.
func (c *client) SetDeadline(t time.Time) error {
	return c.c.SetDeadline(t)
}

// SetReadDeadline sets the read deadline associated with the connection.
func (c *client) SetReadDeadline(t time.Time) error {
	return c.c.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline associated with the connection.
func (c *client) SetWriteDeadline(t time.Time) error {
	return c.c.SetWriteDeadline(t)
}

// unblockReceive wakes a Receive blocked on conn once ctx is done by setting
// a read deadline in the past.
func unblockReceive(ctx context.Context, conn interface{ SetReadDeadline(time.Time) error }) {
	<-ctx.Done()
	_ = conn.SetReadDeadline(time.Now())
}

// listenNewScanResults receives on conn until a new_scan_results or
// scan_aborted event names ifiIndex, or ctx is done. Events for other
// interfaces are skipped. conn is owned by the caller but must not be read
// by anyone else meanwhile.
func listenNewScanResults(ctx context.Context, log logrus.FieldLogger, conn *genetlink.Conn, ifiIndex int, familyVersion uint8) error {
	for ctx.Err() == nil {
		msgs, _, err := conn.Receive()

		// Cancelled while blocked, or woken by unblockReceive.
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			if msg.Header.Version != familyVersion {
				break
			}

			cmd := Command(msg.Header.Command)
			switch cmd {
			case CommandScanAborted, CommandNewScanResults:
				m, err := UnmarshalMessage(cmd, msg.Data)
				if err != nil {
					return errors.Join(ErrScanValidation, err)
				}

				idx, ok := Get[IfIndex](m)
				if !ok {
					return ErrScanValidation
				}
				if ifiIndex != int(idx) {
					log.WithField("other", int(idx)).Debug("wifi: ignoring scan event for other interface")
					continue
				}

				log.WithField("command", cmd.String()).Debug("wifi: scan finished")
				if cmd == CommandScanAborted {
					return ErrScanAborted
				}

				return nil
			default:
				continue
			}
		}
	}

	return ctx.Err()
}

// checkExtFeature reports whether the wiphy behind ifi advertises feature.
func (c *client) checkExtFeature(ifi *Interface, feature ExtFeature) (bool, error) {
	msgs, err := c.query(GetWiphyByInterface(ifi.Index), true)
	if err != nil {
		return false, err
	}

	for _, m := range msgs {
		if features, ok := Get[ExtFeatures](m); ok {
			return features.Has(feature), nil
		}
	}

	return false, nil
}
