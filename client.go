package wifi

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/mdlayher/netlink"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotImplemented is returned by every Client operation on platforms
	// without nl80211.
	ErrNotImplemented = errors.New("wifi: not implemented on this platform")

	// ErrUnknownAttribute is returned by a strict Client when a reply carries
	// an attribute kind this package does not model.
	ErrUnknownAttribute = errors.New("wifi: unknown attribute")

	// ErrNotSupported is returned when the device lacks a feature an
	// operation needs.
	ErrNotSupported = errors.New("not supported")

	// Scan failures.
	ErrScanGroupNotFound = errors.New("scan multicast group unavailable")
	ErrScanAborted       = errors.New("scan aborted by the kernel")
	ErrScanValidation    = errors.New("scan validation failed")
)

var _ osClient = &client{}

// An osClient is the operating system-specific implementation of Client.
type osClient interface {
	Close() error
	Execute(msg Message, dump bool) ([]Message, error)
	Interfaces() ([]*Interface, error)
	Interface(ifindex int) (*Interface, error)
	PHYs() ([]*PHY, error)
	BSS(ifi *Interface) (*BSS, error)
	AccessPoints(ifi *Interface) ([]*BSS, error)
	StationInfo(ifi *Interface) ([]*Station, error)
	SurveyInfo(ifi *Interface) ([]*Survey, error)
	Scan(ctx context.Context, ifi *Interface) error
	Connect(ifi *Interface, ssid string) error
	ConnectWPAPSK(ifi *Interface, ssid, psk string) error
	Disconnect(ifi *Interface) error
	SetInterfaceType(ifi *Interface, t InterfaceType) error
	NewInterface(ifi *Interface, name string, t InterfaceType) (*Interface, error)
	DeleteInterface(ifi *Interface) error
	SetChannel(ifi *Interface, ch Channel) error
	SetPowerSave(ifi *Interface, on bool) error
	StartAP(ifi *Interface, cfg APConfig) error
	StopAP(ifi *Interface) error
	RegisterFrame(ifi *Interface, frameType uint16, match []byte) error
	Regulatory() ([]*RegulatoryDomain, error)
	RequestRegulatory(alpha2 string) error
	SetDeadline(t time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// Config configures a Client. The zero value and nil are both valid and use
// defaults.
type Config struct {
	// Logger receives debug output about replies. Output is discarded if nil.
	Logger logrus.FieldLogger

	// Netlink configures the generic netlink sockets.
	Netlink *netlink.Config

	// Strict makes the Client fail any reply which carries an attribute of
	// a kind this package does not model, instead of keeping it as Unknown.
	Strict bool
}

func (c *Config) logger() logrus.FieldLogger {
	if c != nil && c.Logger != nil {
		return c.Logger
	}

	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (c *Config) netlinkConfig() *netlink.Config {
	if c == nil {
		return nil
	}

	return c.Netlink
}

func (c *Config) strict() bool { return c != nil && c.Strict }

// A Client is a type which can access WiFi device actions and statistics
// using operating system-specific operations.
type Client struct {
	c osClient
}

// New creates a new Client. cfg may be nil.
func New(cfg *Config) (*Client, error) {
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		c: c,
	}, nil
}

// Close releases resources used by a Client.
func (c *Client) Close() error {
	return c.c.Close()
}

// Execute sends msg to nl80211 and returns the decoded replies. When dump is
// set every matching object is returned. Commands which produce no reply are
// acknowledged and return no messages.
func (c *Client) Execute(msg Message, dump bool) ([]Message, error) {
	return c.c.Execute(msg, dump)
}

// Connect starts connecting the interface to the specified ssid.
func (c *Client) Connect(ifi *Interface, ssid string) error {
	return c.c.Connect(ifi, ssid)
}

// Disconnect disconnects the interface.
func (c *Client) Disconnect(ifi *Interface) error {
	return c.c.Disconnect(ifi)
}

// ConnectWPAPSK starts connecting the interface to the specified ssid using
// WPA2-PSK. The driver must offload the 4-way handshake; otherwise
// ErrNotSupported is returned.
func (c *Client) ConnectWPAPSK(ifi *Interface, ssid, psk string) error {
	return c.c.ConnectWPAPSK(ifi, ssid, psk)
}

// Interfaces returns a list of the system's WiFi network interfaces.
func (c *Client) Interfaces() ([]*Interface, error) {
	return c.c.Interfaces()
}

// Interface returns the WiFi network interface with the given index.
func (c *Client) Interface(ifindex int) (*Interface, error) {
	return c.c.Interface(ifindex)
}

// PHYs returns the system's wireless devices.
func (c *Client) PHYs() ([]*PHY, error) {
	return c.c.PHYs()
}

// BSS retrieves the BSS associated with a WiFi interface.
func (c *Client) BSS(ifi *Interface) (*BSS, error) {
	return c.c.BSS(ifi)
}

// AccessPoints retrieves every BSS known to a WiFi interface from its last
// scans.
func (c *Client) AccessPoints(ifi *Interface) ([]*BSS, error) {
	return c.c.AccessPoints(ifi)
}

// StationInfo retrieves all station statistics about a WiFi interface.
//
// Since v0.2.0: if there are no stations, an empty slice is returned instead
// of an error.
func (c *Client) StationInfo(ifi *Interface) ([]*Station, error) {
	return c.c.StationInfo(ifi)
}

// SurveyInfo retrieves the channel surveys of a WiFi interface.
func (c *Client) SurveyInfo(ifi *Interface) ([]*Survey, error) {
	return c.c.SurveyInfo(ifi)
}

// Scan triggers a scan on a WiFi interface and waits for it to complete.
// Use AccessPoints to retrieve the results.
func (c *Client) Scan(ctx context.Context, ifi *Interface) error {
	return c.c.Scan(ctx, ifi)
}

// SetInterfaceType changes the operating mode of a WiFi interface.
func (c *Client) SetInterfaceType(ifi *Interface, t InterfaceType) error {
	return c.c.SetInterfaceType(ifi, t)
}

// NewInterface creates a virtual interface on the device of ifi.
func (c *Client) NewInterface(ifi *Interface, name string, t InterfaceType) (*Interface, error) {
	return c.c.NewInterface(ifi, name, t)
}

// DeleteInterface removes a virtual interface.
func (c *Client) DeleteInterface(ifi *Interface) error {
	return c.c.DeleteInterface(ifi)
}

// SetChannel tunes a WiFi interface, typically a monitor, to ch.
func (c *Client) SetChannel(ifi *Interface, ch Channel) error {
	return c.c.SetChannel(ifi, ch)
}

// SetPowerSave enables or disables power saving on a WiFi interface.
func (c *Client) SetPowerSave(ifi *Interface, on bool) error {
	return c.c.SetPowerSave(ifi, on)
}

// StartAP starts beaconing as an access point.
func (c *Client) StartAP(ifi *Interface, cfg APConfig) error {
	return c.c.StartAP(ifi, cfg)
}

// StopAP stops an access point.
func (c *Client) StopAP(ifi *Interface) error {
	return c.c.StopAP(ifi)
}

// RegisterFrame asks for management frames of frameType whose body starts
// with match to be delivered to this Client.
func (c *Client) RegisterFrame(ifi *Interface, frameType uint16, match []byte) error {
	return c.c.RegisterFrame(ifi, frameType, match)
}

// Regulatory returns the global regulatory domain followed by any
// self-managed ones.
func (c *Client) Regulatory() ([]*RegulatoryDomain, error) {
	return c.c.Regulatory()
}

// RequestRegulatory hints the kernel that the system is in the country
// alpha2.
func (c *Client) RequestRegulatory(alpha2 string) error {
	return c.c.RequestRegulatory(alpha2)
}

// SetDeadline sets the read and write deadlines associated with the connection.
func (c *Client) SetDeadline(t time.Time) error {
	return c.c.SetDeadline(t)
}

// SetReadDeadline sets the read deadline associated with the connection.
func (c *Client) SetReadDeadline(t time.Time) error {
	return c.c.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline associated with the connection.
func (c *Client) SetWriteDeadline(t time.Time) error {
	return c.c.SetWriteDeadline(t)
}
