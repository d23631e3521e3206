//go:build !linux
// +build !linux

package wifi

import (
	"context"
	"time"
)

// A client is the no-op implementation of osClient on platforms without
// nl80211.
type client struct{}

func newClient(_ *Config) (*client, error) { return nil, ErrNotImplemented }

func (*client) Close() error                                         { return ErrNotImplemented }
func (*client) Execute(_ Message, _ bool) ([]Message, error)         { return nil, ErrNotImplemented }
func (*client) Interfaces() ([]*Interface, error)                    { return nil, ErrNotImplemented }
func (*client) Interface(_ int) (*Interface, error)                  { return nil, ErrNotImplemented }
func (*client) PHYs() ([]*PHY, error)                                { return nil, ErrNotImplemented }
func (*client) BSS(_ *Interface) (*BSS, error)                       { return nil, ErrNotImplemented }
func (*client) AccessPoints(_ *Interface) ([]*BSS, error)            { return nil, ErrNotImplemented }
func (*client) StationInfo(_ *Interface) ([]*Station, error)         { return nil, ErrNotImplemented }
func (*client) SurveyInfo(_ *Interface) ([]*Survey, error)           { return nil, ErrNotImplemented }
func (*client) Scan(_ context.Context, _ *Interface) error           { return ErrNotImplemented }
func (*client) Connect(_ *Interface, _ string) error                 { return ErrNotImplemented }
func (*client) ConnectWPAPSK(_ *Interface, _, _ string) error        { return ErrNotImplemented }
func (*client) Disconnect(_ *Interface) error                        { return ErrNotImplemented }
func (*client) SetInterfaceType(_ *Interface, _ InterfaceType) error { return ErrNotImplemented }
func (*client) DeleteInterface(_ *Interface) error                   { return ErrNotImplemented }
func (*client) SetChannel(_ *Interface, _ Channel) error             { return ErrNotImplemented }
func (*client) SetPowerSave(_ *Interface, _ bool) error              { return ErrNotImplemented }
func (*client) StartAP(_ *Interface, _ APConfig) error               { return ErrNotImplemented }
func (*client) StopAP(_ *Interface) error                            { return ErrNotImplemented }
func (*client) RegisterFrame(_ *Interface, _ uint16, _ []byte) error { return ErrNotImplemented }
func (*client) Regulatory() ([]*RegulatoryDomain, error)             { return nil, ErrNotImplemented }
func (*client) RequestRegulatory(_ string) error                     { return ErrNotImplemented }
func (*client) SetDeadline(_ time.Time) error                        { return ErrNotImplemented }
func (*client) SetReadDeadline(_ time.Time) error                    { return ErrNotImplemented }
func (*client) SetWriteDeadline(_ time.Time) error                   { return ErrNotImplemented }

func (*client) NewInterface(_ *Interface, _ string, _ InterfaceType) (*Interface, error) {
	return nil, ErrNotImplemented
}
