package wifi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/netlink"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestConfigDefaults(t *testing.T) {
	var cfg *Config

	if cfg.logger() == nil {
		t.Fatal("expected a logger for a nil config")
	}
	if cfg.netlinkConfig() != nil {
		t.Fatal("expected no netlink config for a nil config")
	}
	if cfg.strict() {
		t.Fatal("a nil config must not be strict")
	}

	// The default logger discards output.
	cfg.logger().Info("wifi: discarded")
}

func TestConfigOptions(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	ncfg := &netlink.Config{Strict: true}

	cfg := &Config{
		Logger:  logger,
		Netlink: ncfg,
		Strict:  true,
	}

	cfg.logger().WithField("kind", 1).Warn("wifi: test")

	e := hook.LastEntry()
	if e == nil {
		t.Fatal("expected a log entry from the configured logger")
	}
	if diff := cmp.Diff(logrus.WarnLevel, e.Level); diff != "" {
		t.Fatalf("unexpected log level (-want +got):\n%s", diff)
	}

	if cfg.netlinkConfig() != ncfg {
		t.Fatal("unexpected netlink config")
	}
	if !cfg.strict() {
		t.Fatal("expected a strict config")
	}
}
