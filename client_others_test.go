//go:build !linux
// +build !linux

package wifi

import (
	"context"
	"testing"
)

func TestOthers_clientUnimplemented(t *testing.T) {
	c := &client{}
	want := ErrNotImplemented

	if _, got := newClient(nil); want != got {
		t.Fatalf("unexpected error during newClient:\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.Interfaces(); want != got {
		t.Fatalf("unexpected error during c.Interfaces\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.Execute(GetInterfaces(), true); want != got {
		t.Fatalf("unexpected error during c.Execute\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.BSS(nil); want != got {
		t.Fatalf("unexpected error during c.BSS\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.StationInfo(nil); want != got {
		t.Fatalf("unexpected error during c.StationInfo\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.Scan(context.Background(), nil); want != got {
		t.Fatalf("unexpected error during c.Scan\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.Close(); want != got {
		t.Fatalf("unexpected error during c.Close:\n- want: %v\n-  got: %v",
			want, got)
	}
}
