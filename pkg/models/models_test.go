package models

import "testing"

func TestPortChannelPerFabric(t *testing.T) {
	pc := PortChannel{
		NameA: "uplink-a", IDA: 10,
		NameB: "uplink-b", IDB: 11,
		Module: 1, Port1: 31, Port2: 32,
	}

	if got := pc.Name("A"); got != "uplink-a" {
		t.Errorf("Name(A) = %q", got)
	}
	if got := pc.Name("B"); got != "uplink-b" {
		t.Errorf("Name(B) = %q", got)
	}
	if got := pc.ID("A"); got != 10 {
		t.Errorf("ID(A) = %d", got)
	}
	if got := pc.ID("B"); got != 11 {
		t.Errorf("ID(B) = %d", got)
	}
}
