package kompresscache

import (
	"testing"

	"github.com/utvyakta-public/kompress-cache/backend"
)

func TestNewConnSetRequiresPrimary(t *testing.T) {
	if _, err := NewConnSet(nil); err == nil {
		t.Fatal("NewConnSet accepted nil primary")
	}
}

func TestNewConnSetRejectsNilReplica(t *testing.T) {
	p := newFakeConn("p:6379")
	if _, err := NewConnSet(p, newFakeConn("r:6379"), nil); err == nil {
		t.Fatal("NewConnSet accepted nil replica")
	}
}

func TestConnSetReplicasIsACopy(t *testing.T) {
	p := newFakeConn("p:6379")
	r := newFakeConn("r:6379")
	s, err := NewConnSet(p, r)
	if err != nil {
		t.Fatalf("NewConnSet: %v", err)
	}

	got := s.Replicas()
	got[0] = nil
	if s.Replicas()[0] == nil {
		t.Error("mutating the returned slice changed the topology")
	}
	if s.NumReplicas() != 1 {
		t.Errorf("NumReplicas = %d", s.NumReplicas())
	}

	var _ backend.Conn = s.Primary()
}
