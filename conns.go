package kompresscache

import (
	"errors"
	"fmt"

	"github.com/utvyakta-public/kompress-cache/backend"
)

// ConnSet is the node topology the cache routes over: one primary that takes
// every write, and zero or more replicas that share the read load.
type ConnSet struct {
	primary  backend.Conn
	replicas []backend.Conn
}

// NewConnSet builds a topology. The primary is required; replicas may be
// empty, in which case reads go to the primary directly.
func NewConnSet(primary backend.Conn, replicas ...backend.Conn) (*ConnSet, error) {
	if primary == nil {
		return nil, errors.New("kompresscache: primary conn is required")
	}
	cp := make([]backend.Conn, len(replicas))
	for i, r := range replicas {
		if r == nil {
			return nil, fmt.Errorf("kompresscache: replica conn %d is nil", i)
		}
		cp[i] = r
	}
	return &ConnSet{primary: primary, replicas: cp}, nil
}

func (s *ConnSet) Primary() backend.Conn { return s.primary }

// Replicas returns a copy; mutating it does not change the topology.
func (s *ConnSet) Replicas() []backend.Conn {
	out := make([]backend.Conn, len(s.replicas))
	copy(out, s.replicas)
	return out
}

func (s *ConnSet) NumReplicas() int { return len(s.replicas) }
