// usage:
//
// import (
//
//	"log/slog"
//
//	kompresscache "github.com/utvyakta-public/kompress-cache"
//	asynchook "github.com/utvyakta-public/kompress-cache/hooks/async"
//	"github.com/utvyakta-public/kompress-cache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    RefreshEvery:  10, // sample logs: ~every 10th refresh
//	    FailoverEvery: 1,  // log every failover
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := kompresscache.New(kompresscache.Options{
//	    Conns: conns,
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	kompresscache "github.com/utvyakta-public/kompress-cache"
)

type Hooks struct {
	inner kompresscache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ kompresscache.Hooks = (*Hooks)(nil)

func New(inner kompresscache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Failover(op, addr string, err error) {
	h.try(func() { h.inner.Failover(op, addr, err) })
}

func (h *Hooks) Refresh(key, field, reason string) {
	h.try(func() { h.inner.Refresh(key, field, reason) })
}

func (h *Hooks) BackendError(op string, kind kompresscache.Kind) {
	h.try(func() { h.inner.BackendError(op, kind) })
}
