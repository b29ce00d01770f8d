package kompresscache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// A replica read failed and the command is being retried on the
	// primary. Fires at most once per logical read.
	Failover(op, replicaAddr string, err error)

	// A cached value was absent or failed validation and the loader is
	// about to run. reason ∈ {"miss", "invalid"}
	Refresh(key, field, reason string)

	// A command surfaced a classified error to the caller (after any
	// failover). Fires once per failed logical operation.
	BackendError(op string, kind Kind)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Failover(string, string, error) {}
func (NopHooks) Refresh(string, string, string) {}
func (NopHooks) BackendError(string, Kind)      {}
