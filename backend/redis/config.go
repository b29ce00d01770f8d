package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/utvyakta-public/kompress-cache/internal/hostport"
)

// Environment variables read by FromEnv.
const (
	EnvHost     = "REDIS_HOST"
	EnvPort     = "REDIS_PORT"
	EnvPassword = "REDIS_PASSWORD"
	EnvDB       = "REDIS_DB"
	// EnvReplicas lists replica nodes as comma-separated host:port pairs.
	// Empty or unset means no replicas: reads then go to the primary.
	EnvReplicas = "REDIS_REPLICAS_HOST_PORT"
	// EnvTimeout is the per-command timeout in seconds.
	EnvTimeout = "REDIS_TIMEOUT"
)

// Defaults applied when the corresponding variable is unset or empty.
const (
	DefaultHost = "localhost"
	DefaultPort = 6379
)

// Env is the environment-derived topology: one primary plus zero or more
// replicas sharing password, database and timeout.
type Env struct {
	Addr     string
	Replicas []string
	Password string
	DB       int
	Timeout  time.Duration
}

// FromEnv reads the topology from the process environment. Unset variables
// fall back to defaults; malformed values are errors, not fallbacks.
func FromEnv() (Env, error) {
	e := Env{
		Addr:     hostport.Join(DefaultHost, DefaultPort),
		Password: os.Getenv(EnvPassword),
		Timeout:  DefaultTimeout,
	}

	host := DefaultHost
	if v := os.Getenv(EnvHost); v != "" {
		host = v
	}
	port := DefaultPort
	if v := os.Getenv(EnvPort); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 || p > 65535 {
			return Env{}, fmt.Errorf("redis backend: %s=%q: not a valid port", EnvPort, v)
		}
		port = p
	}
	e.Addr = hostport.Join(host, port)

	if v := os.Getenv(EnvDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			return Env{}, fmt.Errorf("redis backend: %s=%q: not a valid database index", EnvDB, v)
		}
		e.DB = db
	}

	if v := os.Getenv(EnvReplicas); v != "" {
		addrs, err := hostport.ParseList(v)
		if err != nil {
			return Env{}, fmt.Errorf("redis backend: %s: %w", EnvReplicas, err)
		}
		e.Replicas = addrs
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 1 {
			return Env{}, fmt.Errorf("redis backend: %s=%q: not a valid timeout in seconds", EnvTimeout, v)
		}
		e.Timeout = time.Duration(secs) * time.Second
	}

	return e, nil
}

// Conns builds one Conn per node in the topology, primary first.
// On error every conn built so far is closed; nothing leaks.
func (e Env) Conns() (primary *Conn, replicas []*Conn, err error) {
	primary, err = New(Config{
		Addr:     e.Addr,
		Password: e.Password,
		DB:       e.DB,
		Timeout:  e.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("redis backend: primary %s: %w", e.Addr, err)
	}

	replicas = make([]*Conn, 0, len(e.Replicas))
	for _, addr := range e.Replicas {
		var rc *Conn
		rc, err = New(Config{
			Addr:     addr,
			Password: e.Password,
			DB:       e.DB,
			Timeout:  e.Timeout,
		})
		if err != nil {
			for _, c := range replicas {
				_ = c.Close(context.Background())
			}
			_ = primary.Close(context.Background())
			return nil, nil, fmt.Errorf("redis backend: replica %s: %w", addr, err)
		}
		replicas = append(replicas, rc)
	}
	return primary, replicas, nil
}

// NewFromEnv is FromEnv followed by Conns.
func NewFromEnv() (primary *Conn, replicas []*Conn, err error) {
	e, err := FromEnv()
	if err != nil {
		return nil, nil, err
	}
	return e.Conns()
}
