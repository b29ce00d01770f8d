// Package hostport parses the "host:port" endpoint notation used by the
// backend configuration surface, including comma-separated replica lists.
package hostport

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Join formats host and port as a dialable "host:port" address.
// IPv6 hosts are bracketed.
func Join(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Parse splits s into host and numeric port. The port must be in 1..65535.
func Parse(s string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return "", 0, fmt.Errorf("hostport: parse %q: %w", s, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("hostport: parse %q: port is not numeric: %w", s, err)
	}
	if port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("hostport: parse %q: port %d out of range", s, port)
	}
	if host == "" {
		return "", 0, fmt.Errorf("hostport: parse %q: empty host", s)
	}
	return host, port, nil
}

// ParseList splits a comma-separated list of "host:port" entries and returns
// each as a normalized dialable address, preserving order. Empty items
// (trailing commas, doubled commas) are skipped, so an empty or all-comma
// string yields an empty slice.
func ParseList(s string) ([]string, error) {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		host, port, err := Parse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, Join(host, port))
	}
	return out, nil
}
