package webradio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrNetworkUnavailable reports that the probe target never became
// reachable within the configured number of attempts.
var ErrNetworkUnavailable = errors.New("network unavailable")

const dialProbeTimeout = 3 * time.Second

// ConnectionDetails describes the local end of a successful probe.
type ConnectionDetails struct {
	Hostname  string
	Interface string
	LocalIP   string
	MAC       string
}

func (c ConnectionDetails) String() string {
	return fmt.Sprintf(`Connection details:
  Hostname    : %s
  Interface   : %s
  IP address  : %s
  MAC address : %s`, c.Hostname, c.Interface, c.LocalIP, c.MAC)
}

// StationTarget derives a dialable host:port from a station URL.
func StationTarget(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", rawURL, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("no host in %q", rawURL)
	}
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	return net.JoinHostPort(host, port), nil
}

// WaitForNetwork probes target until a TCP connection succeeds, retrying
// with a fixed delay. attempts <= 0 retries indefinitely. On failure the
// returned error wraps ErrNetworkUnavailable so callers can exit cleanly
// instead of looping forever.
func WaitForNetwork(ctx context.Context, target string, attempts int, delay time.Duration) (ConnectionDetails, error) {
	var lastErr error
	for i := 0; attempts <= 0 || i < attempts; i++ {
		conn, err := net.DialTimeout("tcp", target, dialProbeTimeout)
		if err == nil {
			details := connectionDetails(conn)
			conn.Close()
			return details, nil
		}
		lastErr = err
		log.Printf("Connecting to network, attempt %d: %v", i+1, err)
		select {
		case <-ctx.Done():
			return ConnectionDetails{}, ctx.Err()
		case <-time.After(delay):
		}
	}
	return ConnectionDetails{}, fmt.Errorf("%w: %s unreachable after %d attempts: %v",
		ErrNetworkUnavailable, target, attempts, lastErr)
}

// connectionDetails resolves the local address of conn to an interface and
// its hardware address.
func connectionDetails(conn net.Conn) ConnectionDetails {
	details := ConnectionDetails{}
	if name, err := os.Hostname(); err == nil {
		details.Hostname = name
	}
	localIP := ""
	if addr, ok := conn.LocalAddr().(*net.TCPAddr); ok {
		localIP = addr.IP.String()
	}
	details.LocalIP = localIP

	ifaces, err := net.Interfaces()
	if err != nil {
		return details
	}
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			if ipNet.IP.String() == localIP {
				details.Interface = iface.Name
				details.MAC = iface.HardwareAddr.String()
				return details
			}
		}
	}
	return details
}

// NearbyInterfaces lists the machine's usable network interfaces with
// their addresses, one line per interface.
func NearbyInterfaces() []string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}
	var lines []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		parts := make([]string, 0, len(addrs))
		for _, a := range addrs {
			parts = append(parts, a.String())
		}
		lines = append(lines, fmt.Sprintf("%-8s %s", iface.Name, strings.Join(parts, " ")))
	}
	return lines
}
