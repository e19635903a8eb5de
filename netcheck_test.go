package webradio

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

func TestStationTarget(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr bool
	}{
		{"plain http", "http://stream.srg-ssr.ch/m/rsc_de/mp3_128", "stream.srg-ssr.ch:80", false},
		{"https default port", "https://liveradio.swr.de/sw282p3/swr3/", "liveradio.swr.de:443", false},
		{"explicit port", "http://kvbstreams.dyndns.org:8000/wkvi-am", "kvbstreams.dyndns.org:8000", false},
		{"no host", "not a url", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StationTarget(tt.rawURL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StationTarget(%q) error = %v, wantErr %v", tt.rawURL, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("StationTarget(%q) = %q, want %q", tt.rawURL, got, tt.want)
			}
		})
	}
}

func TestWaitForNetworkSucceeds(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	details, err := WaitForNetwork(context.Background(), ln.Addr().String(), 1, time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForNetwork: %v", err)
	}
	if details.LocalIP == "" {
		t.Error("details miss the local IP")
	}
}

func TestWaitForNetworkGivesUp(t *testing.T) {
	// A listener that is closed right away leaves a port that refuses
	// connections.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	target := ln.Addr().String()
	ln.Close()

	_, err = WaitForNetwork(context.Background(), target, 2, time.Millisecond)
	if !errors.Is(err, ErrNetworkUnavailable) {
		t.Errorf("error = %v, want ErrNetworkUnavailable", err)
	}
}

func TestWaitForNetworkHonorsContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	target := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = WaitForNetwork(ctx, target, 0, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
