package audioengine

import (
	"os/exec"
	"strings"
	"testing"
)

func TestExecEnginePlayerArgs(t *testing.T) {
	tests := []struct {
		player string
		level  int
		target string
		want   []string
	}{
		{
			player: "ffplay",
			level:  21,
			target: "http://example.com/stream",
			want:   []string{"-nodisp", "-autoexit", "-loglevel", "error", "-volume", "100", "http://example.com/stream"},
		},
		{
			player: "ffplay",
			level:  0,
			target: "test.wav",
			want:   []string{"-nodisp", "-autoexit", "-loglevel", "error", "-volume", "0", "test.wav"},
		},
		{
			player: "mpv",
			level:  21,
			target: "http://example.com/stream",
			want:   []string{"--no-video", "--really-quiet", "--volume=100", "http://example.com/stream"},
		},
	}

	for _, tt := range tests {
		e := &ExecEngine{playerName: tt.player, level: tt.level}
		got := e.playerArgs(tt.target)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("playerArgs(%s, level %d) = %v, want %v", tt.player, tt.level, got, tt.want)
		}
	}
}

func TestNewExecEngineUnknownPlayer(t *testing.T) {
	if _, err := NewExecEngine("definitely-not-a-player-binary", t.TempDir()); err == nil {
		t.Error("expected error for a player missing from PATH")
	}
}

// newNoopExecEngine builds an engine whose player is a command that exits
// immediately, so start can run without a real audio player.
func newNoopExecEngine(t *testing.T) *ExecEngine {
	t.Helper()
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skipf("no 'true' binary in PATH: %v", err)
	}
	return &ExecEngine{
		playerPath: path,
		playerName: "ffplay",
		level:      DefaultVolume,
		events:     newEventRing(eventRingSize),
		cacheDir:   t.TempDir(),
	}
}

// Speech that finishes synthesizing after the user already picked a station
// must not kill the station playback.
func TestSpeechArrivingLateDoesNotPreemptStation(t *testing.T) {
	e := newNoopExecEngine(t)

	// What ConnectToSpeech does before handing off to synthesis.
	e.mu.Lock()
	e.stopLocked()
	e.current = nil
	gen := e.gen
	e.mu.Unlock()

	station := &execSource{target: "http://example.com/stream", eofKind: EventEndOfStream, eofText: "station"}
	if err := e.start(station); err != nil {
		t.Fatalf("start station: %v", err)
	}

	// The synthesis goroutine reports in with the stale generation.
	if err := e.startAfterSynthesis(gen, &execSource{target: "late.mp3", eofKind: EventEndOfSpeech, eofText: "late"}); err != nil {
		t.Fatalf("startAfterSynthesis: %v", err)
	}

	e.mu.Lock()
	current := e.current
	e.mu.Unlock()
	if current == nil || current.target != station.target {
		t.Errorf("current source = %+v, want the station %q", current, station.target)
	}
	e.Stop()
}

func TestSpeechStartsWhenNothingSupersededIt(t *testing.T) {
	e := newNoopExecEngine(t)

	e.mu.Lock()
	e.stopLocked()
	e.current = nil
	gen := e.gen
	e.mu.Unlock()

	speech := &execSource{target: "speech.mp3", eofKind: EventEndOfSpeech, eofText: "speech"}
	if err := e.startAfterSynthesis(gen, speech); err != nil {
		t.Fatalf("startAfterSynthesis: %v", err)
	}

	e.mu.Lock()
	current := e.current
	e.mu.Unlock()
	if current == nil || current.target != speech.target {
		t.Errorf("current source = %+v, want the speech %q", current, speech.target)
	}
	e.Stop()
}

func TestExecEngineTickDrainsEvents(t *testing.T) {
	e := &ExecEngine{playerName: "ffplay", events: newEventRing(eventRingSize)}
	e.events.push(EventLastHost, "http://example.com/stream")
	e.events.push(EventInfo, "hello")

	events := e.Tick()
	if len(events) != 2 {
		t.Fatalf("Tick returned %d events, want 2", len(events))
	}
	if events[0].Kind != EventLastHost {
		t.Errorf("first event kind = %v, want %v", events[0].Kind, EventLastHost)
	}
	if got := e.Tick(); got != nil {
		t.Errorf("second Tick = %v, want nil", got)
	}
}
