package audioengine

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"
)

// ExecEngine plays sources through an external player subprocess. It exists
// for environments without a usable native audio device; ffplay and mpv both
// fetch, decode and play stream URLs on their own.
type ExecEngine struct {
	mu         sync.Mutex
	playerPath string
	playerName string
	level      int
	cmd        *exec.Cmd
	gen        int
	current    *execSource
	events     *eventRing
	cacheDir   string
}

type execSource struct {
	target  string
	eofKind EventKind
	eofText string
}

// NewExecEngine builds a subprocess-backed engine. playerCmd overrides
// auto-detection; with an empty value the PATH is searched for a supported
// player.
func NewExecEngine(playerCmd, cacheDir string) (*ExecEngine, error) {
	e := &ExecEngine{
		level:    DefaultVolume,
		events:   newEventRing(eventRingSize),
		cacheDir: cacheDir,
	}
	if playerCmd != "" {
		path, err := exec.LookPath(playerCmd)
		if err != nil {
			return nil, fmt.Errorf("player command %q not found in PATH: %w", playerCmd, err)
		}
		e.playerPath = path
		e.playerName = playerCmd
		return e, nil
	}
	for _, candidate := range []string{"ffplay", "mpv"} {
		if path, err := exec.LookPath(candidate); err == nil {
			e.playerPath = path
			e.playerName = candidate
			return e, nil
		}
	}
	return nil, fmt.Errorf("no supported audio player found in PATH (tried ffplay, mpv)")
}

// playerArgs builds the argument list for the configured player at the
// current volume level.
func (e *ExecEngine) playerArgs(target string) []string {
	percent := levelToPercent(e.level)
	switch e.playerName {
	case "mpv":
		return []string{"--no-video", "--really-quiet", "--volume=" + strconv.Itoa(percent), target}
	default: // ffplay and compatibles
		return []string{"-nodisp", "-autoexit", "-loglevel", "error", "-volume", strconv.Itoa(percent), target}
	}
}

// ConnectToHost implements Engine.
func (e *ExecEngine) ConnectToHost(url string) error {
	e.events.push(EventLastHost, url)
	return e.start(&execSource{target: url, eofKind: EventEndOfStream, eofText: url})
}

// ConnectToFile implements Engine.
func (e *ExecEngine) ConnectToFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("audio file: %w", err)
	}
	return e.start(&execSource{target: path, eofKind: EventEndOfStream, eofText: path})
}

// ConnectToSpeech implements Engine. Synthesis happens in the background so
// the handler returns immediately. The generation captured here lets the
// goroutine notice when a newer source arrived during synthesis; the late
// speech is then discarded instead of preempting it.
func (e *ExecEngine) ConnectToSpeech(text, lang string) error {
	e.mu.Lock()
	e.stopLocked()
	e.current = nil
	gen := e.gen
	e.mu.Unlock()
	go func() {
		path, err := synthesizeSpeech(e.cacheDir, text, lang)
		if err != nil {
			e.events.pushf(EventInfo, "speech synthesis failed: %v", err)
			return
		}
		if err := e.startAfterSynthesis(gen, &execSource{target: path, eofKind: EventEndOfSpeech, eofText: text}); err != nil {
			e.events.pushf(EventInfo, "speech playback failed: %v", err)
		}
	}()
	return nil
}

// SetVolume implements Engine. Subprocess players take the volume on the
// command line, so a level change mid-play restarts the current source.
func (e *ExecEngine) SetVolume(level int) {
	level = ClampLevel(level)
	e.mu.Lock()
	changed := level != e.level
	e.level = level
	current := e.current
	running := e.cmd != nil
	e.mu.Unlock()
	if changed && running && current != nil {
		if err := e.start(current); err != nil {
			e.events.pushf(EventInfo, "volume restart failed: %v", err)
		}
	}
}

// Tick implements Engine.
func (e *ExecEngine) Tick() []Event {
	return e.events.drain(tickBatch)
}

// Stop implements Engine.
func (e *ExecEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.current = nil
}

func (e *ExecEngine) stopLocked() {
	e.gen++
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}
	e.cmd = nil
}

func (e *ExecEngine) start(src *execSource) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startLocked(src)
}

// startAfterSynthesis starts src only when no other source was requested
// since gen was captured.
func (e *ExecEngine) startAfterSynthesis(gen int, src *execSource) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return nil
	}
	return e.startLocked(src)
}

func (e *ExecEngine) startLocked(src *execSource) error {
	e.stopLocked()

	cmd := exec.Command(e.playerPath, e.playerArgs(src.target)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.playerName, err)
	}
	e.cmd = cmd
	e.current = src
	gen := e.gen

	go func() {
		err := cmd.Wait()
		e.mu.Lock()
		stale := gen != e.gen
		if !stale {
			e.cmd = nil
		}
		e.mu.Unlock()
		if stale {
			return // superseded by a newer source or a volume restart
		}
		if err != nil {
			e.events.pushf(EventInfo, "%s exited: %v", e.playerName, err)
			return
		}
		e.events.push(src.eofKind, src.eofText)
	}()
	return nil
}
