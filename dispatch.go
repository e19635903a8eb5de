package webradio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Carlo47/webradio/audioengine"
)

// DispatcherConfig carries the startup parameters for a Dispatcher.
// Status receives single-line progress messages meant to overwrite each
// other in place; Menu is invoked when the full menu should be shown again.
type DispatcherConfig struct {
	CacheDir    string
	StartKey    rune // station key preselected at startup
	StartVolume int  // initial volume, clamped to the engine range
	Status      func(line string)
	Menu        func()
}

// Dispatcher owns the playback state and maps console keys onto engine
// actions. All handlers run on the caller's goroutine; the engine does its
// own buffering, so handlers never block on audio work.
type Dispatcher struct {
	engine   audioengine.Engine
	registry *Registry
	state    PlaybackState
	cacheDir string
	status   func(line string)
	menu     func()
}

func NewDispatcher(engine audioengine.Engine, cfg DispatcherConfig) *Dispatcher {
	d := &Dispatcher{
		engine:   engine,
		cacheDir: cfg.CacheDir,
		status:   cfg.Status,
		menu:     cfg.Menu,
	}
	if d.status == nil {
		d.status = func(string) {}
	}
	if d.menu == nil {
		d.menu = func() {}
	}
	if d.cacheDir == "" {
		d.cacheDir = DefaultCacheDir()
	}

	idx, ok := stationIndexByKey(cfg.StartKey)
	if !ok {
		idx, _ = stationIndexByKey(defaultStationKey)
	}
	d.state = PlaybackState{
		CurrentIndex:  idx,
		CurrentURL:    stations[idx].URL,
		CurrentVolume: audioengine.ClampLevel(cfg.StartVolume),
		SpeakerOn:     true,
	}

	d.registry = NewRegistry(d.buildEntries())
	return d
}

// buildEntries assembles the menu table: the station rows first, then the
// speech demos, then the utility actions.
func (d *Dispatcher) buildEntries() []MenuEntry {
	var entries []MenuEntry
	for i, s := range stations {
		idx := i
		entries = append(entries, MenuEntry{
			Key:   s.Key,
			Label: s.Name,
			Arg:   s.URL,
			Action: func(arg string) {
				d.playStation(idx, arg)
			},
		})
	}
	for _, sp := range speechDemos {
		lang := sp.Lang
		entries = append(entries, MenuEntry{
			Key:   sp.Key,
			Label: sp.Label,
			Arg:   sp.Text,
			Action: func(arg string) {
				d.speak(arg, lang)
			},
		})
	}
	entries = append(entries,
		MenuEntry{
			Key:    't',
			Label:  "Stereo test 440/445 Hz",
			Arg:    filepath.Join(d.cacheDir, audioengine.SelfTestName),
			Action: d.playSelfTest,
		},
		MenuEntry{Key: '+', Label: "Increase volume", Action: func(string) { d.incrementVolume() }},
		MenuEntry{Key: '-', Label: "Decrease volume", Action: func(string) { d.decrementVolume() }},
		MenuEntry{Key: 'T', Label: "Toggle speaker on/off", Action: func(string) { d.toggleSpeaker() }},
		MenuEntry{Key: 'C', Label: "Show current station", Action: func(string) { d.showCurrentStation() }},
		MenuEntry{Key: 'S', Label: "Show menu", Action: func(string) { d.showMenu() }},
	)
	return entries
}

// Start pushes the initial volume to the engine and tunes in the startup
// station.
func (d *Dispatcher) Start() error {
	d.engine.SetVolume(d.state.CurrentVolume)
	d.status(fmt.Sprintf("Tuning in: %s --> %s", stations[d.state.CurrentIndex].Name, d.state.CurrentURL))
	if err := d.engine.ConnectToHost(d.state.CurrentURL); err != nil {
		return fmt.Errorf("connecting to %s: %w", d.state.CurrentURL, err)
	}
	return nil
}

// Dispatch resolves key against the menu and runs the bound action. An
// unmapped key is silently absorbed; the return value only tells the caller
// whether anything happened.
func (d *Dispatcher) Dispatch(key rune) bool {
	entry, ok := d.registry.Resolve(key)
	if !ok {
		return false
	}
	entry.Action(entry.Arg)
	return true
}

// Registry exposes the menu table, mainly for rendering.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// State returns a snapshot of the playback state.
func (d *Dispatcher) State() PlaybackState {
	return d.state
}

func (d *Dispatcher) playStation(index int, url string) {
	d.state.CurrentIndex = index
	d.state.CurrentURL = url
	d.status(fmt.Sprintf("Tuning in: %s --> %s", stations[index].Name, url))
	if err := d.engine.ConnectToHost(url); err != nil {
		log.Printf("connect to %s failed: %v", url, err)
		d.status(fmt.Sprintf("Cannot tune in %s: %v", stations[index].Name, err))
	}
}

func (d *Dispatcher) speak(text, lang string) {
	d.status(fmt.Sprintf("Speaking (%s) ...", lang))
	if err := d.engine.ConnectToSpeech(text, lang); err != nil {
		log.Printf("text to speech (%s) failed: %v", lang, err)
		d.status(fmt.Sprintf("Text to speech failed: %v", err))
	}
}

// playSelfTest plays the generated stereo test file, synthesizing it on
// first use.
func (d *Dispatcher) playSelfTest(path string) {
	if _, err := os.Stat(path); err != nil {
		if _, err := audioengine.SelfTestFile(d.cacheDir); err != nil {
			log.Printf("stereo test synthesis failed: %v", err)
			d.status(fmt.Sprintf("Stereo test unavailable: %v", err))
			return
		}
	}
	d.status("Playing stereo test, 440 Hz left / 445 Hz right")
	if err := d.engine.ConnectToFile(path); err != nil {
		log.Printf("stereo test playback failed: %v", err)
		d.status(fmt.Sprintf("Stereo test failed: %v", err))
	}
}

func (d *Dispatcher) incrementVolume() {
	if d.state.CurrentVolume < audioengine.MaxVolume {
		d.state.CurrentVolume++
	}
	d.applyVolume()
}

func (d *Dispatcher) decrementVolume() {
	if d.state.CurrentVolume > audioengine.MinVolume {
		d.state.CurrentVolume--
	}
	d.applyVolume()
}

// applyVolume pushes the stored level to the engine even when clamping left
// it unchanged, so the engine and the state never drift apart.
func (d *Dispatcher) applyVolume() {
	d.engine.SetVolume(d.state.CurrentVolume)
	d.status(fmt.Sprintf("Current Volume: %d", d.state.CurrentVolume))
}

// toggleSpeaker mutes by forcing the engine to the minimum level while
// keeping the stored volume, and unmutes by restoring it. A stored volume
// of zero is bumped to the default first, so unmuting is always audible.
func (d *Dispatcher) toggleSpeaker() {
	if d.state.SpeakerOn {
		d.engine.SetVolume(audioengine.MinVolume)
		d.state.SpeakerOn = false
		d.status("Speaker is off")
		return
	}
	if d.state.CurrentVolume == audioengine.MinVolume {
		d.state.CurrentVolume = audioengine.DefaultVolume
	}
	d.engine.SetVolume(d.state.CurrentVolume)
	d.state.SpeakerOn = true
	d.status("Speaker is on")
}

func (d *Dispatcher) showCurrentStation() {
	d.status(fmt.Sprintf("Current Station: %s --> %s",
		stations[d.state.CurrentIndex].Name, d.state.CurrentURL))
}

func (d *Dispatcher) showMenu() {
	d.menu()
}

// DefaultCacheDir is where speech and test files land when no cache
// directory is configured.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "webradio")
}
