package webradio

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Carlo47/webradio/audioengine"
)

// Model represents the state of the Bubble Tea application.
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model

	engine     audioengine.Engine
	dispatcher *Dispatcher
	sink       *uiSink

	err      error
	width    int
	height   int
	ready    bool // first WindowSizeMsg seen
	starting bool // initial station not yet requested
	quitting bool

	// Configuration
	stationKey  rune   // startup station override
	startVolume int    // startup volume level
	cacheDir    string // speech and test file cache
	showLogo    bool

	// Now playing, fed by engine events
	stationName string
	streamTitle string
	bitrate     string
	statusLine  string

	// Log Messages
	logMessages     []string
	maxLogMessages  int
	showLogMessages bool
}

// engineTickMsg paces the event drain from the audio engine.
type engineTickMsg time.Time

// menuTimerMsg fires once, a few seconds after startup, to show the menu.
type menuTimerMsg struct{}

// playbackStartedMsg reports the outcome of the initial tune-in.
type playbackStartedMsg struct {
	err error
}

// uiSink collects the dispatcher's status output so the Update loop can
// fold it into the model. Bubble Tea copies the Model by value; the sink
// is shared by pointer so handler output survives the copy.
type uiSink struct {
	line       string
	lineSet    bool
	menuWanted bool
}

func (s *uiSink) Status(line string) {
	s.line = line
	s.lineSet = true
}

func (s *uiSink) Menu() {
	s.menuWanted = true
}

func (s *uiSink) takeStatus() (string, bool) {
	line, ok := s.line, s.lineSet
	s.line, s.lineSet = "", false
	return line, ok
}

func (s *uiSink) takeMenu() bool {
	ok := s.menuWanted
	s.menuWanted = false
	return ok
}
