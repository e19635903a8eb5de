package webradio

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Carlo47/webradio/audioengine"
)

// New creates a new Model with default settings, then applies the options.
// It returns nil if any option fails.
func New(opts ...Option) *Model {
	m := &Model{
		stationKey:     defaultStationKey,
		startVolume:    audioengine.DefaultVolume,
		showLogo:       true,
		maxLogMessages: defaultMaxLogMessages,
		starting:       true,
		sink:           &uiSink{},
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			log.Printf("Error applying option: %v", err)
			return nil
		}
	}
	return m
}

// InitModel finishes construction: it builds the default engine if none was
// configured, wires the dispatcher, and installs the log interceptor.
func (m *Model) InitModel() (tea.Model, error) {
	if m.cacheDir == "" {
		m.cacheDir = DefaultCacheDir()
	}
	if m.engine == nil {
		m.engine = audioengine.NewBeepEngine(m.cacheDir)
	}
	m.dispatcher = NewDispatcher(m.engine, DispatcherConfig{
		CacheDir:    m.cacheDir,
		StartKey:    m.stationKey,
		StartVolume: m.startVolume,
		Status:      m.sink.Status,
		Menu:        m.sink.Menu,
	})
	m.stationName = stations[m.dispatcher.State().CurrentIndex].Name

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.viewport = viewport.New(0, 0)
	m.viewport.SetContent("Tuning in ...")

	if m.showLogMessages {
		interceptor := &logInterceptor{
			model:    m,
			original: log.Writer(),
		}
		log.SetOutput(interceptor)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startPlaybackCmd(),
		m.tickEngineCmd(),
		m.menuTimerCmd(),
	)
}

func (m Model) startPlaybackCmd() tea.Cmd {
	d := m.dispatcher
	return func() tea.Msg {
		return playbackStartedMsg{err: d.Start()}
	}
}

func (m Model) tickEngineCmd() tea.Cmd {
	return tea.Tick(engineTickInterval, func(t time.Time) tea.Msg {
		return engineTickMsg(t)
	})
}

func (m Model) menuTimerCmd() tea.Cmd {
	return tea.Tick(menuDelay, func(time.Time) tea.Msg {
		return menuTimerMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.engine.Stop()
			return m, tea.Quit
		case tea.KeyRunes:
			if len(msg.Runes) == 1 {
				m.dispatcher.Dispatch(msg.Runes[0])
				m = m.drainSink()
			}
		}

	case engineTickMsg:
		for _, ev := range m.engine.Tick() {
			m = m.applyEvent(ev)
		}
		cmds = append(cmds, m.tickEngineCmd())

	case menuTimerMsg:
		m.viewport.SetContent(m.menuView())

	case playbackStartedMsg:
		m.starting = false
		if msg.err != nil {
			m.err = msg.err
		}
		m = m.drainSink()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := strings.Count(m.headerView(), "\n") + 1
		footerHeight := strings.Count(m.footerView(), "\n") + 1
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight-footerHeight)
		m.ready = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// drainSink folds the dispatcher's status output into the model.
func (m Model) drainSink() Model {
	if line, ok := m.sink.takeStatus(); ok {
		m.statusLine = line
	}
	if m.sink.takeMenu() {
		m.viewport.SetContent(m.menuView())
	}
	m.stationName = stations[m.dispatcher.State().CurrentIndex].Name
	return m
}

// applyEvent routes one engine event into the now-playing fields and the
// log box.
func (m Model) applyEvent(ev audioengine.Event) Model {
	switch ev.Kind {
	case audioengine.EventStation:
		m.stationName = ev.Text
	case audioengine.EventStreamTitle:
		m.streamTitle = ev.Text
	case audioengine.EventBitrate:
		m.bitrate = ev.Text
	case audioengine.EventEndOfStream:
		m.statusLine = "Stream ended"
	case audioengine.EventEndOfSpeech:
		m.statusLine = "Speech finished"
	}
	m.logMessages = append(m.logMessages, ev.String())
	if len(m.logMessages) > m.maxLogMessages {
		m.logMessages = m.logMessages[len(m.logMessages)-m.maxLogMessages:]
	}
	log.Printf("audio: %s", ev)
	return m
}

// Cleanup shuts down the audio engine. Call it after the program exits.
func (m *Model) Cleanup() {
	if m.engine != nil {
		m.engine.Stop()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return fmt.Sprintf("%s Starting webradio ...", m.spinner.View())
	}
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}
