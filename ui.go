package webradio

import (
	"fmt"
	"strings"

	"github.com/Carlo47/webradio/audioengine"
)

// logoView renders the application logo.
func (m Model) logoView() string {
	return logoStyle.Render("((( webradio )))")
}

// headerView renders the logo line and the now-playing summary.
func (m Model) headerView() string {
	var b strings.Builder
	if m.showLogo {
		b.WriteString(m.logoView())
		b.WriteString("\n")
	}

	speaker := speakerOnIcon
	if !m.dispatcher.State().SpeakerOn {
		speaker = speakerOffIcon
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s",
		speaker,
		stationStyle.Render(m.stationName),
		volumeBar(m.dispatcher.State().CurrentVolume, audioengine.MaxVolume),
		m.spinnerOrBlank()))
	if m.streamTitle != "" {
		b.WriteString("\n")
		b.WriteString(trackStyle.Render("♪ " + m.streamTitle))
	}
	if m.bitrate != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.bitrate + " kbps"))
	}
	return b.String()
}

// menuView renders the full key menu for the viewport.
func (m Model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(menuTitle))
	b.WriteString("\n")
	for _, e := range m.dispatcher.Registry().Entries() {
		b.WriteString(menuKeyStyle.Render(fmt.Sprintf("[%c]", e.Key)))
		b.WriteString(" ")
		b.WriteString(e.Label)
		b.WriteString("\n")
	}
	return b.String()
}

// logMessagesView renders the most recent log messages box.
func (m Model) logMessagesView() string {
	if !m.showLogMessages || len(m.logMessages) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(logMessageStyle.Render("--- Log Messages ---"))
	b.WriteString("\n")
	for _, msg := range m.logMessages {
		b.WriteString(logMessageStyle.Render(msg))
		b.WriteString("\n")
	}
	return b.String()
}

// footerView renders the log box, the status line and the key hint.
func (m Model) footerView() string {
	var b strings.Builder
	if logBox := m.logMessagesView(); logBox != "" {
		b.WriteString(logBox)
	}
	if m.err != nil {
		b.WriteString(formatErrorString(m.err))
		b.WriteString("\n")
	}
	if m.statusLine != "" {
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render("Press a station key, S for the menu, Ctrl+C to quit"))
	return b.String()
}

func (m Model) spinnerOrBlank() string {
	if m.starting {
		return m.spinner.View()
	}
	return ""
}
