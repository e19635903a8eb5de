package audioengine

import (
	"fmt"
	"sync"
)

// EventKind identifies the notification channels of the engine. The labels
// mirror the ones the serial console of the hardware player printed.
type EventKind int

const (
	EventInfo EventKind = iota
	EventID3Data
	EventEndOfStream
	EventStation
	EventStreamInfo
	EventStreamTitle
	EventBitrate
	EventCommercial
	EventIcyURL
	EventLastHost
	EventEndOfSpeech
)

func (k EventKind) String() string {
	switch k {
	case EventInfo:
		return "info"
	case EventID3Data:
		return "id3data"
	case EventEndOfStream:
		return "eof_stream"
	case EventStation:
		return "station"
	case EventStreamInfo:
		return "streaminfo"
	case EventStreamTitle:
		return "streamtitle"
	case EventBitrate:
		return "bitrate"
	case EventCommercial:
		return "commercial"
	case EventIcyURL:
		return "icyurl"
	case EventLastHost:
		return "lasthost"
	case EventEndOfSpeech:
		return "eof_speech"
	default:
		return "unknown"
	}
}

// Event is one engine notification. Events carry no control semantics; the
// application only logs them.
type Event struct {
	Kind EventKind
	Text string
}

func (e Event) String() string {
	return fmt.Sprintf("%-11s %s", e.Kind, e.Text)
}

// eventRing is a bounded event buffer. Producers never block: when the ring
// is full the oldest event is dropped.
type eventRing struct {
	mu     sync.Mutex
	events []Event
	max    int
}

func newEventRing(max int) *eventRing {
	return &eventRing{max: max}
}

func (r *eventRing) push(kind EventKind, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: kind, Text: text})
	if len(r.events) > r.max {
		r.events = r.events[len(r.events)-r.max:]
	}
}

func (r *eventRing) pushf(kind EventKind, format string, args ...any) {
	r.push(kind, fmt.Sprintf(format, args...))
}

// drain removes and returns up to max pending events.
func (r *eventRing) drain(max int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	n := len(r.events)
	if n > max {
		n = max
	}
	out := make([]Event, n)
	copy(out, r.events[:n])
	r.events = r.events[n:]
	return out
}
