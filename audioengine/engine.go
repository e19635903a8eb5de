// Package audioengine provides the audio playback backends for webradio.
// An Engine fetches, decodes and plays a single source at a time — a network
// stream, a local file, or generated speech — and reports what it is doing
// through a drained event queue rather than callbacks.
package audioengine

import (
	"math"
)

// Volume levels follow the 0..21 scale of the original hardware player.
const (
	MinVolume     = 0
	MaxVolume     = 21
	DefaultVolume = 10
)

// tickBatch bounds how many events a single Tick may drain.
const tickBatch = 16

// Engine is the playback collaborator consumed by the dispatcher. Starting a
// new source always preempts the previous one; there is no queueing or
// mixing. Connect calls return immediately and complete asynchronously —
// failures are reported as Info events, not through the error return, which
// only covers immediate misuse (malformed URL, missing file).
type Engine interface {
	// ConnectToHost starts streaming the given station URL.
	ConnectToHost(url string) error

	// ConnectToSpeech generates speech for text in the given language
	// ("en", "de", "it", ...) and plays it.
	ConnectToSpeech(text, lang string) error

	// ConnectToFile plays a local audio file.
	ConnectToFile(path string) error

	// SetVolume sets the playback level, clamped to [MinVolume, MaxVolume].
	// Level 0 is silence.
	SetVolume(level int)

	// Tick drains pending engine events. It never blocks and returns at
	// most a bounded batch per call.
	Tick() []Event

	// Stop releases the current source, if any.
	Stop()
}

// ClampLevel forces a volume level into the engine's [MinVolume, MaxVolume]
// range.
func ClampLevel(level int) int {
	if level < MinVolume {
		return MinVolume
	}
	if level > MaxVolume {
		return MaxVolume
	}
	return level
}

// The perceived-loudness curve: level 21 maps to unity gain, lower levels
// fall away exponentially toward minGain (in base-2 exponent units), and
// level 0 is handled as hard silence by the backends.
const (
	volumeBase          = 2.0
	minGain             = -10.0
	volumeCurveExponent = 0.5
)

func levelToGain(level int) float64 {
	level = ClampLevel(level)
	if level == MinVolume {
		return minGain
	}
	if level == MaxVolume {
		return 0
	}
	normalized := float64(level) / float64(MaxVolume)
	return (1.0 - math.Pow(normalized, volumeCurveExponent)) * minGain
}

// levelToPercent maps the 0..21 scale onto 0..100 for subprocess players.
func levelToPercent(level int) int {
	return ClampLevel(level) * 100 / MaxVolume
}
