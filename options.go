package webradio

import (
	"fmt"

	"github.com/Carlo47/webradio/audioengine"
)

// Option configures the Model during New.
type Option func(*Model) error

// WithEngine sets the audio backend. Without it, New builds the in-process
// engine.
func WithEngine(e audioengine.Engine) Option {
	return func(m *Model) error {
		if e == nil {
			return fmt.Errorf("engine must not be nil")
		}
		m.engine = e
		return nil
	}
}

// WithStation selects the station tuned in at startup, by its menu key.
func WithStation(key rune) Option {
	return func(m *Model) error {
		if _, ok := stationIndexByKey(key); !ok {
			return fmt.Errorf("no station bound to key %q", key)
		}
		m.stationKey = key
		return nil
	}
}

// WithVolume sets the startup volume level.
func WithVolume(level int) Option {
	return func(m *Model) error {
		if level < audioengine.MinVolume || level > audioengine.MaxVolume {
			return fmt.Errorf("volume %d out of range %d..%d",
				level, audioengine.MinVolume, audioengine.MaxVolume)
		}
		m.startVolume = level
		return nil
	}
}

// WithCacheDir sets the directory for synthesized speech and test files.
func WithCacheDir(dir string) Option {
	return func(m *Model) error {
		m.cacheDir = dir
		return nil
	}
}

// WithLogo enables/disables the ASCII logo in the header.
func WithLogo(show bool) Option {
	return func(m *Model) error {
		m.showLogo = show
		return nil
	}
}

// WithLogMessages enables the log message box and optionally sets how many
// messages it keeps.
func WithLogMessages(show bool, maxMessages ...int) Option {
	return func(m *Model) error {
		m.showLogMessages = show
		if len(maxMessages) > 0 && maxMessages[0] > 0 {
			m.maxLogMessages = maxMessages[0]
		}
		return nil
	}
}
