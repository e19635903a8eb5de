package audioengine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Carlo47/webradio/internal/helpers"
)

// SelfTestName is the file name of the synthesized test tone.
const SelfTestName = "stereotest440-445.wav"

// The stereo self-test plays 440 Hz on the left channel against 445 Hz on
// the right, like the test asset the hardware player shipped on flash. The
// 5 Hz beat is easy to hear when both channels are wired correctly.
const (
	selfTestLeftHz    = 440.0
	selfTestRightHz   = 445.0
	selfTestSeconds   = 4
	selfTestRate      = 44100
	selfTestAmplitude = 0.4
)

// SelfTestFile returns the path of the stereo test WAV under dir,
// synthesizing it on first use.
func SelfTestFile(dir string) (string, error) {
	path := filepath.Join(dir, SelfTestName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("self-test dir: %w", err)
	}

	frames := selfTestRate * selfTestSeconds
	data := make([]byte, frames*4) // 2 channels x 16-bit
	for i := 0; i < frames; i++ {
		ts := float64(i) / selfTestRate
		left := int16(selfTestAmplitude * math.MaxInt16 * math.Sin(2*math.Pi*selfTestLeftHz*ts))
		right := int16(selfTestAmplitude * math.MaxInt16 * math.Sin(2*math.Pi*selfTestRightHz*ts))
		data[i*4] = byte(left)
		data[i*4+1] = byte(uint16(left) >> 8)
		data[i*4+2] = byte(right)
		data[i*4+3] = byte(uint16(right) >> 8)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("self-test file: %w", err)
	}
	header := helpers.WavHeader(len(data), 2, selfTestRate, 16)
	if _, err := f.Write(header); err != nil {
		f.Close()
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
