package audioengine

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/Carlo47/webradio/internal/helpers"
)

const (
	speakerBufferSize = 250 * time.Millisecond
	eventRingSize     = 64
	userAgent         = "webradio/1.0"
)

// BeepEngine decodes and plays audio in-process through the beep speaker.
// It is the default backend: network streams are fetched over HTTP with ICY
// metadata enabled, MP3-decoded and mixed with an adjustable volume stage.
type BeepEngine struct {
	mu          sync.Mutex
	level       int
	volume      *effects.Volume
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	speakerRate beep.SampleRate
	speakerUp   bool

	client   *http.Client
	events   *eventRing
	cacheDir string
}

// NewBeepEngine returns an engine playing through the process's default
// audio device. cacheDir receives generated speech files; it is created on
// demand.
func NewBeepEngine(cacheDir string) *BeepEngine {
	return &BeepEngine{
		level:    DefaultVolume,
		cacheDir: cacheDir,
		events:   newEventRing(eventRingSize),
		client: &http.Client{
			// Streams are long-lived: no overall timeout, only dial and
			// header deadlines.
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
				DisableCompression:    true,
			},
		},
	}
}

// ConnectToHost implements Engine. The previous source, if any, is stopped
// first; fetch and decode proceed in the background.
func (e *BeepEngine) ConnectToHost(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("station url %q is not http(s)", url)
	}
	ctx := e.restart()
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.streamHost(ctx, url)
	}()
	return nil
}

// ConnectToFile implements Engine.
func (e *BeepEngine) ConnectToFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("audio file: %w", err)
	}
	ctx := e.restart()
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.playFile(ctx, path, EventEndOfStream)
	}()
	return nil
}

// ConnectToSpeech implements Engine. Speech synthesis hits the network and
// is not cancellable, so it runs outside the playback wait group: Stop never
// waits for an in-flight synthesis, and a synthesis that finishes after a
// newer connect simply discards its result.
func (e *BeepEngine) ConnectToSpeech(text, lang string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("empty speech text")
	}
	ctx := e.restart()
	go func() {
		path, err := synthesizeSpeech(e.cacheDir, text, lang)
		if err != nil {
			e.events.pushf(EventInfo, "speech synthesis failed: %v", err)
			return
		}
		if !e.joinPlayback(ctx) {
			return
		}
		defer e.wg.Done()
		e.playFile(ctx, path, EventEndOfSpeech)
	}()
	return nil
}

// joinPlayback registers the caller in the playback wait group, unless its
// source was superseded while it was preparing. The check and the Add happen
// under the same lock Stop cancels under, so Stop either sees the playback
// and waits for it or has already cancelled the context and turns it away.
func (e *BeepEngine) joinPlayback(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	e.wg.Add(1)
	return true
}

// SetVolume implements Engine. The level applies to the current source
// immediately and is remembered for the next one.
func (e *BeepEngine) SetVolume(level int) {
	level = ClampLevel(level)
	e.mu.Lock()
	e.level = level
	vol := e.volume
	e.mu.Unlock()
	if vol == nil {
		return
	}
	speaker.Lock()
	vol.Volume = levelToGain(level)
	vol.Silent = level == MinVolume
	speaker.Unlock()
}

// Tick implements Engine.
func (e *BeepEngine) Tick() []Event {
	return e.events.drain(tickBatch)
}

// Stop implements Engine.
func (e *BeepEngine) Stop() {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.volume = nil
	up := e.speakerUp
	e.mu.Unlock()
	if up {
		speaker.Clear()
	}
	e.wg.Wait()
}

// restart tears down the current source and hands out the context for the
// next one.
func (e *BeepEngine) restart() context.Context {
	e.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	return ctx
}

func (e *BeepEngine) streamHost(ctx context.Context, url string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		e.events.pushf(EventInfo, "bad request for %s: %v", url, err)
		return
	}
	req.Header.Set("Icy-MetaData", "1")
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.events.pushf(EventInfo, "connect to %s failed: %v", url, err)
		return
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		e.events.pushf(EventInfo, "connect to %s failed: %s", url, resp.Status)
		return
	}

	e.events.push(EventLastHost, url)
	if v := resp.Header.Get("icy-name"); v != "" {
		e.events.push(EventStation, v)
	}
	if v := resp.Header.Get("icy-description"); v != "" {
		e.events.push(EventStreamInfo, v)
	}
	if v := resp.Header.Get("icy-br"); v != "" {
		e.events.push(EventBitrate, v)
	}
	if v := resp.Header.Get("icy-url"); v != "" {
		e.events.push(EventIcyURL, v)
	}

	var audio io.Reader = resp.Body
	var metaint int
	fmt.Sscanf(resp.Header.Get("icy-metaint"), "%d", &metaint)
	if helpers.IsAudioTraceEnabled() {
		log.Printf("stream %s: content-type %s, icy-metaint %d",
			url, resp.Header.Get("Content-Type"), metaint)
	}
	if metaint > 0 {
		audio = newICYReader(resp.Body, metaint, func(title string) {
			e.events.push(EventStreamTitle, title)
		})
	}

	streamer, format, err := mp3.Decode(&streamBody{Reader: audio, closer: resp.Body})
	if err != nil {
		resp.Body.Close()
		e.events.pushf(EventInfo, "decode %s failed: %v", url, err)
		return
	}
	e.play(ctx, streamer, format, EventEndOfStream, url)
}

func (e *BeepEngine) playFile(ctx context.Context, path string, eofKind EventKind) {
	f, err := os.Open(path)
	if err != nil {
		e.events.pushf(EventInfo, "open %s failed: %v", path, err)
		return
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		streamer, format, err = wav.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		e.events.pushf(EventInfo, "decode %s failed: %v", path, err)
		return
	}
	e.play(ctx, streamer, format, eofKind, filepath.Base(path))
}

// play hands the decoded stream to the speaker and blocks until the source
// ends or the context is cancelled by a newer connect.
func (e *BeepEngine) play(ctx context.Context, streamer beep.StreamSeekCloser, format beep.Format, eofKind EventKind, eofText string) {
	defer streamer.Close()

	if ctx.Err() != nil {
		return
	}
	if err := e.initSpeaker(format.SampleRate); err != nil {
		e.events.pushf(EventInfo, "audio output: %v", err)
		return
	}

	e.mu.Lock()
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     volumeBase,
		Volume:   levelToGain(e.level),
		Silent:   e.level == MinVolume,
	}
	e.volume = vol
	e.mu.Unlock()

	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))

	select {
	case <-ctx.Done():
	case <-done:
		e.events.push(eofKind, eofText)
	}
}

func (e *BeepEngine) initSpeaker(rate beep.SampleRate) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.speakerUp && rate == e.speakerRate {
		return nil
	}
	if err := speaker.Init(rate, rate.N(speakerBufferSize)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", rate, err)
	}
	e.speakerRate = rate
	e.speakerUp = true
	return nil
}

// streamBody pairs the metadata-stripped audio reader with the response
// body's closer, as the MP3 decoder wants a ReadCloser.
type streamBody struct {
	io.Reader
	closer io.Closer
}

func (s *streamBody) Close() error { return s.closer.Close() }
