package webradio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/Carlo47/webradio/audioengine"
)

// Console drives the dispatcher over a raw terminal: single-key input
// without echo, and a status line that clears and rewrites itself in place.
type Console struct {
	dispatcher *Dispatcher
	engine     audioengine.Engine
	in         *os.File
	out        io.Writer
}

// ConsoleConfig carries the startup parameters for a Console.
type ConsoleConfig struct {
	CacheDir    string
	StartKey    rune
	StartVolume int
}

func NewConsole(engine audioengine.Engine, cfg ConsoleConfig, in *os.File, out io.Writer) *Console {
	c := &Console{engine: engine, in: in, out: out}
	c.dispatcher = NewDispatcher(engine, DispatcherConfig{
		CacheDir:    cfg.CacheDir,
		StartKey:    cfg.StartKey,
		StartVolume: cfg.StartVolume,
		Status:      c.printStatus,
		Menu:        c.printMenu,
	})
	return c
}

// Run tunes in the startup station and loops until the context is canceled
// or the user presses Ctrl+C or Ctrl+D. Each loop iteration drains the
// engine's pending events and handles at most one key.
func (c *Console) Run(ctx context.Context) error {
	oldState, err := term.MakeRaw(int(c.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(int(c.in.Fd()), oldState)

	keys := make(chan byte, 8)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := c.in.Read(buf)
			if err != nil {
				close(keys)
				return
			}
			if n == 1 {
				keys <- buf[0]
			}
		}
	}()

	if err := c.dispatcher.Start(); err != nil {
		return err
	}

	ticker := time.NewTicker(engineTickInterval)
	defer ticker.Stop()
	menuTimer := time.NewTimer(menuDelay)
	defer menuTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				return nil
			}
			if b == 0x03 || b == 0x04 { // Ctrl+C, Ctrl+D
				return nil
			}
			c.dispatcher.Dispatch(rune(b))
		case <-menuTimer.C:
			c.printMenu()
		case <-ticker.C:
			for _, ev := range c.engine.Tick() {
				c.printEvent(ev)
			}
		}
	}
}

// printStatus clears the current line and rewrites it.
func (c *Console) printStatus(line string) {
	fmt.Fprintf(c.out, "\r%*s\r%s", clearLineWidth, "", line)
}

// printEvent writes one engine event on its own line, then leaves the
// cursor at the start of a fresh status line.
func (c *Console) printEvent(ev audioengine.Event) {
	fmt.Fprintf(c.out, "\r%*s\r%s\r\n", clearLineWidth, "", ev)
}

// printMenu writes the full menu. Raw mode needs explicit carriage returns.
func (c *Console) printMenu() {
	menu := renderMenu(c.dispatcher.Registry().Entries())
	fmt.Fprint(c.out, "\r\n"+strings.ReplaceAll(menu, "\n", "\r\n"))
}
