// Command webradio is a single-key internet radio for the terminal: 24
// stations, text to speech demos in three languages, and a stereo test
// tone, all driven one keystroke at a time.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Carlo47/webradio"
	"github.com/Carlo47/webradio/audioengine"
)

func main() {
	// A .env next to the binary may carry the WEBRADIO_* defaults.
	_ = godotenv.Load()

	station := flag.String("station", envOr("WEBRADIO_STATION", "5"), "Menu key of the station to tune in at startup")
	volume := flag.Int("volume", envOrInt("WEBRADIO_VOLUME", audioengine.DefaultVolume),
		fmt.Sprintf("Startup volume (%d..%d)", audioengine.MinVolume, audioengine.MaxVolume))
	backend := flag.String("backend", envOr("WEBRADIO_BACKEND", "beep"), "Audio backend: beep (in-process) or exec (external player)")
	playerCmd := flag.String("player", os.Getenv("WEBRADIO_PLAYER"), "External player command for the exec backend (auto-detected when empty)")
	cacheDir := flag.String("cache-dir", os.Getenv("WEBRADIO_CACHE_DIR"), "Directory for synthesized speech and test files")
	console := flag.Bool("console", false, "Plain raw-terminal console instead of the full-screen UI")
	listStations := flag.Bool("list", false, "Print the station menu and exit")
	connectAttempts := flag.Int("connect-attempts", 10, "Network probe attempts before giving up (0 = retry forever)")
	connectDelay := flag.Duration("connect-delay", time.Second, "Delay between network probe attempts")
	showLogs := flag.Bool("show-logs", false, "Show recent log messages inside the UI")
	flag.Parse()

	if *cacheDir == "" {
		*cacheDir = webradio.DefaultCacheDir()
	}

	stationKey := '5'
	if len(*station) == 1 {
		stationKey = rune((*station)[0])
	} else {
		fmt.Fprintf(os.Stderr, "Invalid -station %q: expected a single menu key\n", *station)
		os.Exit(2)
	}

	engine, err := buildEngine(*backend, *playerCmd, *cacheDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *listStations {
		printMenu(engine, *cacheDir)
		return
	}

	// Log to a file so the UI stays clean; the -show-logs box mirrors it.
	logFile, err := tea.LogToFile("webradio-debug.log", "webradio")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error setting up logging:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := checkNetwork(ctx, stationKey, *connectAttempts, *connectDelay, *console); err != nil {
		fmt.Fprintln(os.Stderr, "==> Connection to network failed:", err)
		os.Exit(1)
	}

	if *console {
		runConsole(ctx, engine, stationKey, *volume, *cacheDir)
		return
	}
	runUI(engine, stationKey, *volume, *cacheDir, *showLogs)
}

// checkNetwork probes the startup station's host before any audio work, so
// a machine without connectivity fails fast with a clear message.
func checkNetwork(ctx context.Context, stationKey rune, attempts int, delay time.Duration, console bool) error {
	url, ok := webradio.StationURL(stationKey)
	if !ok {
		return fmt.Errorf("no station bound to key %q", stationKey)
	}
	target, err := webradio.StationTarget(url)
	if err != nil {
		return err
	}
	details, err := webradio.WaitForNetwork(ctx, target, attempts, delay)
	if err != nil {
		for _, line := range webradio.NearbyInterfaces() {
			fmt.Fprintln(os.Stderr, "  ", line)
		}
		return err
	}
	log.Printf("%s", details)
	if console {
		fmt.Println(details)
	}
	return nil
}

func buildEngine(backend, playerCmd, cacheDir string) (audioengine.Engine, error) {
	switch backend {
	case "beep":
		return audioengine.NewBeepEngine(cacheDir), nil
	case "exec":
		return audioengine.NewExecEngine(playerCmd, cacheDir)
	default:
		return nil, fmt.Errorf("unknown backend %q: want beep or exec", backend)
	}
}

func runUI(engine audioengine.Engine, stationKey rune, volume int, cacheDir string, showLogs bool) {
	model := webradio.New(
		webradio.WithEngine(engine),
		webradio.WithStation(stationKey),
		webradio.WithVolume(volume),
		webradio.WithCacheDir(cacheDir),
		webradio.WithLogMessages(showLogs),
	)
	if model == nil {
		fmt.Fprintln(os.Stderr, "Error: invalid configuration")
		os.Exit(1)
	}
	teaModel, err := model.InitModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing UI:", err)
		os.Exit(1)
	}
	defer model.Cleanup()

	p := tea.NewProgram(teaModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		os.Exit(1)
	}
}

func runConsole(ctx context.Context, engine audioengine.Engine, stationKey rune, volume int, cacheDir string) {
	defer engine.Stop()
	c := webradio.NewConsole(engine, webradio.ConsoleConfig{
		CacheDir:    cacheDir,
		StartKey:    stationKey,
		StartVolume: volume,
	}, os.Stdin, os.Stdout)
	if err := c.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println()
}

func printMenu(engine audioengine.Engine, cacheDir string) {
	d := webradio.NewDispatcher(engine, webradio.DispatcherConfig{CacheDir: cacheDir})
	for _, e := range d.Registry().Entries() {
		fmt.Printf("[%c] %s\n", e.Key, e.Label)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}
