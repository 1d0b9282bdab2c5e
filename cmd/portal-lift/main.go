package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/portal-lift/audio"
	"github.com/lixenwraith/portal-lift/autoplay"
	"github.com/lixenwraith/portal-lift/config"
	"github.com/lixenwraith/portal-lift/constants"
	"github.com/lixenwraith/portal-lift/core"
	"github.com/lixenwraith/portal-lift/engine"
	"github.com/lixenwraith/portal-lift/events"
	"github.com/lixenwraith/portal-lift/render"
)

var (
	presetFlag      = flag.String("preset", constants.DefaultPreset, "Built-in preset name")
	configFlag      = flag.String("config", "", "Preset file (.toml, .yaml, .yml), overrides -preset")
	watchFlag       = flag.Bool("watch", false, "Reload the -config file when it changes")
	debugFlag       = flag.Bool("debug", false, "Write debug logs to logs/portal-lift.log")
	simulateFlag    = flag.Bool("simulate", false, "Play one headless round and print a report")
	cpsFlag         = flag.String("cps", "10", "Simulated clicks per second, comma-separated for a sweep")
	maxTimeFlag     = flag.Duration("max-time", autoplay.DefaultMaxDuration, "Simulated time limit for rounds that never win")
	listPresetsFlag = flag.Bool("list-presets", false, "Print the built-in presets and exit")
	exportFlag      = flag.String("export", "", "Write the selected preset to a .toml or .yaml file and exit")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, autoplay.LoseStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *listPresetsFlag {
		fmt.Println(autoplay.PresetTable(config.Builtins()))
		return nil
	}

	preset, err := resolvePreset(*presetFlag, *configFlag)
	if err != nil {
		return err
	}
	log.Info().Str("preset", preset.Name).Msg("Starting Portal Lift")

	if *exportFlag != "" {
		if err := config.Save(*exportFlag, preset); err != nil {
			return err
		}
		fmt.Printf("Preset %s written to %s\n", preset.Name, *exportFlag)
		return nil
	}

	if *simulateFlag {
		return simulate(preset, *cpsFlag, *maxTimeFlag)
	}

	return play(preset, *configFlag, *watchFlag)
}

// resolvePreset prefers the preset file and falls back to the named built-in when it fails to load
func resolvePreset(name, path string) (config.Preset, error) {
	builtin, err := config.Builtin(name)
	if err != nil {
		return config.Preset{}, fmt.Errorf("%w (available: %s)", err, strings.Join(config.Names(), ", "))
	}
	if path == "" {
		return builtin, nil
	}

	p, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrUnsupportedFormat) {
			return config.Preset{}, err
		}
		log.Error().Err(err).Str("path", path).Msg("Preset file failed to load, using built-in")
		fmt.Fprintf(os.Stderr, "Preset file failed to load: %v (using %s)\n", err, builtin.Name)
		return builtin, nil
	}
	return p, nil
}

func simulate(preset config.Preset, cps string, maxTime time.Duration) error {
	rates, err := parseRates(cps)
	if err != nil {
		return err
	}

	if len(rates) == 1 {
		res, err := autoplay.Simulate(autoplay.Options{
			Config:          preset.Config,
			ClicksPerSecond: rates[0],
			MaxDuration:     maxTime,
		})
		if err != nil {
			return err
		}
		fmt.Println(autoplay.Report(preset.Name, res))
		return nil
	}

	results, err := autoplay.Sweep(preset.Config, rates, maxTime)
	if err != nil {
		return err
	}
	fmt.Println(autoplay.SweepReport(preset.Name, results))
	return nil
}

func parseRates(s string) ([]float64, error) {
	var rates []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("cps %q: %w", part, err)
		}
		rates = append(rates, v)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: none given", autoplay.ErrInvalidRate)
	}
	return rates, nil
}

func play(preset config.Preset, configPath string, watch bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPORTAL LIFT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGAME CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	haptics := audio.NewHaptics()
	if err := haptics.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio initialization failed, continuing without rumble")
	}
	defer haptics.Cleanup()

	tp := engine.NewMonotonicTimeProvider()
	queue := events.NewEventQueue()
	display := render.NewDisplay()
	controller := engine.NewController(preset.Config, tp, display, queue)

	clock := engine.NewClockScheduler(controller.Config().TickInterval(), controller.Tick)
	controller.AttachTicker(clock)
	clock.Start()
	defer clock.Stop()

	router := events.NewRouter(queue)
	router.Register(haptics)

	game := render.NewGame(screen, controller, display, router, tp)

	if watch && configPath != "" {
		w := config.WatchPreset(configPath, constants.PresetWatchInterval, func(p config.Preset) {
			config.ApplyTo(controller, p)
		})
		defer w.Stop()
	}

	game.Run()

	log.Info().
		Uint64("ticks", clock.Ticks()).
		Uint64("events_dropped", queue.Dropped()).
		Msg("Portal Lift stopped")
	return nil
}
