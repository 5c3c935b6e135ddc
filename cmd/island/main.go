package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/config"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/mapgen"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/rules"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	layout := flag.String("layout", "", "Map layout: classic, random or file (empty to use config default)")
	mapFile := flag.String("map", "", "Map file to load, implies -layout file")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default)")
	turns := flag.Int("turns", 10, "Number of turns to play")
	savePath := flag.String("save", "", "Write the final board to this file")
	delay := flag.Duration("delay", 0, "Pause between turns")
	watch := flag.Bool("watch", false, "Apply log level changes when the config file changes")
	riseEvery := flag.Int("rise-every", 0, "Raise the water level every n turns (0 never)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load environment config: %v\n", err)
		os.Exit(1)
	}
	// Flags override a private copy; hot reloads never touch it.
	cfg := config.Snapshot()

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *mapFile != "" {
		cfg.Game.Map.File = *mapFile
		cfg.Game.Map.Layout = config.LayoutFile
	}
	if *layout != "" {
		cfg.Game.Map.Layout = *layout
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if err := config.Validate(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.Log.Level, cfg.Log.Format)

	if *watch {
		config.WatchConfig(func(next config.Config) {
			if level, err := zerolog.ParseLevel(next.Log.Level); err == nil && level != zerolog.NoLevel {
				zerolog.SetGlobalLevel(level)
			}
			log.Info().Str("path", config.ConfigFilePath()).Str("log_level", next.Log.Level).Msg("Config reloaded")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &cfg, *turns, *riseEvery, *delay, *savePath); err != nil {
		log.Fatal().Err(err).Msg("Game failed")
	}
}

func run(ctx context.Context, cfg *config.Config, turns, riseEvery int, delay time.Duration, savePath string) error {
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", cfg.Game.Seed).Msg("Game seed")
	rng := rand.New(rand.NewSource(cfg.Game.Seed))

	board, err := buildBoard(cfg, rng)
	if err != nil {
		return err
	}

	kinds, err := cfg.AdventurerKinds()
	if err != nil {
		return err
	}

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(cfg.Development.VerboseLogging)
	bus.Subscribe(eventLogger)
	stats := subscribers.NewStatsSubscriber("stats")
	bus.Subscribe(stats)

	engine, err := game.NewEngine(ctx, game.GameConfig{
		Board:         board,
		Adventurers:   kinds,
		ActionPoints:  cfg.Game.Turn.ActionPoints,
		WaterLevel:    game.WaterLevel(cfg.Game.WaterLevel.Start),
		InitialFloods: cfg.Game.Flood.InitialDraw,
		Rng:           rng,
		Logger:        log.Logger,
		EventBus:      bus,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	fmt.Printf("Initial board:\n%s\n", engine.Board(cfg.Development.ShowCoordinates))

	for turn := 0; turn < turns && !engine.IsOver(); turn++ {
		active := engine.Active()
		if err := playActions(engine, rng); err != nil {
			return err
		}
		if err := engine.EndActions(ctx); err != nil {
			return err
		}
		fmt.Printf("After the %s's turn:\n%s\n", active.Kind(), engine.Board(cfg.Development.ShowCoordinates))

		if riseEvery > 0 && (turn+1)%riseEvery == 0 {
			if level := engine.WatersRise(); level.IsDeadly() {
				if err := engine.End("water level is deadly"); err != nil {
					return err
				}
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	summary := stats.Stats()
	log.Info().
		Int("turns", summary.Turns).
		Int("tiles_flooded", summary.TilesFlooded).
		Strs("tiles_sunk", summary.TilesSunk).
		Strs("stranded", summary.Stranded).
		Int("rejected", summary.Rejected).
		Int("peak_water", summary.PeakWater).
		Interface("drains", summary.Drains).
		Msg("Game summary")

	if savePath != "" {
		if err := island.Save(savePath, engine.Island()); err != nil {
			return err
		}
		log.Info().Str("path", savePath).Msg("Board saved")
	}
	return nil
}

func buildBoard(cfg *config.Config, rng *rand.Rand) (*island.Board, error) {
	switch cfg.Game.Map.Layout {
	case config.LayoutFile:
		return island.Load(cfg.Game.Map.File)
	case config.LayoutRandom:
		mapCfg := mapgen.DefaultMapConfig(uint(cfg.Game.Map.Width), uint(cfg.Game.Map.Height))
		mapCfg.MaxAttempts = cfg.Game.Map.MaxAttempts
		return mapgen.NewGenerator(mapCfg, rng).Generate()
	default:
		return mapgen.NewGenerator(mapgen.DefaultMapConfig(6, 6), rng).GenerateClassic()
	}
}

// playActions spends the active adventurer's actions: drain a flooded tile
// in reach if there is one, otherwise wander to a random legal spot.
func playActions(engine *game.Engine, rng *rand.Rand) error {
	for {
		action, ok := chooseAction(engine.LegalActions(), rng)
		if !ok {
			return nil
		}
		if err := engine.Apply(action); err != nil {
			return err
		}
	}
}

func chooseAction(legal rules.LegalActions, rng *rand.Rand) (game.Action, bool) {
	if drains := sortedCoords(legal.Drains); len(drains) > 0 {
		return game.Action{Type: game.ActionTypeDrain, Target: drains[rng.Intn(len(drains))]}, true
	}

	var options []game.Action
	for _, c := range sortedCoords(legal.Moves) {
		options = append(options, game.Action{Type: game.ActionTypeMove, Target: c})
	}
	for _, c := range sortedCoords(legal.SpecialMoves) {
		options = append(options, game.Action{Type: game.ActionTypeSpecialMove, Target: c})
	}
	if len(options) == 0 {
		return game.Action{}, false
	}
	return options[rng.Intn(len(options))], true
}

func sortedCoords(set mapset.Set[core.Coordinate]) []core.Coordinate {
	out := make([]core.Coordinate, 0, set.Size())
	set.Each(func(c core.Coordinate) {
		out = append(out, c)
	})
	slices.SortFunc(out, core.Coordinate.Compare)
	return out
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
