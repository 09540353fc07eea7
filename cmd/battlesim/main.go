package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/udisondev/monbattle/internal/config"
	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/db"
	"github.com/udisondev/monbattle/internal/game/combat"
	"github.com/udisondev/monbattle/internal/game/duel"
	"github.com/udisondev/monbattle/internal/game/encounter"
)

const BattleConfigPath = "config/battle.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := BattleConfigPath
	if p := os.Getenv("MONBATTLE_CONFIG"); p != "" {
		cfgPath = p
	}

	flag.StringVar(&cfgPath, "config", cfgPath, "path to battle config")
	duels := flag.Int("duels", -1, "number of duels (overrides config)")
	seed := flag.Uint64("seed", 0, "base seed (overrides config when non-zero)")
	importCatalog := flag.Bool("import", false, "write the YAML catalog into PostgreSQL and exit")
	flag.Parse()

	cfg, err := config.LoadBattle(cfgPath)
	if err != nil {
		return fmt.Errorf("loading battle config: %w", err)
	}
	if *duels >= 0 {
		cfg.Simulation.Duels = *duels
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("battlesim starting", "config", cfgPath, "log_level", cfg.LogLevel)

	if *importCatalog {
		return importToDatabase(ctx, cfg)
	}

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("catalog loaded",
		"source", cfg.CatalogSource,
		"moves", catalog.MoveCount(),
		"species", catalog.SpeciesCount())

	pool, err := encounter.FromCatalog(catalog, cfg.Simulation.MinLevel, cfg.Simulation.MaxLevel)
	if err != nil {
		return fmt.Errorf("building encounter pool: %w", err)
	}

	resolver := combat.NewResolver(combat.Params{
		CritChance:  cfg.CritChance,
		VarianceMin: cfg.VarianceMin,
		VarianceMax: cfg.VarianceMax,
	}, nil)

	start := time.Now()
	report, err := duel.RunBatch(ctx, duel.BatchConfig{
		Duels:    cfg.Simulation.Duels,
		Workers:  cfg.Simulation.Workers,
		MaxTurns: cfg.Simulation.MaxTurns,
		Seed:     cfg.Simulation.Seed,
	}, pool, resolver)
	if err != nil {
		return fmt.Errorf("running duels: %w", err)
	}

	slog.Info("simulation finished",
		"duels", report.Duels,
		"avg_turns", fmt.Sprintf("%.2f", report.AverageTurns()),
		"timeouts", report.Timeouts,
		"stalls", report.Stalls,
		"elapsed", time.Since(start))
	logWinRates(report)
	return nil
}

func loadCatalog(ctx context.Context, cfg config.Battle) (*data.Catalog, error) {
	if cfg.CatalogSource != config.CatalogPostgres {
		catalog, err := data.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		return catalog, nil
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return nil, err
	}
	catalog, err := db.NewCatalogRepository(database.Pool()).LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from database: %w", err)
	}
	return catalog, nil
}

func importToDatabase(ctx context.Context, cfg config.Battle) error {
	moves, species, err := readDefs(cfg.CatalogPath)
	if err != nil {
		return err
	}
	// Проверяем каталог до записи: в БД не должно попасть то, что не загрузится обратно.
	if _, err := data.BuildCatalog(moves, species); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return err
	}
	if err := db.NewCatalogRepository(database.Pool()).SaveDefs(ctx, moves, species); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	slog.Info("catalog imported", "moves", len(moves), "species", len(species))
	return nil
}

func readDefs(path string) ([]data.MoveDef, []data.SpeciesDef, error) {
	if path == "" {
		return data.DefaultDefs()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return data.ParseDefs(raw)
}

func logWinRates(report *duel.BatchReport) {
	names := make([]string, 0, len(report.BySpecies))
	for name := range report.BySpecies {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		rec := report.BySpecies[name]
		played := rec.Wins + rec.Losses + rec.Draws
		rate := 0.0
		if played > 0 {
			rate = float64(rec.Wins) / float64(played)
		}
		slog.Info("species",
			"name", name,
			"played", played,
			"wins", rec.Wins,
			"losses", rec.Losses,
			"draws", rec.Draws,
			"win_rate", fmt.Sprintf("%.3f", rate))
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
