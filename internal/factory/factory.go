package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sudokumaster/sudokumaster/internal/dependencies/clock"
	"github.com/sudokumaster/sudokumaster/internal/dependencies/random"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/services/game"
	"github.com/sudokumaster/sudokumaster/internal/services/puzzle"
	"github.com/sudokumaster/sudokumaster/internal/services/scoring"
	"github.com/sudokumaster/sudokumaster/internal/storage"
	filestorage "github.com/sudokumaster/sudokumaster/internal/storage/file"
	"github.com/sudokumaster/sudokumaster/internal/storage/memory"
	redisstorage "github.com/sudokumaster/sudokumaster/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Engine         *puzzle.Engine
	GameController *game.Controller
	ScoringService *scoring.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// DataDir is the save-file directory (required if StorageType is "file")
	DataDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// CarveTargets overrides the difficulty table (optional)
	CarveTargets model.CarveTargets
	// RandomSeed makes puzzle generation deterministic when non-zero,
	// for debugging and reproduction
	RandomSeed int64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	} else {
		rnd = random.New()
	}

	carveTargets := cfg.CarveTargets
	if carveTargets == nil {
		carveTargets = model.DefaultCarveTargets()
	}

	return newWithDependencies(store, clk, rnd, carveTargets, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	carveTargets model.CarveTargets,
	logger *slog.Logger,
) *App {
	engine := puzzle.New(rnd, logger)
	gameController := game.NewController(store, engine, carveTargets, clk, rnd, logger)
	scoringService := scoring.New(store, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Engine:         engine,
		GameController: gameController,
		ScoringService: scoringService,
	}
}
