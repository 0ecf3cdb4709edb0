// Package container wires configuration, storage, engines and servers into a
// runnable application.
package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"stratcore/adapters/knowledge"
	"stratcore/adapters/postgres"
	"stratcore/adapters/rng"
	"stratcore/internal"
	"stratcore/internal/api"
	"stratcore/internal/config"
	"stratcore/internal/ops"
	"stratcore/internal/recalibration"
	"stratcore/internal/sensitivity"
	"stratcore/internal/symmetry"
	"stratcore/internal/transfer"
	"stratcore/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Log    *internal.Logger

	// Infrastructure. DB is nil when no DATABASE_URL is configured; the
	// stores stay nil and every engine runs compute-only.
	DB *sqlx.DB

	// Stores
	RunStore      ports.RunStore
	PatternStore  ports.PatternStore
	TransferStore ports.TransferStore

	// Knowledge and randomness
	Knowledge ports.KnowledgeRepository
	RNG       ports.RNGPort

	// Engines
	Sensitivity   *sensitivity.Runner
	Symmetry      *symmetry.Engine
	Transfer      *transfer.Engine
	Recalibration *recalibration.Engine

	// Servers
	API *api.Server
	Ops *ops.Server
}

// New builds the full dependency graph from configuration
func New(cfg *config.Config, log *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	c := &Container{Config: cfg, Log: log}

	if cfg.Database.URL != "" {
		if err := c.initDatabase(); err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
	} else {
		log.Info("no DATABASE_URL configured: persistence disabled")
	}

	c.Knowledge = knowledge.NewCatalogue()
	c.RNG = rng.NewSeededProvider()

	c.initEngines()
	c.initServers()
	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := sqlx.Connect("postgres", c.Config.Database.URL)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)

	c.DB = db
	c.RunStore = postgres.NewRunStore(db)
	c.PatternStore = postgres.NewPatternStore(db)
	c.TransferStore = postgres.NewTransferStore(db)
	return nil
}

func (c *Container) initEngines() {
	sensCfg := sensitivity.DefaultConfig()
	sensCfg.Samples = c.Config.Engine.SensitivitySamples
	sensCfg.BaseSeed = c.Config.Engine.BaseSeed
	c.Sensitivity = sensitivity.NewRunner(sensCfg, c.RNG, c.RunStore, c.Log)

	c.Symmetry = symmetry.NewEngine(c.Knowledge, c.PatternStore, c.Config.Engine.SimilarityThreshold, c.Log)

	transferCfg := transfer.DefaultConfig()
	transferCfg.FeasibilityGate = c.Config.Engine.FeasibilityGate
	c.Transfer = transfer.NewEngine(transferCfg, c.Knowledge, c.TransferStore, c.Log)

	c.Recalibration = recalibration.NewEngine(c.Log)
}

func (c *Container) initServers() {
	handlers := api.NewHandlers(
		c.Sensitivity, c.Symmetry, c.Transfer, c.Recalibration,
		c.Knowledge, c.RunStore, c.PatternStore, c.Log,
	)
	c.API = api.NewServer(c.Config.Server, handlers, c.Log)
	if c.Config.Ops.Enabled {
		c.Ops = ops.NewServer(c.Config.Ops, c.DB, c.Log)
	}
}

// Close releases held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
