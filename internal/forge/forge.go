/*
PURPOSE:
  Defines the application boundary the launcher drives: a constructor taking
  a Config and a single Execute operation.

REQUIREMENTS:
  User-specified:
  - The application is built from { verbose } and run exactly once.

  Implementation-discovered:
  - The launcher must not depend on a concrete application so tests can
    substitute fakes.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Constructed via: Constructor (NewApplication in production)

ERROR HANDLING:
  - Execute returns any failure as an error; the launcher does not inspect it.

IMPLEMENTATION RULES:
  - Keep Config limited to what the launcher forwards.

USAGE:
  app := forge.NewApplication(forge.Config{Verbose: true})
  err := app.Execute(ctx)

RELATED FILES:
  - internal/cli/root.go
*/

package forge

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/daryltucker/neuralforge/internal/output"
)

// Config is everything the launcher hands to the application.
type Config struct {
	Verbose bool
}

// Application is run once per process.
type Application interface {
	Execute(ctx context.Context) error
}

// Constructor builds an Application from its Config.
type Constructor func(Config) Application

// NeuralForge is the application shipped with the binary.
type NeuralForge struct {
	cfg Config
}

// New creates a NeuralForge.
func New(cfg Config) *NeuralForge {
	return &NeuralForge{cfg: cfg}
}

// NewApplication adapts New to a Constructor.
func NewApplication(cfg Config) Application {
	return New(cfg)
}

// Config returns the configuration the application was built with.
func (n *NeuralForge) Config() Config {
	return n.cfg
}

// Execute runs the application once.
func (n *NeuralForge) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	output.Logger.Debug("NeuralForge starting", zap.Bool("verbose", n.cfg.Verbose))
	output.Logger.Debug("NeuralForge finished", zap.Duration("duration", time.Since(start)))
	return nil
}
