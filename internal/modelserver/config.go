package modelserver

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"brickyard/internal/config"
	"brickyard/internal/telemetry"
)

// ServiceName identifies the listing process in logs and traces.
const ServiceName = "models"

const telemetryShutdownTimeout = 5 * time.Second

// Config holds the listing command configuration.
type Config struct {
	Port int    `env:"BRICKYARD_MODELS_PORT" envDefault:"3000"`
	Root string `env:"BRICKYARD_MODELS_ROOT" envDefault:"resources/models"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ParseConfig reads env defaults, then lets flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port for the model listing")
	fs.StringVar(&cfg.Root, "root", cfg.Root, "directory holding <brick>/<file>.stl meshes")
	if err := config.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts tracing and serves the listing until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := telemetry.Setup(ctx, ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	srv, err := New(cfg.Addr(), cfg.Root)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
