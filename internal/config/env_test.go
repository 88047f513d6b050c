package config

import (
	"flag"
	"testing"
)

type testConfig struct {
	Addr string `env:"BRICKYARD_TEST_ADDR" envDefault:"127.0.0.1:3000"`
	Root string `env:"BRICKYARD_TEST_ROOT" envDefault:"resources/models"`
}

func TestParseEnvThenFlags(t *testing.T) {
	t.Setenv("BRICKYARD_TEST_ROOT", "/srv/models")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.Root, "root", cfg.Root, "models root")
	if err := ParseArgs(fs, []string{"-addr", ":9000"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Fatalf("expected flag address, got %q", cfg.Addr)
	}
	if cfg.Root != "/srv/models" {
		t.Fatalf("expected env root, got %q", cfg.Root)
	}
}

func TestParseEnvRejectsNil(t *testing.T) {
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected error for nil target")
	}
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}
