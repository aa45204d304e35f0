package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/ptcgx/internal/attack"
	"github.com/peterkuimelis/ptcgx/internal/game"
	ptcgxmcp "github.com/peterkuimelis/ptcgx/internal/mcp"
	"github.com/peterkuimelis/ptcgx/internal/scenario"
)

type config struct {
	Cards    string `env:"PTCGX_CARDS" envDefault:"cards.yaml"`
	Scenario string `env:"PTCGX_SCENARIO"`
	Seed     int64  `env:"PTCGX_SEED" envDefault:"0"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	db, err := game.ParseCardFile(cfg.Cards)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}
	session := ptcgxmcp.NewSession(db, attack.BaseFormat(), cfg.Seed)
	if cfg.Scenario != "" {
		sc, err := scenario.ParseFile(cfg.Scenario)
		if err != nil {
			return err
		}
		if _, err := session.Load(sc); err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
	}

	s := server.NewMCPServer("ptcgx", "1.0.0")
	ptcgxmcp.RegisterTools(s, session)
	return server.ServeStdio(s)
}
