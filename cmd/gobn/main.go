// Command gobn is the CLI entry point. It wires the adapters to the
// core services and hands control to the cobra command tree.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	configfile "github.com/lattice-labs/gobn-cli/internal/adapters/driven/config/file"
	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/shell"
	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/toolchain"
	"github.com/lattice-labs/gobn-cli/internal/adapters/driving/cli"
	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/services"
	"github.com/lattice-labs/gobn-cli/internal/normalisers"
	"github.com/lattice-labs/gobn-cli/internal/normalisers/file"
	"github.com/lattice-labs/gobn-cli/internal/normalisers/frame"
	"github.com/lattice-labs/gobn-cli/internal/normalisers/matrix"
)

// version is overridden at release build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gobn: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening configuration: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("determining home directory: %w", err)
	}

	toolchainRoot := config.GetString(configfile.KeyToolchainRoot)
	if toolchainRoot == "" {
		toolchainRoot = filepath.Join(home, ".gobn", "toolchain")
	}
	workDir := config.GetString(configfile.KeyWorkDir)
	if workDir == "" {
		workDir = filepath.Join(home, ".gobn", "work")
	}

	layout := domain.NewToolchainLayout(toolchainRoot)
	if v := config.GetString(configfile.KeySolverVersion); v != "" {
		layout.SolverVersion = v
	}
	if v := config.GetString(configfile.KeyBackendVersion); v != "" {
		layout.BackendVersion = v
	}

	runs, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer runs.Close()

	probe := toolchain.NewFSProbe(layout)
	executor := shell.NewExecutor()

	// Stream build and solver output when attached to a terminal.
	var installOpts []services.InstallOption
	engineOpts := []services.EngineOption{services.WithRunStore(runs)}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		installOpts = append(installOpts, services.WithBuildOutput(os.Stdout))
		engineOpts = append(engineOpts, services.WithSolverOutput(os.Stdout))
	}
	if v := config.GetInt(configfile.KeySolverVerbosity); v > 0 {
		engineOpts = append(engineOpts, services.WithSolverVerbosity(v))
	}

	registry := normalisers.NewRegistry(file.New(), frame.New(), matrix.New())

	engine := services.NewLearnEngine(
		services.NewSettingsService(filepath.Join(workDir, "gobnilp.set")),
		services.NewConstraintService(filepath.Join(workDir, "constraints.con")),
		services.NewDataService(registry, filepath.Join(workDir, "data.dat"), config.GetString(configfile.KeyDataDelimiter)),
		services.NewSolverService(layout, probe, executor),
		engineOpts...,
	)

	cli.SetVersion(version)
	cli.Init(cli.Wiring{
		Installer: services.NewInstallService(layout, probe, executor, installOpts...),
		Learner:   engine,
		History:   services.NewHistoryService(runs),
		Config:    config,
	})

	return cli.Execute()
}
