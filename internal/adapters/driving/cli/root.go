// Package cli implements the gobn command-line interface using cobra.
// Commands hold no business logic; they translate flags and arguments
// into calls on the driving ports and render the results.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driving"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by the composition root before Execute runs.
var (
	installService driving.Installer
	learnService   driving.Learner
	historyService driving.History
	configStore    driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "gobn",
	Short: "Learn Bayesian network structures with GOBNILP",
	Long: `gobn drives the GOBNILP solver to learn Bayesian network structures
from discrete observation data.

It manages the solver toolchain (unpacking and building GOBNILP against
the SCIP optimisation suite), prepares the solver's settings, constraint
and data files, runs the solver, and parses the learned network out of
its output.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output")
}

// Wiring connects the commands to their backing services.
type Wiring struct {
	Installer driving.Installer
	Learner   driving.Learner
	History   driving.History
	Config    driven.ConfigStore
}

// Init installs the service wiring. Must be called before Execute.
func Init(w Wiring) {
	installService = w.Installer
	learnService = w.Learner
	historyService = w.History
	configStore = w.Config
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
