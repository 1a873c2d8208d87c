package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

var (
	buildStatus bool
	buildClean  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the solver toolchain",
	Long: `Unpacks and compiles the SCIP optimisation suite and the GOBNILP
solver on top of it. Only the steps still missing are run, so a partial
or complete installation is resumed rather than redone.

With --status the current installation state is printed instead, and
with --clean the extracted source trees are removed (the distribution
archives stay in place).`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildStatus, "status", false, "report installation state without building")
	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "remove the extracted solver and backend trees")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if installService == nil {
		return errors.New("install service not configured")
	}

	ctx := context.Background()

	switch {
	case buildStatus:
		return printToolchainStatus(cmd, ctx)

	case buildClean:
		if err := installService.Clean(ctx); err != nil {
			return fmt.Errorf("cleaning toolchain: %w", err)
		}
		cmd.Println("Removed extracted solver and backend trees.")
		return nil

	default:
		if err := installService.EnsureBuilt(ctx); err != nil {
			return fmt.Errorf("building toolchain: %w", err)
		}
		cmd.Println("Solver toolchain is built.")
		return nil
	}
}

func printToolchainStatus(cmd *cobra.Command, ctx context.Context) error {
	states, err := installService.Status(ctx)
	if err != nil {
		return fmt.Errorf("probing toolchain: %w", err)
	}

	cmd.Println("Toolchain status:")
	for _, dep := range []domain.Dependency{domain.DependencyBackend, domain.DependencySolver} {
		cmd.Printf("  %-8s %s\n", dep, states[dep])
	}
	return nil
}
