package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driving"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

var (
	learnSettings        []string
	learnConstraints     []string
	learnConstraintsFile string
	learnHeader          bool
	learnWatch           bool
)

var learnCmd = &cobra.Command{
	Use:   "learn [data-file]",
	Short: "Learn a Bayesian network structure from data",
	Long: `Runs the solver against a discrete observation data file and prints
the learned network.

Solver parameters are overridden with repeated --setting key=value
flags. Structural constraints are given either inline with repeated
--constraint flags or from a file with --constraints-file, using the
constraint grammar:

  child<-parent     require the edge parent -> child
  ~child<-parent    forbid the edge parent -> child
  A_|_B|C           require A independent of B given C

With --watch the data file is watched and the run repeats whenever it
changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runLearn,
}

func init() {
	learnCmd.Flags().StringArrayVarP(&learnSettings, "setting", "s", nil, "solver setting override (key=value, repeatable)")
	learnCmd.Flags().StringArrayVarP(&learnConstraints, "constraint", "c", nil, "structural constraint (repeatable)")
	learnCmd.Flags().StringVar(&learnConstraintsFile, "constraints-file", "", "file of structural constraints, one per line")
	learnCmd.Flags().BoolVar(&learnHeader, "header", true, "first line of the data file names the variables")
	learnCmd.Flags().BoolVarP(&learnWatch, "watch", "w", false, "re-learn whenever the data file changes")
	rootCmd.AddCommand(learnCmd)
}

func runLearn(cmd *cobra.Command, args []string) error {
	if learnService == nil {
		return errors.New("learn service not configured")
	}

	req, err := buildLearnRequest(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()

	if learnWatch {
		return watchAndLearn(cmd, ctx, args[0], req)
	}

	return learnOnce(cmd, ctx, req)
}

// buildLearnRequest assembles the request from the flags. The data file
// is passed through as-is; normalisation happens inside the engine.
func buildLearnRequest(dataPath string) (driving.LearnRequest, error) {
	req := driving.LearnRequest{
		Data: domain.FileRef{Path: dataPath, HasHeader: learnHeader},
	}

	if len(learnSettings) > 0 {
		settings, err := parseSettingFlags(learnSettings)
		if err != nil {
			return driving.LearnRequest{}, err
		}
		req.Settings = settings
	}

	lines := append([]string(nil), learnConstraints...)
	if learnConstraintsFile != "" {
		content, err := os.ReadFile(learnConstraintsFile)
		if err != nil {
			return driving.LearnRequest{}, fmt.Errorf("reading constraints file: %w", err)
		}
		lines = append(lines, strings.Split(string(content), "\n")...)
	}
	if len(lines) > 0 {
		set, err := domain.ParseConstraints(lines)
		if err != nil {
			return driving.LearnRequest{}, err
		}
		req.Constraints = &set
	}

	return req, nil
}

// parseSettingFlags turns repeated key=value flags into settings.
func parseSettingFlags(flags []string) (domain.Settings, error) {
	settings := make(domain.Settings, len(flags))
	for _, flag := range flags {
		key, value, found := strings.Cut(flag, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("%w: setting %q is not key=value", domain.ErrInvalidInput, flag)
		}
		settings[key] = domain.ParseSettingValue(strings.TrimSpace(value))
	}
	return settings, nil
}

func learnOnce(cmd *cobra.Command, ctx context.Context, req driving.LearnRequest) error {
	network, err := learnService.Learn(ctx, req)
	if err != nil {
		return fmt.Errorf("learning network: %w", err)
	}

	printNetwork(cmd, network)
	return nil
}

func printNetwork(cmd *cobra.Command, network *domain.LearnedNetwork) {
	cmd.Printf("Learned network (score %g, %d arc(s)):\n", network.Score, len(network.Arcs))
	for _, v := range network.Variables {
		parents := network.Parents(v)
		if len(parents) == 0 {
			cmd.Printf("  %s\n", v)
			continue
		}
		names := make([]string, len(parents))
		for i, p := range parents {
			names[i] = string(p)
		}
		cmd.Printf("  %s <- %s\n", v, strings.Join(names, ", "))
	}
}

// watchAndLearn re-runs the pipeline whenever the data file changes.
// Editors fire bursts of filesystem events per save, so runs are rate
// limited to one per second.
func watchAndLearn(cmd *cobra.Command, ctx context.Context, dataPath string, req driving.LearnRequest) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dataPath); err != nil {
		return fmt.Errorf("watching %s: %w", dataPath, err)
	}

	// First run happens immediately; a failure reports but keeps watching.
	if err := learnOnce(cmd, ctx, req); err != nil {
		cmd.PrintErrf("learn failed: %v\n", err)
	}

	limiter := rate.NewLimiter(rate.Every(time.Second), 1)
	cmd.Printf("Watching %s for changes. Press Ctrl-C to stop.\n", dataPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				logger.Debug("change on %s debounced", event.Name)
				continue
			}
			cmd.Printf("\n%s changed, learning again.\n", dataPath)
			if err := learnOnce(cmd, ctx, req); err != nil {
				cmd.PrintErrf("learn failed: %v\n", err)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", dataPath, watchErr)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
