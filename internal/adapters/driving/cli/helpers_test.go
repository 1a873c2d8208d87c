package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/lattice-labs/gobn-cli/internal/adapters/driven/storage/memory"
	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driving"
)

// fakeInstaller records which operations were invoked.
type fakeInstaller struct {
	built     bool
	cleaned   bool
	buildErr  error
	statusVal map[domain.Dependency]domain.InstallationState
}

func (f *fakeInstaller) EnsureBuilt(context.Context) error {
	if f.buildErr != nil {
		return f.buildErr
	}
	f.built = true
	return nil
}

func (f *fakeInstaller) Status(context.Context) (map[domain.Dependency]domain.InstallationState, error) {
	return f.statusVal, nil
}

func (f *fakeInstaller) Clean(context.Context) error {
	f.cleaned = true
	return nil
}

// fakeLearner records the last request and returns a fixed network.
type fakeLearner struct {
	lastReq     driving.LearnRequest
	network     *domain.LearnedNetwork
	learnErr    error
	settings    domain.Settings
	unknown     []string
	constraints domain.ConstraintSet
}

func (f *fakeLearner) Learn(_ context.Context, req driving.LearnRequest) (*domain.LearnedNetwork, error) {
	f.lastReq = req
	if f.learnErr != nil {
		return nil, f.learnErr
	}
	return f.network, nil
}

func (f *fakeLearner) SetSettings(overrides domain.Settings) []string {
	if f.settings == nil {
		f.settings = make(domain.Settings)
	}
	for k, v := range overrides {
		f.settings[k] = v
	}
	return f.unknown
}

func (f *fakeLearner) SetConstraints(set domain.ConstraintSet) error {
	f.constraints = set
	return nil
}

func (f *fakeLearner) Settings() domain.Settings {
	return f.settings
}

func (f *fakeLearner) Constraints() domain.ConstraintSet {
	return f.constraints
}

func testNetwork() *domain.LearnedNetwork {
	return &domain.LearnedNetwork{
		Variables: []domain.VariableName{"X", "Y", "Z"},
		Arcs: []domain.Arc{
			{Parent: "X", Child: "Y", Score: -78.3},
			{Parent: "X", Child: "Z", Score: -79.4},
			{Parent: "Y", Child: "Z", Score: -79.4},
		},
		Score: -244.186,
	}
}

// withWiring installs fakes for one test and restores afterwards.
func withWiring(t *testing.T, w Wiring) {
	t.Helper()
	prevInstall := installService
	prevLearn := learnService
	prevHistory := historyService
	prevConfig := configStore
	Init(w)
	t.Cleanup(func() {
		installService = prevInstall
		learnService = prevLearn
		historyService = prevHistory
		configStore = prevConfig
	})
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func newMemoryHistory(t *testing.T, records ...domain.RunRecord) *memory.RunStore {
	t.Helper()
	store := memory.NewRunStore()
	for _, rec := range records {
		if err := store.Save(context.Background(), rec); err != nil {
			t.Fatalf("seeding run store: %v", err)
		}
	}
	return store
}
