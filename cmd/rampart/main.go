package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mireval/rampart/internal/engine"
	"github.com/mireval/rampart/internal/loader"
	"github.com/mireval/rampart/internal/models"
	"github.com/mireval/rampart/internal/replay"
	"github.com/mireval/rampart/internal/strategy"
)

var (
	tuningFile string
	replayDir  string
	seed       int64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rampart",
		Short: "Rampart Turn-Based Defense Agent",
		Long: `A turn-decision agent for lane-based tower-defense matches.
It reads battlefield snapshots from the game engine on stdin and
emits build/spawn order batches on stdout, one batch per turn.`,
		RunE: runAgent,
	}

	rootCmd.PersistentFlags().StringVarP(&tuningFile, "tuning", "t", "", "Path to YAML tuning file")
	rootCmd.Flags().StringVarP(&replayDir, "replay-dir", "r", "", "Directory for decision logs (overrides tuning)")
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Random seed (0 = from clock, overrides tuning)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "plan",
		Short: "Print the resolved placement plan",
		RunE:  runPlan,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a stderr-only logger: the engine owns stdout, so every
// diagnostic line has to stay off it.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func runAgent(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tuning, err := loader.LoadTuning(tuningFile)
	if err != nil {
		return err
	}
	if seed != 0 {
		tuning.Seed = seed
	}
	if replayDir != "" {
		tuning.ReplayDir = replayDir
	}

	var rec *replay.Recorder
	if tuning.ReplayDir != "" {
		rec, err = replay.NewRecorder(tuning.ReplayDir)
		if err != nil {
			return err
		}
		defer func() { _ = rec.Close() }()
		logger.Info("decision log enabled", zap.String("gameId", rec.GameID()))
	}

	agent := strategy.New(tuning, rec, logger)
	session := engine.NewSession(os.Stdin, os.Stdout, logger)
	return session.Run(agent)
}

func runPlan(cmd *cobra.Command, args []string) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	tuning, err := loader.LoadTuning(tuningFile)
	if err != nil {
		return err
	}

	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Rampart                  │")
	titleColor.Println("│  Placement Plan           │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()

	cfg := models.DefaultGameConfig()
	plan := strategy.DefaultPlan(tuning)

	infoColor.Printf("Protected corridor: columns %d..%d\n", tuning.CorridorMinX, tuning.CorridorMaxX)
	infoColor.Printf("Entries: %d\n\n", len(plan.Entries()))

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Tier", "Role", "Coordinate", "Upgrade", "Pair Cost"}),
	)
	for i, e := range plan.Entries() {
		upgrade := ""
		pairCost := cfg.Unit(e.Role.UnitClass()).BuildCost
		if e.RequiresUpgrade {
			upgrade = "yes"
			pairCost = cfg.PairCost(e.Role)
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			e.Tier.String(),
			string(e.Role),
			fmt.Sprintf("(%d, %d)", e.At.X, e.At.Y),
			upgrade,
			fmt.Sprintf("%.0f", pairCost),
		})
	}
	_ = table.Render()

	fmt.Println()
	infoColor.Println("Launch candidates:")
	for _, c := range strategy.DefaultLaunchCandidates() {
		fmt.Printf("   • (%d, %d)\n", c.X, c.Y)
	}
	return nil
}
