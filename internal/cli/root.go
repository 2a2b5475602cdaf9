package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AustinJGreen/montyhall/internal/logger"
	"github.com/AustinJGreen/montyhall/internal/monty"
	"github.com/AustinJGreen/montyhall/internal/random"
)

const (
	defaultTrials   = 10_000_000
	defaultHostRule = "avoid-guess"
)

var defaultStrategies = []string{"switch", "stay"}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	trials     int
	strategies []string
	seed       uint64
	hostRule   string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "montyhall",
		Short:        "Estimate how often switching or staying wins the three-door game",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Debug:  opts.debug,
			})
			defer cleanup()

			return run(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.trials, "trials", "n", defaultTrials, "rounds to play per strategy")
	f.StringSliceVarP(&opts.strategies, "strategy", "s", defaultStrategies, "strategies to score, in order (switch, stay)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible run (0 picks one at random)")
	f.StringVar(&opts.hostRule, "host-rule", defaultHostRule, "which doors the host may open (avoid-guess, ignore-guess)")
	f.BoolVar(&opts.debug, "debug", false, "log diagnostics to stderr")
	_ = f.MarkHidden("host-rule")

	return cmd
}

func run(w io.Writer, opts options) error {
	if opts.trials <= 0 {
		return fmt.Errorf("--trials must be positive: %w", monty.ErrNoTrials)
	}

	strategies, err := monty.ParseStrategies(opts.strategies)
	if err != nil {
		return err
	}

	rule, err := monty.ParseHostRule(opts.hostRule)
	if err != nil {
		return err
	}

	log := logger.L()
	seed := opts.seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
		log.Info("seed.generated", "seed", seed)
	}

	p := message.NewPrinter(language.English)
	log.Debug("trials.start",
		"trials", p.Sprintf("%d", opts.trials),
		"strategies", len(strategies),
		"rule", rule.String(),
		"seed", seed,
	)

	sim := monty.NewSimulator(random.New(seed), rule)
	for _, s := range strategies {
		tally, err := sim.Run(s, opts.trials)
		if err != nil {
			return err
		}
		pct, err := tally.Percentage()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s wins %v%% of the time.\n", s, pct)
	}
	return nil
}
