// Package cli implements the monet command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/monet"
	"github.com/govalues/monet/internal/config"
	"github.com/govalues/monet/internal/logger"
	"github.com/govalues/monet/loader"
)

type options struct {
	configPath string
	logLevel   string
}

// NewCommand returns the root monet command with all subcommands attached.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "monet",
		Short: "Exact multi-currency money arithmetic",
		Long: `Monet formats, converts and evaluates monetary amounts using exact
fixed-point arithmetic and a table of currency worths.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./monet.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFormatCommand(opts),
		newConvertCommand(opts),
		newEvalCommand(opts),
		newCurrenciesCommand(opts),
	)

	return cmd
}

// env holds everything a subcommand needs after configuration is loaded.
type env struct {
	cfg      *config.Config
	registry *monet.Registry
	rates    *monet.RateTable
	log      *slog.Logger
}

func initEnv(opts *options, component string) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logger.Level = opts.logLevel
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithComponent(component)

	registry := monet.ISO()
	if cfg.Currencies.File != "" {
		r, err := loader.LoadCurrencies(cfg.Currencies.File)
		if err != nil {
			return nil, err
		}
		registry = registry.Merge(r)
		log.Debug("loaded currencies", "file", cfg.Currencies.File, "count", r.Len())
	}

	rates, err := loadRates(&cfg.Rates)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded rates", "file", cfg.Rates.File, "count", rates.Len())

	return &env{cfg: cfg, registry: registry, rates: rates, log: log}, nil
}

// loadRates reads the configured rate file and applies inline worths on top of it.
func loadRates(cfg *config.RatesConfig) (*monet.RateTable, error) {
	worths := make(map[monet.CurrencyCode]monet.ScaledAmount)
	if cfg.File != "" {
		t, err := loader.LoadRates(cfg.File)
		if err != nil {
			return nil, err
		}
		for _, c := range t.Codes() {
			w, err := t.Worth(c)
			if err != nil {
				return nil, err
			}
			worths[c] = w
		}
	}
	if len(cfg.Worth) > 0 {
		t, err := monet.ParseRateTable(cfg.Worth)
		if err != nil {
			return nil, fmt.Errorf("rates.worth: %w", err)
		}
		for _, c := range t.Codes() {
			w, err := t.Worth(c)
			if err != nil {
				return nil, err
			}
			worths[c] = w
		}
	}
	return monet.NewRateTable(worths)
}

// precision picks the number of fractional digits for money in the given currency.
// An explicit flag wins over display.precision, which wins over the currency default.
// A flag of -1 means unset.
func (e *env) precision(flag int, code monet.CurrencyCode) (int, error) {
	switch {
	case flag < -1:
		return 0, fmt.Errorf("--precision must be between -1 and %v, got %v: %w", monet.MaxPrecision, flag, monet.ErrPrecision)
	case flag >= 0:
		return flag, nil
	case e.cfg.Display.Precision >= 0:
		return e.cfg.Display.Precision, nil
	}
	return e.registry.Precision(code), nil
}

func (e *env) text(m monet.Money, flag int) (string, error) {
	prec, err := e.precision(flag, m.Code())
	if err != nil {
		return "", err
	}
	return m.Text(prec)
}
