package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/currency"

	"github.com/govalues/monet"
	"github.com/govalues/monet/internal/expr"
)

func newFormatCommand(opts *options) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "format AMOUNT CODE",
		Short: "Format an amount of money",
		Long: `Format an amount of money in the given currency. By default the amount
is shown with as many fractional digits as the currency has minor units.`,
		Example: "  monet format 21.25 CHF --precision 4\n  monet format -- -0.5 USD",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(opts, "format")
			if err != nil {
				return err
			}
			m, err := monet.ParseMoney(args[1], args[0])
			if err != nil {
				return err
			}
			s, err := e.text(m, precision)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "Number of fractional digits (0-6, default: currency minor units)")

	return cmd
}

func newConvertCommand(opts *options) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:     "convert AMOUNT FROM TO",
		Short:   "Convert money to another currency",
		Long:    `Convert an amount of money from one currency to another using the configured rate table.`,
		Example: "  monet convert 1 CHF USD",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(opts, "convert")
			if err != nil {
				return err
			}
			m, err := monet.ParseMoney(args[1], args[0])
			if err != nil {
				return err
			}
			to, err := monet.ParseCode(args[2])
			if err != nil {
				return err
			}
			got, err := m.Convert(to, e.rates)
			if err != nil {
				e.log.Warn("conversion failed", "from", m.Code(), "to", to, "error", err)
				return err
			}
			s, err := e.text(got, precision)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "Number of fractional digits (0-6, default: currency minor units)")

	return cmd
}

func newEvalCommand(opts *options) *cobra.Command {
	var (
		precision int
		explain   bool
	)

	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a money expression",
		Long: `Evaluate an expression such as "(100 EUR + 6 USD) * 1.077".
Money may be added and subtracted across currencies, and multiplied or
divided by plain numbers. The left operand determines the currency of
the result.`,
		Example: `  monet eval "1 USD + 1 CHF"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(opts, "eval")
			if err != nil {
				return err
			}
			op, err := expr.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			e.log.Debug("evaluating", "expr", op.String())
			got, err := op.Execute(e.rates)
			if err != nil {
				return err
			}
			s, err := e.text(got, precision)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if explain {
				if _, err := fmt.Fprintf(out, "%v = ", op); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(out, s)
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "Number of fractional digits (0-6, default: currency minor units)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print the parsed expression before the result")

	return cmd
}

func newCurrenciesCommand(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List known currencies",
		Long: `List the currencies of the registry, that is the ISO 4217 currencies
and those defined in currencies.file. With --check, only the currencies
whose minor units differ from CLDR are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(opts, "currencies")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ci := range e.registry.Infos() {
				if !check {
					if _, err := fmt.Fprintf(out, "%v  %v  %v\n", ci.Code(), ci.Units(), ci.Name()); err != nil {
						return err
					}
					continue
				}
				msg, ok := checkCLDR(ci)
				if ok {
					continue
				}
				if _, err := fmt.Fprintf(out, "%v  %v\n", ci.Code(), msg); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "List currencies whose minor units differ from CLDR")

	return cmd
}

// checkCLDR compares the minor units of a currency with the standard
// rounding scale in CLDR.
func checkCLDR(ci monet.CurrencyInfo) (string, bool) {
	unit, err := currency.ParseISO(ci.Code())
	if err != nil {
		return "unknown to CLDR", false
	}
	scale, _ := currency.Standard.Rounding(unit)
	if scale != int(ci.Units()) {
		return fmt.Sprintf("units %v, CLDR %v", ci.Units(), scale), false
	}
	return "", true
}
