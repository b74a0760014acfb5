// cmd/polyroots/main.go — polynomial real-root calculator CLI.
//
// Coefficients are supplied highest to lowest degree, either as arguments,
// piped through stdin, or through an interactive prompt loop when both
// stdin and stdout are terminals.
//
// Usage:
//
//	polyroots 1 -2 1
//	echo "1 0 -1" | polyroots --machine
//	polyroots            (interactive; type "exit" to quit)
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	polyroots "github.com/tmaxmax/polynomial-roots-calculator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "polyroots [coefficients...]",
		Short: "Compute real roots of a polynomial from its coefficients",
		Long: `Computes the real roots of a univariate polynomial using closed-form and
structural algebraic reductions. Coefficients are given from the highest to
the lowest monomial.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.Float64("tolerance", polyroots.DefaultTolerance, "near-zero tolerance for structural detection")
	flags.Bool("machine", false, "force machine-readable output (value:multiplicity pairs)")
	flags.Float64("at", 1, "point at which the polynomial and derivative are evaluated")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("config", "", "path to a YAML config file")

	v.SetEnvPrefix("POLYROOTS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger := setupLogger(v.GetString("log-level"))
	solver := polyroots.NewSolver(v.GetFloat64("tolerance"))
	at := v.GetFloat64("at")

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	mode := polyroots.ModeMachine
	if interactive && !v.GetBool("machine") {
		mode = polyroots.ModeInteractive
	}

	out := cmd.OutOrStdout()

	switch {
	case len(args) > 0:
		return solveOnce(out, logger, solver, args, at, mode)
	case interactive:
		return promptLoop(cmd.InOrStdin(), out, logger, solver, at, mode)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		return solveOnce(out, logger, solver, strings.Fields(string(data)), at, mode)
	}
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func solveOnce(out io.Writer, logger *logrus.Logger, solver polyroots.Solver, tokens []string, at float64, mode polyroots.Mode) error {
	p, err := polyroots.ParseCoefficients(tokens)
	if err != nil {
		return err
	}

	if bound, ok := polyroots.RootBound(p); ok {
		logger.WithFields(logrus.Fields{
			"bound": bound,
			"grade": p.Grade(),
		}).Debug("all real roots lie within [-bound, bound]")
	}

	report := solver.FindRoots(p)

	if mode == polyroots.ModeInteractive {
		d := p.Derivative()
		fmt.Fprintf(out, "Polynomial: %s; p(%g) = %g\n", p, at, p.Evaluate(at))
		fmt.Fprintf(out, "Derivative: %s; d(%g) = %g\n", d, at, d.Evaluate(at))
	}
	fmt.Fprintln(out, polyroots.FormatReport(report, mode))
	return nil
}

func promptLoop(in io.Reader, out io.Writer, logger *logrus.Logger, solver polyroots.Solver, at float64, mode polyroots.Mode) error {
	fmt.Fprintln(out, "Welcome to the polynomial roots calculator!")
	fmt.Fprintln(out, `Please type in the coefficients, from the highest to the lowest monomial. Type "exit" to quit.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		if err := solveOnce(out, logger, solver, strings.Fields(line), at, mode); err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
	return scanner.Err()
}
