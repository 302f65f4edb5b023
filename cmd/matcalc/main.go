package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/config"
	"github.com/san-kum/matcalc/internal/tui"
)

var (
	configFile string
	preset     string
	theme      string
	precision  int
	plain      bool
	// calc / power
	op      string
	left    string
	right   string
	base    string
	size    int
	power   int
	iters   int
)

// main registers the commands and runs the root command. Without a
// subcommand it opens the interactive calculator.
func main() {
	log.SetFlags(0)
	log.SetPrefix("matcalc: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "matcalc",
		Short:         "square matrix calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return report(err)
			}
			if cmd.Flags().Changed("size") {
				cfg.Size = size
				if err := cfg.Validate(); err != nil {
					return report(err)
				}
			}
			return report(tui.Run(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "decimals to print (default from config)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print matrices without styling")
	rootCmd.Flags().IntVar(&size, "size", 0, "matrix order for the calculator (default from config)")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "evaluate A op B",
		Example: `  matcalc calc --a "1,2;3,4" --b "5,6;7,8"
  matcalc calc --op all --a counting --b identity --size 3`,
		Args: cobra.NoArgs,
		RunE: runCalc,
	}
	calcCmd.Flags().StringVar(&op, "op", "mul", "operator: mul, add, sub or all")
	calcCmd.Flags().StringVar(&left, "a", "identity", "left operand: values like \"1,2;3,4\" or a preset name")
	calcCmd.Flags().StringVar(&right, "b", "identity", "right operand: values or a preset name")
	calcCmd.Flags().IntVar(&size, "size", 0, "matrix order (default: inferred from the operands, then config)")

	identityCmd := &cobra.Command{
		Use:   "identity [order]",
		Short: "print the identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  constantCmd("identity"),
	}

	zeroCmd := &cobra.Command{
		Use:   "zero [order]",
		Short: "print the zero matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  constantCmd("zero"),
	}

	powerCmd := &cobra.Command{
		Use:   "power",
		Short: "repeated product A^k with trace and norm plot",
		Args:  cobra.NoArgs,
		RunE:  runPower,
	}
	powerCmd.Flags().StringVar(&base, "a", "counting", "matrix: values or a preset name")
	powerCmd.Flags().IntVar(&power, "k", 8, "exponent")
	powerCmd.Flags().IntVar(&size, "size", 0, "matrix order (default: inferred from the operand, then config)")

	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "list operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSYMBOL")
			for _, o := range calc.Operations() {
				fmt.Fprintf(w, "%s\t%s\n", o.Name(), o)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list operand and configuration presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := calc.NewRegistry()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "OPERAND\tDESCRIPTION")
			for _, name := range reg.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, reg.Describe(name))
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "CONFIG\tSIZE\tOP\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, p.Size, p.Op(), p.Theme)
			}
			return w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [order]",
		Short: "benchmark add, sub and mul",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&iters, "iterations", 1_000_000, "iterations per operator")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return report(err)
			}
			path := "matcalc.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, cfg); err != nil {
				return report(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(calcCmd, identityCmd, zeroCmd, powerCmd, opsCmd, presetsCmd, benchCmd, initCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file, environment and the
// styling flags, in that order. The matrix order is left to each command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseOrder(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("order must be a number, got %q", arg)
	}
	return n, nil
}

// report logs err once; cobra's own printing is silenced.
func report(err error) error {
	if err != nil {
		log.Print(err)
	}
	return err
}
