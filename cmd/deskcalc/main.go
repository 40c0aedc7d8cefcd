// Package main provides the CLI entrypoint for deskcalc.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driizzyy/deskcalc/internal/baseconv"
	"github.com/driizzyy/deskcalc/internal/config"
	"github.com/driizzyy/deskcalc/internal/engine"
	"github.com/driizzyy/deskcalc/internal/graph"
	"github.com/driizzyy/deskcalc/internal/model"
	"github.com/driizzyy/deskcalc/internal/plot"
	"github.com/driizzyy/deskcalc/internal/stats"
	"github.com/driizzyy/deskcalc/internal/store"
	"github.com/driizzyy/deskcalc/internal/tui"
)

const (
	defaultMode         = "standard"
	defaultAngleUnit    = "radians"
	defaultBase         = 10
	defaultWordSize     = 64
	defaultHistoryLimit = engine.DefaultHistoryLimit
	defaultPrecision    = engine.DefaultPrecision
	defaultPlotSamples  = graph.DefaultSamples
	defaultPlotHeight   = 12
	defaultPlotXMin     = -10.0
	defaultPlotXMax     = 10.0
)

var (
	rootMode         string
	rootTheme        string
	rootAngle        string
	rootBase         int
	rootWordSize     int
	rootHistoryLimit int
	rootPrecision    int
	rootPlotSamples  int
	rootPlotHeight   int

	evalMode      string
	evalAngle     string
	evalBase      int
	evalWordSize  int
	evalPrecision int
	evalNoSave    bool

	plotXMin    float64
	plotXMax    float64
	plotSamples int
	plotHeight  int
	plotAngle   string

	statsFile      string
	statsBins      int
	statsHistogram bool

	historyLast  int
	historyMode  string
	historyClear bool

	convertFrom     int
	convertTo       int
	convertWordSize int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "deskcalc",
		Short:         "TUI scientific calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&rootMode, "mode", defaultMode, "start mode (standard, scientific, programmer, graphing, statistics)")
	rootCmd.Flags().StringVar(&rootTheme, "theme", tui.DefaultTheme, "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	rootCmd.Flags().StringVar(&rootAngle, "angle", defaultAngleUnit, "angle unit for trig (radians, degrees)")
	rootCmd.Flags().IntVar(&rootBase, "base", defaultBase, "programmer-mode numeral base (2, 8, 10, 16)")
	rootCmd.Flags().IntVar(&rootWordSize, "word-size", defaultWordSize, "programmer-mode word size in bits (8, 16, 32, 64)")
	rootCmd.Flags().IntVar(&rootHistoryLimit, "history-limit", defaultHistoryLimit, "in-session history entries to keep")
	rootCmd.Flags().IntVar(&rootPrecision, "precision", defaultPrecision, "significant digits in displayed results")
	rootCmd.Flags().IntVar(&rootPlotSamples, "plot-samples", defaultPlotSamples, "sample points per plotted expression")
	rootCmd.Flags().IntVar(&rootPlotHeight, "plot-height", defaultPlotHeight, "plot height in rows")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newPlotCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &rootMode, fileCfg.Calculator.Mode)
	applyStringConfig(cmd, "theme", &rootTheme, fileCfg.Calculator.Theme)
	applyStringConfig(cmd, "angle", &rootAngle, fileCfg.Calculator.AngleUnit)
	applyIntConfig(cmd, "base", &rootBase, fileCfg.Calculator.Base)
	applyIntConfig(cmd, "word-size", &rootWordSize, fileCfg.Calculator.WordSize)
	applyIntConfig(cmd, "history-limit", &rootHistoryLimit, fileCfg.Calculator.HistoryLimit)
	applyIntConfig(cmd, "precision", &rootPrecision, fileCfg.Calculator.Precision)
	applyIntConfig(cmd, "plot-samples", &rootPlotSamples, fileCfg.Calculator.PlotSamples)
	applyIntConfig(cmd, "plot-height", &rootPlotHeight, fileCfg.Calculator.PlotHeight)

	settings, err := resolveSettings(rootMode, rootAngle, rootBase, rootWordSize, rootHistoryLimit, rootPrecision)
	if err != nil {
		return err
	}
	settings.Theme = rootTheme
	settings.PlotSamples = rootPlotSamples
	settings.PlotHeight = rootPlotHeight
	if err := validateSettings(settings); err != nil {
		return err
	}

	theme, err := tui.ParseTheme(settings.Theme)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	calc := engine.NewContext(settings)
	uiModel := tui.NewModel(calc, st, theme, settings)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate expressions and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEvalCmd,
	}
	cmd.Flags().StringVar(&evalMode, "mode", defaultMode, "evaluation mode (standard, scientific, programmer)")
	cmd.Flags().StringVar(&evalAngle, "angle", defaultAngleUnit, "angle unit for trig (radians, degrees)")
	cmd.Flags().IntVar(&evalBase, "base", defaultBase, "programmer-mode numeral base")
	cmd.Flags().IntVar(&evalWordSize, "word-size", defaultWordSize, "programmer-mode word size in bits")
	cmd.Flags().IntVar(&evalPrecision, "precision", defaultPrecision, "significant digits in results")
	cmd.Flags().BoolVar(&evalNoSave, "no-save", false, "do not record results in history")
	return cmd
}

func runEvalCmd(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(evalMode, evalAngle, evalBase, evalWordSize, 0, evalPrecision)
	if err != nil {
		return err
	}
	if err := validateSettings(settings); err != nil {
		return err
	}
	switch settings.Mode {
	case model.ModeGraphing, model.ModeStatistics:
		return fmt.Errorf("mode %q is interactive only; use the plot or stats subcommand", settings.Mode)
	}

	calc := engine.NewContext(settings)
	for _, expr := range args {
		res, err := calc.Evaluate(expr)
		if err != nil {
			return fmt.Errorf("%s: %w", expr, err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Display); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if evalNoSave {
		return nil
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	for _, entry := range calc.History() {
		if _, err := st.InsertEntry(context.Background(), entry); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
	}
	return nil
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <expression>...",
		Short: "Plot expressions in x as a terminal chart",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPlotCmd,
	}
	cmd.Flags().Float64Var(&plotXMin, "xmin", defaultPlotXMin, "left edge of the x range")
	cmd.Flags().Float64Var(&plotXMax, "xmax", defaultPlotXMax, "right edge of the x range")
	cmd.Flags().IntVar(&plotSamples, "samples", defaultPlotSamples, "sample points per expression")
	cmd.Flags().IntVar(&plotHeight, "height", defaultPlotHeight, "plot height in rows")
	cmd.Flags().StringVar(&plotAngle, "angle", defaultAngleUnit, "angle unit for trig (radians, degrees)")
	return cmd
}

func runPlotCmd(cmd *cobra.Command, args []string) error {
	angle, err := model.ParseAngleUnit(plotAngle)
	if err != nil {
		return err
	}
	r := graph.Range{Min: plotXMin, Max: plotXMax}
	series, err := graph.SampleAll(args, r, plotSamples, angle)
	if err != nil {
		return err
	}
	width := plot.WidthFor(0)
	return plot.Render(cmd.OutOrStdout(), "", series, r.Min, r.Max, width, plotHeight)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [samples...]",
		Short: "Summarize a numeric dataset",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsFile, "file", "", "read samples from a file ('-' for stdin)")
	cmd.Flags().IntVar(&statsBins, "bins", 10, "histogram bucket count")
	cmd.Flags().BoolVar(&statsHistogram, "histogram", false, "print a histogram after the summary")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	data, err := loadDataset(args)
	if err != nil {
		return err
	}
	summary, err := stats.Summarize(data)
	if err != nil {
		return err
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !statsHistogram {
		return nil
	}
	buckets, err := stats.Histogram(data, statsBins)
	if err != nil {
		return err
	}
	if err := stats.RenderHistogram(cmd.OutOrStdout(), buckets, 0); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func loadDataset(args []string) ([]float64, error) {
	if statsFile != "" {
		if statsFile == "-" {
			return stats.ReadDataset(os.Stdin)
		}
		file, err := os.Open(statsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				// Best-effort file close.
				_ = cerr
			}
		}()
		return stats.ReadDataset(file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no samples given (pass values or --file)")
	}
	return stats.ParseDataset(strings.Join(args, " "))
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved calculation history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 20, "limit to last N entries (0 for all)")
	cmd.Flags().StringVar(&historyMode, "mode", "", "filter by mode")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all saved history")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyMode != "" {
		if _, err := model.ParseMode(historyMode); err != nil {
			return err
		}
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if historyClear {
		if err := st.ClearHistory(context.Background()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		logErrln("History cleared.")
		return nil
	}

	entries, err := st.ListEntries(context.Background(), historyLast, strings.ToLower(historyMode))
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(entries) == 0 {
		logErrln("No history entries.")
		return nil
	}
	for _, entry := range entries {
		line := fmt.Sprintf("%s  [%s]  %s = %s",
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Mode,
			entry.Expression,
			entry.Result)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert an integer between numeral bases",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvertCmd,
	}
	cmd.Flags().IntVar(&convertFrom, "from", 10, "base of the input value (2, 8, 10, 16)")
	cmd.Flags().IntVar(&convertTo, "to", 0, "target base (0 prints all bases)")
	cmd.Flags().IntVar(&convertWordSize, "word-size", defaultWordSize, "word size in bits (8, 16, 32, 64)")
	return cmd
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	if !baseconv.ValidBase(convertFrom) {
		return fmt.Errorf("--from must be one of 2, 8, 10, 16")
	}
	if convertTo != 0 && !baseconv.ValidBase(convertTo) {
		return fmt.Errorf("--to must be one of 2, 8, 10, 16")
	}
	if !baseconv.ValidWordSize(convertWordSize) {
		return fmt.Errorf("--word-size must be one of 8, 16, 32, 64")
	}
	value, err := baseconv.Parse(args[0], convertFrom, convertWordSize)
	if err != nil {
		return err
	}
	if convertTo != 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), baseconv.Format(value, convertTo, convertWordSize))
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	for _, base := range baseconv.Bases {
		line := fmt.Sprintf("base %2d: %s", base, baseconv.Format(value, base, convertWordSize))
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resolveSettings(modeName, angleName string, base, wordSize, historyLimit, precision int) (model.Settings, error) {
	mode, err := model.ParseMode(modeName)
	if err != nil {
		return model.Settings{}, err
	}
	angle, err := model.ParseAngleUnit(angleName)
	if err != nil {
		return model.Settings{}, err
	}
	return model.Settings{
		Mode:         mode,
		AngleUnit:    angle,
		Base:         base,
		WordSize:     wordSize,
		HistoryLimit: historyLimit,
		Precision:    precision,
	}, nil
}

func validateSettings(settings model.Settings) error {
	if !baseconv.ValidBase(settings.Base) {
		return fmt.Errorf("--base must be one of 2, 8, 10, 16")
	}
	if !baseconv.ValidWordSize(settings.WordSize) {
		return fmt.Errorf("--word-size must be one of 8, 16, 32, 64")
	}
	if settings.HistoryLimit < 0 {
		return fmt.Errorf("--history-limit must be >= 0")
	}
	if settings.Precision < 0 {
		return fmt.Errorf("--precision must be >= 0")
	}
	if settings.PlotSamples < 0 {
		return fmt.Errorf("--plot-samples must be >= 0")
	}
	if settings.PlotHeight < 0 {
		return fmt.Errorf("--plot-height must be >= 0")
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# deskcalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[calculator]
# mode = %q          # Start mode (standard, scientific, programmer, graphing, statistics)
# theme = %q              # Color theme (%s)
# angle-unit = %q     # Angle unit for trig (radians, degrees)
# base = %d                  # Programmer-mode numeral base (2, 8, 10, 16)
# word-size = %d             # Programmer-mode word size in bits (8, 16, 32, 64)
# history-limit = %d        # In-session history entries to keep
# precision = %d             # Significant digits in displayed results
# plot-samples = %d         # Sample points per plotted expression
# plot-height = %d           # Plot height in rows
`,
		defaultMode,
		tui.DefaultTheme,
		strings.Join(tui.ThemeNames(), ", "),
		defaultAngleUnit,
		defaultBase,
		defaultWordSize,
		defaultHistoryLimit,
		defaultPrecision,
		defaultPlotSamples,
		defaultPlotHeight,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
