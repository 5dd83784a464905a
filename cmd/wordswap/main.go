// Package main provides the CLI entrypoint for wordswap.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordswap/internal/config"
	"github.com/verte-zerg/wordswap/internal/dictionary"
	"github.com/verte-zerg/wordswap/internal/logging"
	"github.com/verte-zerg/wordswap/internal/model"
	"github.com/verte-zerg/wordswap/internal/report"
	"github.com/verte-zerg/wordswap/internal/reportui"
	"github.com/verte-zerg/wordswap/internal/store"
	"github.com/verte-zerg/wordswap/internal/translator"
	"github.com/verte-zerg/wordswap/internal/wordlist"
)

const (
	defaultInput       = "t8.shakespeare.txt"
	defaultWords       = "find_words.txt"
	defaultDictionary  = "french_dictionary.csv"
	defaultOutput      = "t8.shakespeare.translated.txt"
	defaultFrequency   = "frequency.csv"
	defaultPerformance = "performance.txt"
	defaultTop         = 10
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	translateInput       string
	translateWords       string
	translateDictionary  string
	translateOutput      string
	translateFrequency   string
	translatePerformance string
	translateStrictWords bool
	translateNoHistory   bool
	translateTop         int

	historyLast int

	reportRun   int64
	reportPlain bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordswap",
		Short: "Translate target words in a corpus using an English-French dictionary",
		Long: `wordswap replaces whole-word occurrences of target words in a text corpus
with their French translations and writes the translated text, a frequency
report and performance metrics.

Examples:
  wordswap                                   # use the default file names in the current directory
  wordswap -i play.txt -w words.txt -d fr.csv -o play.fr.txt
  wordswap history                           # list recorded runs
  wordswap report --plain                    # print the latest frequency report`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTranslateCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaultLogFormat, "log format: text or json")

	rootCmd.Flags().StringVarP(&translateInput, "input", "i", defaultInput, "corpus to translate")
	rootCmd.Flags().StringVarP(&translateWords, "words", "w", defaultWords, "target word list (one word per line)")
	rootCmd.Flags().StringVarP(&translateDictionary, "dict", "d", defaultDictionary, "English-French dictionary CSV")
	rootCmd.Flags().StringVarP(&translateOutput, "output", "o", defaultOutput, "translated corpus output")
	rootCmd.Flags().StringVar(&translateFrequency, "frequency", defaultFrequency, "frequency report CSV output")
	rootCmd.Flags().StringVar(&translatePerformance, "performance", defaultPerformance, "performance metrics output")
	rootCmd.Flags().BoolVar(&translateStrictWords, "strict-words", false, "drop target words containing non-word characters")
	rootCmd.Flags().BoolVar(&translateNoHistory, "no-history", false, "do not record the run in history")
	rootCmd.Flags().IntVar(&translateTop, "top", defaultTop, "number of most frequent words in the summary")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func runTranslateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "input", &translateInput, fileCfg.Translate.Input)
	applyStringConfig(cmd, "words", &translateWords, fileCfg.Translate.Words)
	applyStringConfig(cmd, "dict", &translateDictionary, fileCfg.Translate.Dictionary)
	applyStringConfig(cmd, "output", &translateOutput, fileCfg.Translate.Output)
	applyStringConfig(cmd, "frequency", &translateFrequency, fileCfg.Translate.Frequency)
	applyStringConfig(cmd, "performance", &translatePerformance, fileCfg.Translate.Performance)
	applyBoolConfig(cmd, "strict-words", &translateStrictWords, fileCfg.Translate.StrictWords)
	applyIntConfig(cmd, "top", &translateTop, fileCfg.Translate.Top)
	if fileCfg.Translate.History != nil && !cmd.Flags().Changed("no-history") {
		translateNoHistory = !*fileCfg.Translate.History
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	cfg := model.RunConfig{
		InputPath:       translateInput,
		WordsPath:       translateWords,
		DictionaryPath:  translateDictionary,
		OutputPath:      translateOutput,
		FrequencyPath:   translateFrequency,
		PerformancePath: translatePerformance,
		StrictWords:     translateStrictWords,
		History:         !translateNoHistory,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if translateTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}

	lines, err := wordlist.LoadLines(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	words, err := wordlist.LoadWords(cfg.WordsPath)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	dict, err := dictionary.LoadFile(cfg.DictionaryPath)
	if err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}

	targets, dropped := wordlist.Filter(words, wordlist.FilterFor(cfg.StrictWords))
	for _, word := range dropped {
		logger.Warn("skipping target word", "word", word)
	}
	if len(targets) == 0 {
		logger.Warn("no target words to translate", "path", cfg.WordsPath)
	}
	logger.Info("loaded inputs", "lines", len(lines), "targets", len(targets), "entries", dict.Len())

	startedAt := time.Now()
	res, err := translator.New(targets, dict).Translate(cmd.Context(), lines)
	if err != nil {
		return fmt.Errorf("translation aborted: %w", err)
	}
	endedAt := time.Now()
	logger.Debug("translation finished", "duration", res.Metrics.Duration, "heap_bytes", res.Metrics.MemoryBytes)

	rows := report.BuildRows(dict.Entries(), res.Frequency)
	if err := writeOutputs(cfg, res, rows); err != nil {
		return err
	}
	logger.Info("wrote outputs", "output", cfg.OutputPath, "frequency", cfg.FrequencyPath, "performance", cfg.PerformancePath)

	if cfg.History {
		rec := model.RunRecord{
			StartedAt:      startedAt,
			EndedAt:        endedAt,
			InputPath:      absPath(cfg.InputPath),
			WordsPath:      absPath(cfg.WordsPath),
			DictionaryPath: absPath(cfg.DictionaryPath),
			OutputPath:     absPath(cfg.OutputPath),
			Lines:          len(lines),
			Targets:        len(targets),
			Entries:        dict.Len(),
			Metrics:        res.Metrics,
		}
		recordRun(cmd.Context(), logger, rec, rows)
	}

	summary := report.Summary{
		Lines:   len(lines),
		Targets: len(targets),
		Entries: dict.Len(),
		Metrics: res.Metrics,
		Rows:    rows,
	}
	if err := report.RenderSummary(cmd.OutOrStdout(), summary, translateTop); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeOutputs(cfg model.RunConfig, res translator.Result, rows []model.FrequencyRow) error {
	if err := report.WriteFile(cfg.OutputPath, func(w io.Writer) error {
		return report.WriteLines(w, res.Lines)
	}); err != nil {
		return fmt.Errorf("failed to save translated text: %w", err)
	}
	if err := report.WriteFile(cfg.FrequencyPath, func(w io.Writer) error {
		return report.WriteFrequencyCSV(w, rows)
	}); err != nil {
		return fmt.Errorf("failed to save frequency report: %w", err)
	}
	if err := report.WriteFile(cfg.PerformancePath, func(w io.Writer) error {
		return report.WritePerformance(w, res.Metrics)
	}); err != nil {
		return fmt.Errorf("failed to save performance metrics: %w", err)
	}
	return nil
}

func recordRun(ctx context.Context, logger *slog.Logger, rec model.RunRecord, rows []model.FrequencyRow) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logger.Warn("failed to open history db", "err", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close history db", "err", cerr)
		}
	}()
	id, err := st.InsertRun(ctx, rec, rows)
	if err != nil {
		logger.Warn("failed to record run", "err", err)
		return
	}
	logger.Debug("recorded run", "run", id)
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
	path := configPath
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

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
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
	runs, err := st.ListRuns(cmd.Context(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return report.RenderRuns(cmd.OutOrStdout(), runs)
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the frequency report of a recorded run",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().Int64Var(&reportRun, "run", 0, "run id (default: latest)")
	cmd.Flags().BoolVar(&reportPlain, "plain", false, "print a plain table instead of the interactive view")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	runID := reportRun
	if runID == 0 {
		runID, err = st.LatestRunID(ctx)
		if errors.Is(err, store.ErrNoRuns) {
			logErrln("No runs recorded yet. Run: wordswap")
			return err
		}
		if err != nil {
			return fmt.Errorf("failed to find latest run: %w", err)
		}
	}
	rows, err := st.RunFrequencies(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	title := fmt.Sprintf("Run %d", runID)
	if reportPlain || !isTerminal(cmd.OutOrStdout()) {
		return report.RenderFrequencyTable(cmd.OutOrStdout(), title, rows)
	}
	program := tea.NewProgram(reportui.NewModel(title, rows), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report TUI: %w", err)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &logFormat, fileCfg.Log.Format)
	return fileCfg, nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid logging settings: %w", err)
	}
	return logger, nil
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordswap configuration
# Uncomment a value to enable it. CLI flags override config values.

[translate]
# input = %q        # Corpus to translate
# words = %q            # Target word list (one word per line)
# dictionary = %q  # English-French dictionary CSV
# output = %q       # Translated corpus
# frequency = %q         # Frequency report
# performance = %q     # Performance metrics
# strict-words = false      # Drop target words with non-word characters
# history = true            # Record runs for 'wordswap history'
# top = %d                  # Most frequent words in the summary

[log]
# level = %q            # debug, info, warn, error
# format = %q           # text or json
`,
		defaultInput,
		defaultWords,
		defaultDictionary,
		defaultOutput,
		defaultFrequency,
		defaultPerformance,
		defaultTop,
		defaultLogLevel,
		defaultLogFormat,
	)
}

func validateConfig(cfg model.RunConfig) error {
	paths := []struct {
		flag  string
		value string
	}{
		{"--input", cfg.InputPath},
		{"--words", cfg.WordsPath},
		{"--dict", cfg.DictionaryPath},
		{"--output", cfg.OutputPath},
		{"--frequency", cfg.FrequencyPath},
		{"--performance", cfg.PerformancePath},
	}
	for _, p := range paths {
		if strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("%s must not be empty", p.flag)
		}
	}
	inputs := []string{cfg.InputPath, cfg.WordsPath, cfg.DictionaryPath}
	outputs := map[string]string{}
	for _, p := range paths[3:] {
		abs := absPath(p.value)
		for _, in := range inputs {
			if abs == absPath(in) {
				return fmt.Errorf("%s would overwrite input file %s", p.flag, in)
			}
		}
		if other, ok := outputs[abs]; ok {
			return fmt.Errorf("%s and %s point to the same file", other, p.flag)
		}
		outputs[abs] = p.flag
	}
	return nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
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
