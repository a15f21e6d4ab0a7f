// Package main provides the CLI entrypoint for egen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/config"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/generator"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/llm"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/logging"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/pipeline"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/stats"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/store"
)

const (
	defaultWordCount = 200
	defaultOutputDir = "test_emails"
)

var (
	apiKey     string
	wordCount  int
	numEmails  int
	outputDir  string
	modelName  string
	logFile    string
	verbose    bool
	configPath string
)

// newCompleter builds the model backend; tests replace it with a stub.
var newCompleter = func(ctx context.Context, cfg llm.GeminiConfig) (llm.Completer, error) {
	return llm.NewGemini(ctx, cfg)
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "egen",
		Short:         "Generate test emails with random facts using Gemini",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerateCmd,
	}

	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (default: $GEMINI_API_KEY)")
	rootCmd.Flags().IntVar(&wordCount, "word-count", defaultWordCount, "word count limit for each email")
	rootCmd.Flags().IntVar(&numEmails, "num-emails", 0, "number of emails to generate (required)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", defaultOutputDir, "output directory for emails")
	rootCmd.Flags().StringVar(&modelName, "model", llm.DefaultGeminiModel, "Gemini model name")
	rootCmd.Flags().StringVar(&logFile, "log-file", logging.DefaultFile, "log file path (empty disables)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/egen/config.toml)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "word-count", &wordCount, fileCfg.Generate.WordCount)
	applyIntConfig(cmd, "num-emails", &numEmails, fileCfg.Generate.NumEmails)
	applyStringConfig(cmd, "output-dir", &outputDir, fileCfg.Generate.OutputDir)
	applyStringConfig(cmd, "model", &modelName, fileCfg.Generate.Model)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Generate.LogFile)
	applyEnvString(cmd, "api-key", &apiKey, envCfg.APIKey)
	applyEnvString(cmd, "model", &modelName, envCfg.Model)

	limits, err := fileCfg.EmailConfig(model.DefaultEmailConfig())
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("num-emails") && fileCfg.Generate.NumEmails == nil {
		return fmt.Errorf("required flag \"num-emails\" not set")
	}
	if err := validateArgs(limits, apiKey, wordCount, numEmails); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Verbose: verbose, File: logFile})
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	completer, err := newCompleter(ctx, llm.GeminiConfig{APIKey: apiKey, Model: modelName})
	if err != nil {
		logger.Error("Failed to initialize Gemini", zap.Error(err))
		return fmt.Errorf("error during email generation: %w", err)
	}

	if named, ok := completer.(interface{ Model() string }); ok {
		logger.Info("Using model " + named.Model())
	}

	p := pipeline.New(completer, generator.New(), logger, pipeline.FixedDelay(limits.Delay))
	batch, err := p.GenerateBulk(ctx, wordCount, numEmails, outputDir)
	if err != nil {
		return fmt.Errorf("error during email generation: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), batch.Report)
}

func validateArgs(limits model.EmailConfig, key string, words, emails int) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("--api-key is required (or set GEMINI_API_KEY)")
	}
	if words < limits.MinWordCount || words > limits.MaxWordCount {
		return fmt.Errorf("word count must be between %d and %d", limits.MinWordCount, limits.MaxWordCount)
	}
	if emails < limits.MinEmails || emails > limits.MaxEmails {
		return fmt.Errorf("number of emails must be between %d and %d", limits.MinEmails, limits.MaxEmails)
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
	path := resolveConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
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
	return nil
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <generation_report.json>",
		Short: "Show a saved batch report",
		Args:  cobra.ExactArgs(1),
		RunE:  runReportCmd,
	}
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	report, err := store.LoadReport(args[0])
	if err != nil {
		return err
	}
	return stats.RenderReport(cmd.OutOrStdout(), report)
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

func applyEnvString(cmd *cobra.Command, name string, target *string, value string) {
	if value == "" {
		return
	}
	applyStringConfig(cmd, name, target, &value)
}

func defaultConfigTemplate() string {
	limits := model.DefaultEmailConfig()
	return fmt.Sprintf(`# egen configuration
# Uncomment a value to enable it. CLI flags override config values.
# The API key is read from --api-key or $GEMINI_API_KEY, never from this file.

[generate]
# word-count = %d          # Target words per email
# num-emails = 10           # Emails per batch
# output-dir = %q  # Output directory
# model = %q
# delay = %q               # Pause between model calls
# log-file = %q

[limits]
# min-word-count = %d
# max-word-count = %d
# min-emails = %d
# max-emails = %d
`,
		defaultWordCount,
		defaultOutputDir,
		llm.DefaultGeminiModel,
		limits.Delay.String(),
		logging.DefaultFile,
		limits.MinWordCount,
		limits.MaxWordCount,
		limits.MinEmails,
		limits.MaxEmails,
	)
}
