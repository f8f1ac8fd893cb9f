package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/placement/internal/config"
	"github.com/abhisek/placement/internal/logging"
)

// cli carries the settings and logger resolved before a command runs.
type cli struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.DefaultConfig(), log: logging.Discard()}

	root := &cobra.Command{
		Use:   "placement",
		Short: "Score CEFR placement tests",
		Long: "placement evaluates a candidate's answers against a question set, estimates a CEFR level " +
			"and recommends the micro-topics most worth reviewing.",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides PLACEMENT_LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "", "Log format: text or json (overrides PLACEMENT_LOG_FORMAT)")

	root.AddCommand(newEvaluateCmd(c))
	root.AddCommand(newCheckCmd(c))
	root.AddCommand(newTopicsCmd())
	root.AddCommand(newWritingCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// setup reads .env and the environment, then applies the logging flags.
// Flags take priority over environment variables.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if _, err := config.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	c.cfg = cfg
	c.log = logging.New(cmd.ErrOrStderr(), cfg)
	return nil
}

// questionsPath returns the --questions flag, then PLACEMENT_QUESTIONS.
func (c *cli) questionsPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p, nil
	}
	if c.cfg.QuestionsPath != "" {
		return c.cfg.QuestionsPath, nil
	}
	return "", fmt.Errorf("no question set given: use --questions or set %s", config.EnvQuestions)
}
