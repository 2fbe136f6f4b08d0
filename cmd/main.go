package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"projectgen/config"
	"projectgen/internal/ai"
	"projectgen/internal/llm"
	"projectgen/internal/logger"
	"projectgen/internal/project"
	"projectgen/internal/utils"
)

func main() {
	// Load .env before viper so its values count as environment variables.
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(envErr).ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loggedError marks an error RunE has already logged with run context.
type loggedError struct{ err error }

func (e loggedError) Error() string { return e.err.Error() }
func (e loggedError) Unwrap() error { return e.err }

// reportError logs errors cobra raised before RunE (bad flags, extra args).
func reportError(w io.Writer, err error) {
	var logged loggedError
	if errors.As(err, &logged) {
		return
	}
	log := logger.NewWithWriter(w, "error", "console")
	log.Error().Err(err).Msg("projectgen failed")
}

func newRootCmd(envErr error) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "projectgen",
		Short: "Generate a project tree and its source files from a text description",
		Long: `projectgen reads project_description.txt, asks the model for a JSON file/directory
structure, recreates generated_code/ from scratch and fills every file with generated code.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(v, ".")
			if err != nil {
				fallback := logger.New("error", "console")
				fallback.Error().Err(err).Msg("Cannot load config")
				return loggedError{err}
			}

			log := logger.New(cfg.LogLevel, cfg.LogFormat).With().Str("run_id", uuid.New().String()).Logger()
			logStartup(log, cfg, envErr)

			if err := run(cmd.Context(), cfg, log); err != nil {
				event := log.Error().Err(err)
				var malformed *ai.MalformedResponseError
				switch {
				case errors.As(err, &malformed):
					event = event.Str("raw", malformed.Raw)
				case utils.IsTransient(err):
					event = event.Bool("transient", true)
				}
				event.Msg("Generation failed")
				return loggedError{err}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("description", "project_description.txt", "path of the project description file")
	flags.String("output", "generated_code", "output directory (deleted and recreated on every run)")
	flags.String("provider", "anthropic", "model provider: anthropic, openai or gemini")
	flags.String("model", "", "model identifier")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	_ = v.BindPFlag("description_file", flags.Lookup("description"))
	_ = v.BindPFlag("output_dir", flags.Lookup("output"))
	_ = v.BindPFlag("provider", flags.Lookup("provider"))
	_ = v.BindPFlag("model", flags.Lookup("model"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	return cmd
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	client, err := llm.New(ctx, llm.Options{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		return err
	}
	client = llm.Wrap(client, llm.WithLogging(log), llm.WithTimeout(cfg.RequestTimeout))

	generator := ai.NewGenerator(client, cfg.MaxTokens, log)
	pipeline := project.NewPipeline(generator, generator, cfg.DescriptionFile, cfg.OutputDir, log)
	return pipeline.Run(ctx)
}

func logStartup(log zerolog.Logger, cfg config.Config, envErr error) {
	switch {
	case envErr == nil:
		log.Info().Msg("Loaded environment variables from .env file.")
	case os.IsNotExist(envErr):
		log.Debug().Msg(".env file not found, relying on system environment variables.")
	default:
		log.Warn().Err(envErr).Msg("Error loading .env file")
	}
	if cfg.ConfigFile != "" {
		log.Info().Str("file", cfg.ConfigFile).Msg("Using configuration file")
	}
	if cfg.APIKey == "" {
		log.Warn().Msg("API key is not set, model requests will likely fail to authenticate.")
	}
	if cfg.Model == "" {
		log.Warn().Msg("Model is not set.")
	}
}
