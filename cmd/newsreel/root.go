package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"newsreel/article"
	"newsreel/config"
	"newsreel/logging"
	"newsreel/pipeline"

	"github.com/spf13/cobra"
)

var errMissingURL = errors.New("missing article URL")

// options are the global flags plus the collaborator builder.
type options struct {
	configPath   string
	seed         int64
	noAuthPrompt bool
	build        depsBuilder
}

// NewRootCmd creates the root command. It processes one article URL.
func NewRootCmd(build depsBuilder) *cobra.Command {
	opts := &options{build: build}

	cmd := &cobra.Command{
		Use:   "newsreel <article-url>",
		Short: "Turn a news article into a narrated video",
		Long: `newsreel downloads a news article, voices its title and body, renders
the title on a colored card and combines both into a video that is then
uploaded to Google Drive or S3, or kept locally.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Usage()
				return errMissingURL
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticle(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/newsreel/config.yaml)")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "seed for voice and color choice (0 picks one from the clock)")
	cmd.PersistentFlags().BoolVar(&opts.noAuthPrompt, "no-auth-prompt", false, "fail instead of opening the Google consent flow")

	cmd.AddCommand(NewFeedCmd(opts))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runArticle builds the collaborators once, runs the pipeline and closes them.
func runArticle(ctx context.Context, cmd *cobra.Command, opts *options, url string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	deps, closeDeps, err := opts.build(ctx, cfg, log, !opts.noAuthPrompt)
	if err != nil {
		return err
	}
	defer closeDeps()

	deps.Rand = rand.New(rand.NewSource(seed))
	deps.Log = log

	driver, err := pipeline.NewDriver(cfg, deps)
	if err != nil {
		return err
	}

	ref, err := driver.Run(ctx, url)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Video ready: %s\n", ref.URL)
	return nil
}

// exitMessage is what the user sees for err.
func exitMessage(err error) string {
	if errors.Is(err, article.ErrConnection) {
		return "Connection error, please try again."
	}
	return err.Error()
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd(buildDeps).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, exitMessage(err))
		stop()
		os.Exit(1)
	}
}
