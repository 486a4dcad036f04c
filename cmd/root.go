package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gpush/internal/config"
	"gpush/internal/git"
	"gpush/internal/gitutil"
	"gpush/internal/workflow"
)

var (
	cfgFile   string
	message   string
	autoYes   bool
	dryRun    bool
	remote    string
	verbose   bool
	configErr error

	rootCtx = context.Background()

	rootCmd = &cobra.Command{
		Use:   "gpush",
		Short: "gpush - stage, commit and push in one go",
		Long: `gpush stages every change in the current repository, asks for a commit
message, confirms, commits, and pushes the current branch to the remote.

Running it with no arguments is the normal mode: the whole flow is
interactive. The first failing git command aborts the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return handleErrors(runPushFlow())
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext sets the context used for command execution.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/gpush/config.yaml)")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (skips the interactive prompt)")
	rootCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Stage and confirm only, do not commit or push")
	rootCmd.Flags().StringVarP(&remote, "remote", "r", "", "Push remote (overrides the configured remote)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show each git command before it runs")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

// handleErrors translates sentinel outcomes that are not faults into
// friendly output with a zero exit code.
func handleErrors(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, workflow.ErrNoChanges) {
		fmt.Fprintln(outWriter(), "Nothing to commit, working tree clean.")
		return nil
	}

	if errors.Is(err, workflow.ErrNotRepository) {
		return fmt.Errorf("%w\nHint: run gpush from inside a git repository", err)
	}

	return err
}

func runPushFlow() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	pushRemote := remote
	if pushRemote == "" {
		pushRemote = cfg.Remote
	}
	if err := gitutil.ValidateRemoteName(pushRemote); err != nil {
		return err
	}

	gitClient := git.NewClient(git.Options{
		Verbose: verbose || cfg.Verbose,
		Logger:  errWriter(),
	})

	flow := workflow.NewPushFlow(gitClient, workflow.Options{
		Remote:    pushRemote,
		Message:   message,
		AutoYes:   autoYes,
		DryRun:    dryRun,
		ErrWriter: errWriter(),
		OutWriter: outWriter(),
	})

	return flow.Run()
}
