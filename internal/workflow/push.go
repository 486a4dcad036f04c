package workflow

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gpush/internal/gitutil"
	"gpush/internal/ui"
)

var (
	ErrNotRepository = errors.New("current directory is not a git repository")
	ErrNoChanges     = errors.New("no changes detected in the working tree")
	ErrEmptyMessage  = errors.New("commit message cannot be empty")
)

// Options configures a single pipeline run.
type Options struct {
	// Remote is the push target, normally "origin".
	Remote string
	// Message, when non-empty, is used instead of prompting the operator.
	Message string
	// AutoYes skips the confirmation prompt.
	AutoYes bool
	// DryRun stops after confirmation without committing or pushing.
	DryRun    bool
	ErrWriter io.Writer
	OutWriter io.Writer
}

// PushFlow runs the fixed pipeline: verify repository, read status, stage
// everything, collect a message, confirm, commit, push. The first failing
// step terminates the run; an operator decline is not a failure.
type PushFlow struct {
	git      GitClient
	opts     Options
	prompter Prompter
}

func NewPushFlow(git GitClient, opts Options) *PushFlow {
	return &PushFlow{
		git:      git,
		opts:     opts,
		prompter: &InteractivePrompter{ErrWriter: opts.ErrWriter},
	}
}

func (f *PushFlow) SetPrompter(p Prompter) {
	f.prompter = p
}

func (f *PushFlow) Run() error {
	if !f.git.IsRepository() {
		return ErrNotRepository
	}

	status, err := f.git.Status()
	if err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		return ErrNoChanges
	}

	fmt.Fprintln(f.opts.ErrWriter, "Detected changes:")
	fmt.Fprint(f.opts.OutWriter, status)

	// Staging happens before the message is collected, so an aborted run
	// leaves the changes staged but uncommitted. This mirrors running
	// "git add ." by hand and then changing your mind.
	if err := f.git.AddAll(); err != nil {
		return err
	}
	fmt.Fprintln(f.opts.ErrWriter, "All changes have been added to the staging area.")

	message, err := f.resolveMessage()
	if err != nil {
		return err
	}
	if message == "" {
		return ErrEmptyMessage
	}

	confirmed, err := f.confirm(message)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(f.opts.ErrWriter, "Push cancelled by user")
		return nil
	}

	if f.opts.DryRun {
		fmt.Fprintln(f.opts.ErrWriter, "Dry run mode, no commit or push performed")
		return nil
	}

	if err := f.performCommit(message); err != nil {
		return err
	}

	return f.pushCurrentBranch()
}

func (f *PushFlow) resolveMessage() (string, error) {
	if f.opts.Message != "" {
		return strings.TrimSpace(f.opts.Message), nil
	}
	return f.prompter.ReadCommitMessage()
}

func (f *PushFlow) confirm(message string) (bool, error) {
	if f.opts.AutoYes {
		fmt.Fprintln(f.opts.ErrWriter, "Auto-confirming commit (-y flag is set)")
		return true, nil
	}
	return f.prompter.ConfirmCommit(message)
}

func (f *PushFlow) performCommit(message string) error {
	err := ui.WithSpinner("Committing changes...", func() error {
		return f.git.Commit(message)
	})
	if err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	fmt.Fprintln(f.opts.ErrWriter, "Successfully committed changes!")
	return nil
}

func (f *PushFlow) pushCurrentBranch() error {
	branch, err := f.git.CurrentBranch()
	if err != nil {
		return err
	}
	if err := gitutil.ValidateBranchName(branch); err != nil {
		return fmt.Errorf("refusing to push: %w", err)
	}

	err = ui.WithSpinner(fmt.Sprintf("Pushing to %s/%s...", f.opts.Remote, branch), func() error {
		return f.git.Push(f.opts.Remote, branch)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(f.opts.ErrWriter, "Successfully pushed to %s/%s!\n", f.opts.Remote, branch)
	return nil
}
