// Package workflow drives the stage, commit and push pipeline.
package workflow

// GitClient abstracts git operations for testability.
type GitClient interface {
	IsRepository() bool
	Status() (string, error)
	AddAll() error
	Commit(message string, args ...string) error
	CurrentBranch() (string, error)
	Push(remote, branch string) error
}

// Prompter abstracts operator interaction for testability.
type Prompter interface {
	ReadCommitMessage() (string, error)
	ConfirmCommit(message string) (bool, error)
}
