package workflow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Decision is the outcome of parsing one line of confirmation input.
type Decision int

const (
	DecisionAccept Decision = iota
	DecisionReject
	DecisionReprompt
)

// Recognized confirmation tokens. The Chinese forms match what operators of
// the original script are used to typing.
var (
	affirmativeTokens = []string{"y", "yes", "是", "確認"}
	negativeTokens    = []string{"n", "no", "否", "取消"}
)

// ParseConfirmation maps one line of operator input to a Decision.
// Matching is case-insensitive; unrecognized input asks again.
func ParseConfirmation(line string) Decision {
	token := strings.ToLower(strings.TrimSpace(line))
	for _, t := range affirmativeTokens {
		if token == t {
			return DecisionAccept
		}
	}
	for _, t := range negativeTokens {
		if token == t {
			return DecisionReject
		}
	}
	return DecisionReprompt
}

// InteractivePrompter reads operator input line by line from In.
type InteractivePrompter struct {
	In        io.Reader
	ErrWriter io.Writer

	reader *bufio.Reader
}

func (p *InteractivePrompter) lineReader() *bufio.Reader {
	if p.reader == nil {
		in := p.In
		if in == nil {
			in = os.Stdin
		}
		p.reader = bufio.NewReader(in)
	}
	return p.reader
}

func (p *InteractivePrompter) readLine() (string, error) {
	line, err := p.lineReader().ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return line, nil
}

// ReadCommitMessage asks for a one-line commit message and returns it trimmed.
// The caller decides what an empty message means.
func (p *InteractivePrompter) ReadCommitMessage() (string, error) {
	fmt.Fprint(p.ErrWriter, "\nEnter a commit message: ")
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ConfirmCommit shows the pending message and asks until the operator answers
// with a recognized affirmative or negative token.
func (p *InteractivePrompter) ConfirmCommit(message string) (bool, error) {
	fmt.Fprintf(p.ErrWriter, "\nCommit message: %s\n", message)

	for {
		fmt.Fprint(p.ErrWriter, "Proceed with commit and push? [y/n]: ")
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch ParseConfirmation(line) {
		case DecisionAccept:
			return true, nil
		case DecisionReject:
			return false, nil
		default:
			fmt.Fprintln(p.ErrWriter, "Please answer y or n.")
		}
	}
}
