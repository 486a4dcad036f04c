package workflow

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseConfirmation(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Decision
	}{
		{name: "short yes", line: "y", want: DecisionAccept},
		{name: "long yes", line: "yes", want: DecisionAccept},
		{name: "uppercase yes", line: "YES", want: DecisionAccept},
		{name: "chinese yes", line: "是", want: DecisionAccept},
		{name: "chinese confirm", line: "確認", want: DecisionAccept},
		{name: "short no", line: "n", want: DecisionReject},
		{name: "long no", line: "No", want: DecisionReject},
		{name: "chinese no", line: "否", want: DecisionReject},
		{name: "chinese cancel", line: "取消", want: DecisionReject},
		{name: "padded token", line: "  y \n", want: DecisionAccept},
		{name: "empty line", line: "\n", want: DecisionReprompt},
		{name: "unknown word", line: "maybe", want: DecisionReprompt},
		{name: "yes embedded in word", line: "yesterday", want: DecisionReprompt},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseConfirmation(tc.line); got != tc.want {
				t.Fatalf("ParseConfirmation(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestReadCommitMessage_Trims(t *testing.T) {
	p := &InteractivePrompter{
		In:        strings.NewReader("  fix bug  \n"),
		ErrWriter: &bytes.Buffer{},
	}

	message, err := p.ReadCommitMessage()
	if err != nil {
		t.Fatalf("ReadCommitMessage() error = %v", err)
	}
	if message != "fix bug" {
		t.Fatalf("ReadCommitMessage() = %q, want %q", message, "fix bug")
	}
}

func TestReadCommitMessage_EmptyInputIsNotAnError(t *testing.T) {
	p := &InteractivePrompter{
		In:        strings.NewReader("\n"),
		ErrWriter: &bytes.Buffer{},
	}

	message, err := p.ReadCommitMessage()
	if err != nil {
		t.Fatalf("ReadCommitMessage() error = %v", err)
	}
	if message != "" {
		t.Fatalf("ReadCommitMessage() = %q, want empty", message)
	}
}

func TestReadCommitMessage_MissingTrailingNewline(t *testing.T) {
	p := &InteractivePrompter{
		In:        strings.NewReader("fix bug"),
		ErrWriter: &bytes.Buffer{},
	}

	message, err := p.ReadCommitMessage()
	if err != nil {
		t.Fatalf("ReadCommitMessage() error = %v", err)
	}
	if message != "fix bug" {
		t.Fatalf("ReadCommitMessage() = %q, want %q", message, "fix bug")
	}
}

func TestConfirmCommit_LoopsUntilRecognized(t *testing.T) {
	var out bytes.Buffer
	p := &InteractivePrompter{
		In:        strings.NewReader("what\nok\nN\n"),
		ErrWriter: &out,
	}

	confirmed, err := p.ConfirmCommit("fix bug")
	if err != nil {
		t.Fatalf("ConfirmCommit() error = %v", err)
	}
	if confirmed {
		t.Fatal("ConfirmCommit() = true, want false")
	}
	if got := strings.Count(out.String(), "Please answer y or n."); got != 2 {
		t.Fatalf("expected 2 reprompts, got %d", got)
	}
}

func TestConfirmCommit_EOFIsAnError(t *testing.T) {
	p := &InteractivePrompter{
		In:        strings.NewReader(""),
		ErrWriter: &bytes.Buffer{},
	}

	if _, err := p.ConfirmCommit("fix bug"); err == nil {
		t.Fatal("ConfirmCommit() expected error on exhausted input")
	}
}

func TestPrompter_SharesOneReader(t *testing.T) {
	// Both prompts must consume from the same buffered reader, otherwise the
	// confirmation answer can be swallowed by the message prompt's buffer.
	var out bytes.Buffer
	p := &InteractivePrompter{
		In:        strings.NewReader("fix bug\ny\n"),
		ErrWriter: &out,
	}

	message, err := p.ReadCommitMessage()
	if err != nil {
		t.Fatalf("ReadCommitMessage() error = %v", err)
	}
	if message != "fix bug" {
		t.Fatalf("ReadCommitMessage() = %q, want %q", message, "fix bug")
	}

	confirmed, err := p.ConfirmCommit(message)
	if err != nil {
		t.Fatalf("ConfirmCommit() error = %v", err)
	}
	if !confirmed {
		t.Fatal("ConfirmCommit() = false, want true")
	}
}
