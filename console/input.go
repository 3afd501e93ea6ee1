package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Prompter reads one line of input after showing a prompt.
// *readline.Instance satisfies it.
type Prompter interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

type scanPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewScanPrompter reads lines from in and writes prompts to out. Used when input is
// not a terminal, e.g. a piped transcript.
func NewScanPrompter(in io.Reader, out io.Writer) Prompter {
	return &scanPrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *scanPrompter) SetPrompt(prompt string) {
	p.prompt = prompt
}

func (p *scanPrompter) Readline() (string, error) {
	fmt.Fprint(p.out, p.prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewPrompter picks line editing for an interactive stdin and a plain scanner
// otherwise. The returned close func must be called when the session ends.
func NewPrompter(stdin *os.File, stdout io.Writer) (Prompter, func() error, error) {
	if !IsTerminal(stdin) {
		return NewScanPrompter(stdin, stdout), func() error { return nil }, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryLimit:    200,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          stdout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init line editor: %w", err)
	}
	return rl, rl.Close, nil
}
