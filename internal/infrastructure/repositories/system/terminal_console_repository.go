package system

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/rios0rios0/bootstrap/internal/domain/repositories"
)

const clearSequence = "\033[H\033[2J"

// TerminalConsoleRepository writes notices through the logger and drives the
// terminal directly for clearing and keypress prompts.
type TerminalConsoleRepository struct {
	in  *os.File
	out io.Writer
}

// NewTerminalConsoleRepository creates a console bound to the process stdio.
func NewTerminalConsoleRepository() repositories.ConsoleRepository {
	return NewTerminalConsoleRepositoryWith(os.Stdin, os.Stdout)
}

// NewTerminalConsoleRepositoryWith creates a console bound to the given streams.
func NewTerminalConsoleRepositoryWith(in *os.File, out io.Writer) *TerminalConsoleRepository {
	return &TerminalConsoleRepository{in: in, out: out}
}

func (c *TerminalConsoleRepository) Notice(format string, args ...any) {
	logger.Infof(format, args...)
}

func (c *TerminalConsoleRepository) Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

func (c *TerminalConsoleRepository) Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Clear only emits the escape sequence when the output is a terminal, so
// redirected output stays clean.
func (c *TerminalConsoleRepository) Clear() {
	if !isTerminal(c.out) {
		return
	}
	_, _ = fmt.Fprint(c.out, clearSequence)
}

// Pause reads a single key in raw mode. Without a terminal on stdin it
// returns at once instead of blocking on a pipe.
func (c *TerminalConsoleRepository) Pause(prompt string) {
	if c.in == nil || !isTerminal(c.in) {
		return
	}

	_, _ = fmt.Fprint(c.out, prompt)
	defer fmt.Fprintln(c.out)

	fd := int(c.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		logger.Debugf("Failed to switch terminal to raw mode: %v", err)
		// cooked mode still returns once Enter is pressed
		_, _ = c.in.Read(make([]byte, 1))
		return
	}
	defer func() { _ = term.Restore(fd, state) }()

	_, _ = c.in.Read(make([]byte, 1))
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
