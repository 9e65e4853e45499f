package ui

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/termkit/internal/errors"
	"golang.org/x/term"
)

// Prompter asks the user questions. On a terminal it uses huh forms; when
// input is piped it falls back to plain line-based prompts so scripts can
// answer them.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	reader      *bufio.Reader
	interactive bool
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
// Forms are used only when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Prompter{
		in:          in,
		out:         out,
		reader:      bufio.NewReader(in),
		interactive: interactive,
	}
}

// Interactive reports whether the prompter uses huh forms.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

func (p *Prompter) runForm(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return errors.WrapWithCode(err, errors.ErrTerminal, "Prompt cancelled", "")
		}
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Failed to get user input",
			"Pipe answers on stdin to run without a terminal")
	}
	return nil
}

// ReadLine prints question and returns the trimmed answer.
func (p *Prompter) ReadLine(question string) (string, error) {
	if p.interactive {
		var answer string
		if err := p.runForm(huh.NewInput().Title(question).Value(&answer)); err != nil {
			return "", err
		}
		return strings.TrimSpace(answer), nil
	}

	fmt.Fprintf(p.out, "%s ", question)
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "Failed to read answer")
		}
		if line == "" {
			return "", errors.WrapWithCode(err, errors.ErrTerminal,
				"No answer provided",
				"Provide answers on stdin, one per line")
		}
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. An empty answer selects def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	if p.interactive {
		answer := def
		if err := p.runForm(huh.NewConfirm().Title(question).Value(&answer)); err != nil {
			return false, err
		}
		return answer, nil
	}

	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s ", question, hint)

	line, err := p.readLine()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return def, nil
		}
		return false, err
	}

	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, errors.New(errors.ErrInvalidArgument,
		fmt.Sprintf("Invalid answer '%s'", line),
		"Answer 'y' or 'n'")
}

// Select asks the user to pick one of options and returns its index.
func (p *Prompter) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New(errors.ErrInvalidArgument, "Nothing to choose from", "")
	}

	if p.interactive {
		choice := 0
		field := huh.NewSelect[int]().
			Title(title).
			Options(indexedOptions(options)...).
			Value(&choice)
		if err := p.runForm(field); err != nil {
			return 0, err
		}
		return choice, nil
	}

	p.printOptions(title, options)
	fmt.Fprintf(p.out, "Choice [1-%d]: ", len(options))
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	return parseChoice(line, len(options))
}

// MultiSelect asks the user to pick any number of options and returns their
// indices in ascending order. Piped input takes a comma separated list.
func (p *Prompter) MultiSelect(title string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, errors.New(errors.ErrInvalidArgument, "Nothing to choose from", "")
	}

	if p.interactive {
		var choices []int
		field := huh.NewMultiSelect[int]().
			Title(title).
			Options(indexedOptions(options)...).
			Value(&choices)
		if err := p.runForm(field); err != nil {
			return nil, err
		}
		return sortedUnique(choices), nil
	}

	p.printOptions(title, options)
	fmt.Fprintf(p.out, "Choices (comma separated, empty for none): ")
	line, err := p.readLine()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	var choices []int
	for _, field := range strings.Split(line, ",") {
		idx, err := parseChoice(strings.TrimSpace(field), len(options))
		if err != nil {
			return nil, err
		}
		choices = append(choices, idx)
	}
	return sortedUnique(choices), nil
}

func (p *Prompter) printOptions(title string, options []string) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
}

func indexedOptions(options []string) []huh.Option[int] {
	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}
	return opts
}

// parseChoice converts a 1-based answer to a 0-based index.
func parseChoice(s string, n int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Invalid choice '%s'", s),
			fmt.Sprintf("Enter a number between 1 and %d", n))
	}
	return v - 1, nil
}

func sortedUnique(idx []int) []int {
	if len(idx) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(idx))
	var out []int
	for _, i := range idx {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}
