package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/swampqueen/internal/game/dice"
)

// ErrAborted is returned when input ends before a prompt is answered.
var ErrAborted = errors.New("console: input aborted")

// Prompter reads lines from an input stream and writes prompts and output
// to an output stream.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter returns a Prompter over r and w.
//
// Precondition: r and w must be non-nil.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// ReadLine reads one line with its line terminator removed. A final line
// without a terminator is returned normally; io.EOF is returned only when no
// input remains.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine writes text followed by a newline.
func (p *Prompter) WriteLine(text string) error {
	_, err := io.WriteString(p.w, text+"\n")
	return err
}

// WritePrompt writes prompt without a trailing newline.
func (p *Prompter) WritePrompt(prompt string) error {
	_, err := io.WriteString(p.w, prompt)
	return err
}

// Input repeats prompt until parse accepts the answer. Rejections are shown
// in red and the prompt is asked again.
//
// Postcondition: Returns a parsed value, ErrAborted on end of input, or ctx.Err().
func Input[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		_ = p.WritePrompt(Colorize(BrightWhite, prompt))
		line, err := p.ReadLine()
		if errors.Is(err, io.EOF) {
			return zero, ErrAborted
		}
		if err != nil {
			return zero, fmt.Errorf("reading %q: %w", prompt, err)
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		_ = p.WriteLine(Colorize(Red, err.Error()))
	}
}

// Menu describes a numbered selection list.
type Menu[T any] struct {
	// Title is printed above the options.
	Title string
	// Options are listed in order, numbered from 1.
	Options []T
	// Label returns the token that selects an option by name.
	Label func(T) string
	// Display returns the text shown for an option.
	Display func(T) string
	// Random, when non-nil, lets "r" or "random" pick an option uniformly.
	Random dice.Source
}

// IsRandomInput reports whether the input at a menu requests random selection.
// "r" and "random" (case-insensitive) are treated as random; blank input is not.
func IsRandomInput(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return lower == "r" || lower == "random"
}

// Select shows m and returns the option the player picks by number or label.
//
// Precondition: m.Options must be non-empty; m.Label and m.Display must be non-nil.
// Postcondition: Returns one of m.Options, ErrAborted on end of input, or ctx.Err().
func Select[T any](ctx context.Context, p *Prompter, m Menu[T]) (T, error) {
	if len(m.Options) == 0 {
		panic("console: Select precondition violated: menu has no options")
	}
	_ = p.WriteLine(Colorize(BrightYellow, m.Title))
	for i, opt := range m.Options {
		_ = p.WriteLine(fmt.Sprintf("  %s%d%s. %s %s(%s)%s",
			Green, i+1, Reset, m.Display(opt), Dim, m.Label(opt), Reset))
	}
	hint := fmt.Sprintf("Select [1-%d]: ", len(m.Options))
	if m.Random != nil {
		_ = p.WriteLine(fmt.Sprintf("  %sR%s. Random", Green, Reset))
		hint = fmt.Sprintf("Select [1-%d/R]: ", len(m.Options))
	}

	return Input(ctx, p, hint, func(line string) (T, error) {
		var zero T
		line = strings.TrimSpace(line)
		if m.Random != nil && IsRandomInput(line) {
			opt := m.Options[dice.RollOne(len(m.Options), m.Random)-1]
			_ = p.WriteLine(Colorf(Cyan, "Random selection: %s", m.Display(opt)))
			return opt, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(m.Options) {
			return m.Options[n-1], nil
		}
		lower := strings.ToLower(line)
		for _, opt := range m.Options {
			if m.Label(opt) == lower {
				return opt, nil
			}
		}
		return zero, errors.New("invalid selection: enter a number or a name from the list")
	})
}
