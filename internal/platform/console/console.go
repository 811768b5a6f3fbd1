// Package console implements the game's display and input over plain text
// streams. It drives headless play and scripted sessions.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/picotrek/internal/core"
)

// Console prints committed frames to w and reads answers line by line from r.
type Console struct {
	screen *core.Screen
	in     *bufio.Scanner
	out    io.Writer
}

var (
	_ core.Display = (*Console)(nil)
	_ core.Input   = (*Console)(nil)
)

// New creates a console with a width x height frame buffer.
func New(r io.Reader, w io.Writer, width, height int) *Console {
	return &Console{
		screen: core.NewScreen(width, height),
		in:     bufio.NewScanner(r),
		out:    w,
	}
}

// Clear blanks the frame buffer.
func (c *Console) Clear() {
	c.screen.Clear()
}

// DrawText draws text into the frame buffer.
func (c *Console) DrawText(x, y int, text string) {
	c.screen.DrawText(x, y, text)
}

// DrawLine draws a line into the frame buffer.
func (c *Console) DrawLine(x0, y0, x1, y1 int, r rune) {
	c.screen.DrawLine(x0, y0, x1, y1, r)
}

// Commit prints the frame buffer with trailing blanks trimmed.
func (c *Console) Commit() error {
	var b strings.Builder
	for _, line := range c.screen.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return c.write(b.String())
}

// Choose lists options and reads until a line matches one of them, ignoring
// case. A unique prefix is enough, and a number selects by position.
func (c *Console) Choose(prompt []string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("console: choose: no options")
	}
	for {
		for _, p := range prompt {
			if err := c.write(p + "\n"); err != nil {
				return "", err
			}
		}
		if err := c.write("[" + strings.Join(options, " ") + "] > "); err != nil {
			return "", err
		}

		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if opt, ok := match(line, options); ok {
			return opt, nil
		}
		if err := c.write(fmt.Sprintf("Unknown choice %q.\n", line)); err != nil {
			return "", err
		}
	}
}

func match(line string, options []string) (string, bool) {
	if line == "" {
		return "", false
	}
	var prefixed []string
	for _, o := range options {
		if strings.EqualFold(line, o) {
			return o, true
		}
		if len(line) < len(o) && strings.EqualFold(line, o[:len(line)]) {
			prefixed = append(prefixed, o)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], true
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}

// Number reads until a line parses as a value in [min, max]. The value is
// snapped onto the step grid.
func (c *Console) Number(prompt string, min, max, step float64) (float64, error) {
	for {
		if err := c.write(fmt.Sprintf("%s [%s..%s] > ", prompt, format(min), format(max))); err != nil {
			return 0, err
		}

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		switch {
		case err != nil, math.IsNaN(v), math.IsInf(v, 0):
			err = c.write(fmt.Sprintf("%q is not a number.\n", line))
		case v < min || v > max:
			err = c.write(fmt.Sprintf("%s is out of range.\n", format(v)))
		default:
			return core.SnapStep(v, min, max, step), nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Pages prints lines and waits for the player to press enter.
func (c *Console) Pages(lines []string) error {
	for _, l := range lines {
		if err := c.write(l + "\n"); err != nil {
			return err
		}
	}
	if err := c.write("-- press enter --\n"); err != nil {
		return err
	}
	_, err := c.readLine()
	return err
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("console: read: %w", err)
		}
		return "", core.ErrAborted
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) write(s string) error {
	if _, err := io.WriteString(c.out, s); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}
	return nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
