// Package prompt reads validated values from a line-oriented console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-lineshape/dsp/lineshape"
)

// ErrNoInput is returned when the input ends before a value is accepted.
var ErrNoInput = errors.New("prompt: input closed before a valid value was entered")

// Lines is a source of input lines. *bufio.Scanner and *Reader implement it.
type Lines interface {
	Scan() bool
	Text() string
	Err() error
}

// Reader reads lines of any length, unlike a default bufio.Scanner which
// stops at 64 KiB.
type Reader struct {
	r    *bufio.Reader
	text string
	err  error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Scan advances to the next line. A final line without a newline is
// still returned.
func (l *Reader) Scan() bool {
	if l.err != nil {
		return false
	}
	line, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
			return false
		}
		l.err = io.EOF
		if line == "" {
			return false
		}
	}
	l.text = strings.TrimRight(line, "\r\n")
	return true
}

// Text returns the most recent line without its line ending.
func (l *Reader) Text() string {
	return l.text
}

// Err returns the first non-EOF read error.
func (l *Reader) Err() error {
	if errors.Is(l.err, io.EOF) {
		return nil
	}
	return l.err
}

// Parser converts one input line into a value. A non-nil error rejects the
// line and its message is written before the question is asked again.
type Parser[T any] func(line string) (T, error)

// Retry writes question to out and reads lines until parse accepts one.
func Retry[T any](in Lines, out io.Writer, question string, parse Parser[T]) (T, error) {
	var zero T
	for {
		if _, err := io.WriteString(out, question); err != nil {
			return zero, err
		}
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return zero, fmt.Errorf("prompt: read input: %w", err)
			}
			return zero, ErrNoInput
		}

		v, err := parse(in.Text())
		if err == nil {
			return v, nil
		}
		if _, werr := fmt.Fprintln(out, err.Error()); werr != nil {
			return zero, werr
		}
	}
}

const (
	MultiplicityQuestion = "Enter the multiplicity (1 for singlet, up to 9 for nonet): "
	GammaQuestion        = "Enter the half-width at half-maximum (gamma) for the Lorentzian lineshape " +
		"[0.05 recommended, larger = broader peak]: "
)

var (
	multiplicityRange = fmt.Sprintf("Please enter an integer between %d and %d.",
		lineshape.MinMultiplicity, lineshape.MaxMultiplicity)
	gammaRange = "Please enter a positive number for gamma."
)

// rejection is shown to the operator verbatim.
type rejection string

func (r rejection) Error() string { return string(r) }

// ParseMultiplicity accepts an integer in [1, 9].
func ParseMultiplicity(line string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, rejection("Invalid input. " + multiplicityRange)
	}
	if m < lineshape.MinMultiplicity || m > lineshape.MaxMultiplicity {
		return 0, rejection(multiplicityRange)
	}
	return m, nil
}

// ParseGamma accepts a finite number greater than zero.
func ParseGamma(line string) (float64, error) {
	g, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, rejection("Invalid input. " + gammaRange)
	}
	if g <= 0 {
		return 0, rejection(gammaRange)
	}
	return g, nil
}

// Multiplicity asks for a multiplicity until a valid one is entered.
func Multiplicity(in Lines, out io.Writer) (int, error) {
	return Retry(in, out, MultiplicityQuestion, ParseMultiplicity)
}

// Gamma asks for a line half-width until a valid one is entered.
func Gamma(in Lines, out io.Writer) (float64, error) {
	return Retry(in, out, GammaQuestion, ParseGamma)
}
