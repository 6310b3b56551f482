package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(input ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(input, "\n") + "\n"))
}

func TestMultiplicityRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer

	m, err := Multiplicity(lines("abc", "0", "3"), &out)
	require.NoError(t, err)
	assert.Equal(t, 3, m)

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, MultiplicityQuestion))
	assert.Contains(t, got, "Invalid input. Please enter an integer between 1 and 9.\n")
	assert.Equal(t, 2, strings.Count(got, "Please enter an integer between 1 and 9."))
}

func TestGammaRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer

	g, err := Gamma(lines("-1", "0.05"), &out)
	require.NoError(t, err)
	assert.Equal(t, 0.05, g)

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, GammaQuestion))
	assert.Equal(t, 1, strings.Count(got, "Please enter a positive number for gamma."))
	assert.NotContains(t, got, "Invalid input.")
}

func TestSequentialPromptsShareInput(t *testing.T) {
	var out bytes.Buffer
	in := lines("x", "5", "zero", "0", "0.1")

	m, err := Multiplicity(in, &out)
	require.NoError(t, err)
	g, err := Gamma(in, &out)
	require.NoError(t, err)

	assert.Equal(t, 5, m)
	assert.Equal(t, 0.1, g)
}

func TestRetryEndOfInput(t *testing.T) {
	var out bytes.Buffer

	_, err := Multiplicity(lines("10", "nine"), &out)
	assert.ErrorIs(t, err, ErrNoInput)
}

type failingLines struct{}

func (failingLines) Scan() bool   { return false }
func (failingLines) Text() string { return "" }
func (failingLines) Err() error   { return errors.New("tty gone") }

func TestRetryReadError(t *testing.T) {
	_, err := Gamma(failingLines{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoInput)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestRetryGenericParser(t *testing.T) {
	var out bytes.Buffer
	parse := func(line string) (string, error) {
		if line != "yes" {
			return "", errors.New("say yes")
		}
		return line, nil
	}

	v, err := Retry(lines("no", "maybe", "yes"), &out, "? ", parse)
	require.NoError(t, err)
	assert.Equal(t, "yes", v)
	assert.Equal(t, "? say yes\n? say yes\n? ", out.String())
}

func TestParseMultiplicity(t *testing.T) {
	for _, in := range []string{"1", " 9 ", "4"} {
		_, err := ParseMultiplicity(in)
		assert.NoError(t, err, in)
	}
	for _, in := range []string{"", "2.5", "abc", "0", "10", "-3"} {
		_, err := ParseMultiplicity(in)
		assert.Error(t, err, in)
	}
}

func TestParseGamma(t *testing.T) {
	for _, in := range []string{"0.05", "1", " 2e-3 "} {
		_, err := ParseGamma(in)
		assert.NoError(t, err, in)
	}
	for _, in := range []string{"", "abc", "0", "-0.1", "NaN", "inf"} {
		_, err := ParseGamma(in)
		assert.Error(t, err, in)
	}
}

func TestMultiplicityOverlongLineRetries(t *testing.T) {
	var out bytes.Buffer
	in := NewReader(strings.NewReader(strings.Repeat("x", 70000) + "\n3\n"))

	m, err := Multiplicity(in, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, m)
	assert.Equal(t, 2, strings.Count(out.String(), MultiplicityQuestion))
	assert.Contains(t, out.String(), "Invalid input. Please enter an integer between 1 and 9.\n")
}

func TestReaderLines(t *testing.T) {
	in := NewReader(strings.NewReader("4\r\n\n0.5"))

	var got []string
	for in.Scan() {
		got = append(got, in.Text())
	}
	require.NoError(t, in.Err())
	assert.Equal(t, []string{"4", "", "0.5"}, got)
	assert.False(t, in.Scan())
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestReaderError(t *testing.T) {
	in := NewReader(brokenReader{})
	assert.False(t, in.Scan())
	assert.EqualError(t, in.Err(), "tty gone")
}
