package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/width"
)

// Prompts read from stdin and write to stderr so --json output on stdout
// stays machine readable.
var (
	stdin        io.Reader = os.Stdin
	promptOut    io.Writer = os.Stderr
	stdinScanner *bufio.Reader
)

func input() *bufio.Reader {
	if stdinScanner == nil {
		stdinScanner = bufio.NewReader(stdin)
	}
	return stdinScanner
}

// resetInput drops buffered input; tests swap stdin between runs.
func resetInput(r io.Reader) {
	stdin = r
	stdinScanner = nil
}

// ask prints question and returns the answer line. End of input yields
// an empty answer.
func ask(question string) (string, error) {
	fmt.Fprint(promptOut, question)
	line, err := input().ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return line, nil
}

// confirm asks a yes/no question. Only "y" and "yes" count as yes.
func confirm(question string) (bool, error) {
	answer, err := ask(question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(normalizeInput(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// promptValue returns current when set, otherwise asks for a value.
func promptValue(current, question string) (string, error) {
	if v := normalizeInput(current); v != "" {
		return v, nil
	}
	answer, err := ask(question)
	if err != nil {
		return "", err
	}
	return normalizeInput(answer), nil
}

// normalizeInput trims whitespace and folds full-width characters (as
// typed with some input methods, e.g. "１７.０") to their ASCII forms.
func normalizeInput(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}
