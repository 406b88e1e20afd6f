package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/SahilSawant11/mizu/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetOptionalText reads like GetSimpleText but treats EOF with no input as
// an empty answer rather than an error. An empty answer means "skip".
func GetOptionalText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return text, err
}

// GetSecret prints a prompt to w and reads a line from the user's terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func GetSecret(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// GetAmount reads a non-negative decimal amount. An empty answer returns
// nil without error.
func GetAmount(reader *bufio.Reader, prompt string, w io.Writer) (*float64, error) {
	text, err := GetOptionalText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %q is not a valid amount", common.ErrValidation, text)
	}
	return &v, nil
}

// GetChoice prints a numbered list of options and reads a selection. An empty
// answer returns nil. Both the 1-based number and the literal option text are
// accepted.
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (*string, error) {
	for i, opt := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, opt)
	}
	text, err := GetOptionalText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(options) {
			return nil, fmt.Errorf("%w: choice %d is out of range", common.ErrValidation, n)
		}
		return &options[n-1], nil
	}
	for i, opt := range options {
		if strings.EqualFold(opt, text) {
			return &options[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown option %q", common.ErrValidation, text)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a record id", common.ErrValidation, arg)
	}
	return id, nil
}
