package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storekeeper/internal/models"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// isInteractive reports whether in is a terminal.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

// errNotANumber is returned by GetInt for unparseable input.
var errNotANumber = errors.New("not a number")

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// Surrounding whitespace is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
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

// GetInt reads one integer. An empty line yields (0, false, nil) so callers
// can treat it as "go back"; anything else that does not parse yields
// errNotANumber.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int64, bool, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, false, err
	}
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", errNotANumber, s)
	}
	return n, true, nil
}

// GetID keeps asking until the user enters a positive integer or an empty
// line (ok == false).
func GetID(reader *bufio.Reader, prompt string, w io.Writer) (int64, bool, error) {
	for {
		n, ok, err := GetInt(reader, prompt, w)
		switch {
		case errors.Is(err, errNotANumber) || (ok && n <= 0):
			fmt.Fprintln(w, "Please enter a positive whole number, or press Enter to go back.")
			continue
		case err != nil:
			return 0, false, err
		}
		return n, ok, nil
	}
}

// GetYesNo keeps asking until the answer is y/yes or n/no.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	for {
		s, err := GetSimpleText(reader, prompt+" (yes/no)", w)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(w, "Invalid input. Please enter 'yes' or 'no'.")
	}
}

// GetMoney reads an amount such as "1500" or "1500.50". An empty line
// yields def.
func GetMoney(reader *bufio.Reader, prompt string, w io.Writer, def models.Money) (models.Money, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		m, err := models.ParseMoney(s)
		if err == nil {
			return m, nil
		}
		fmt.Fprintln(w, "Please enter an amount like 1500 or 1500.50.")
	}
}
