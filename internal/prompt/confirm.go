package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmFunc asks a yes/no question and reports the answer.
type ConfirmFunc func(question string) bool

// AlwaysYes accepts every question without reading input.
func AlwaysYes(string) bool { return true }

// NewConfirm returns a ConfirmFunc that writes the question to out and reads
// answers line by line from in. An empty answer means yes. Anything that is
// not y/n is ignored and the question is asked again. End of input declines.
func NewConfirm(in io.Reader, out io.Writer) ConfirmFunc {
	scanner := bufio.NewScanner(in)
	return func(question string) bool {
		for {
			fmt.Fprintf(out, "%s [Y/n] ", question)
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return false
			}
			if yes, ok := parseAnswer(scanner.Text()); ok {
				return yes
			}
		}
	}
}

func parseAnswer(s string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y":
		return true, true
	case "n":
		return false, true
	default:
		return false, false
	}
}
