package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"WeRadiate.thermoq/internal/models"
)

// PromptPassword asks for the user's basic-auth password on stderr. A
// terminal stdin is read without echo; anything else (a pipe, a
// heredoc) falls back to reading one line.
func PromptPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", user)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", models.NewCLIError(models.ErrorCodePassword, "error reading password", err, 1)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", models.NewCLIError(models.ErrorCodePassword, "error reading password", err, 1)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
