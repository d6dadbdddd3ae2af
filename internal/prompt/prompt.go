// Package prompt reads game setup from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	petname "github.com/dustinkirkland/golang-petname"
)

// MaxNameLength is the number of characters kept from a player name.
const MaxNameLength = 49

// maxTokenBytes bounds how much of a single answer is kept in memory. The
// rest of an over-long token is read and dropped.
const maxTokenBytes = MaxNameLength * utf8.UTFMax

// ErrInvalidPlayerCount is returned for a non-numeric or out-of-range count.
var ErrInvalidPlayerCount = errors.New("invalid number of players")

// Prompter reads whitespace-delimited answers from a reader.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// PlayerCount asks for the number of players. There is no reprompt: invalid
// input returns ErrInvalidPlayerCount.
func (p *Prompter) PlayerCount(lo, hi int) (int, error) {
	fmt.Fprintf(p.out, "Enter number of players (%d–%d): ", lo, hi)

	token, err := p.next()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPlayerCount, err)
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPlayerCount, token)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %d is outside %d–%d", ErrInvalidPlayerCount, n, lo, hi)
	}
	return n, nil
}

// PlayerName asks for the name of the i'th player (zero based). Names longer
// than MaxNameLength are truncated. When input runs out a random name is
// generated.
func (p *Prompter) PlayerName(i int) (string, error) {
	fmt.Fprintf(p.out, "Enter name for player %d: ", i+1)

	token, err := p.next()
	if errors.Is(err, io.EOF) {
		name := GenerateName()
		fmt.Fprintln(p.out, name)
		return name, nil
	}
	if err != nil {
		return "", err
	}
	return Truncate(token), nil
}

// GenerateName returns a random two-word name such as "brave-otter".
func GenerateName() string {
	return petname.Generate(2, "-")
}

// Truncate shortens a name to MaxNameLength characters.
func Truncate(name string) string {
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		return string(runes[:MaxNameLength])
	}
	return name
}

// next returns the next whitespace-delimited token, or io.EOF when input
// runs out first. Tokens of any length are accepted.
func (p *Prompter) next() (string, error) {
	var token strings.Builder
	for {
		r, _, err := p.in.ReadRune()
		if errors.Is(err, io.EOF) {
			if token.Len() > 0 {
				return token.String(), nil
			}
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		if unicode.IsSpace(r) {
			if token.Len() > 0 {
				return token.String(), nil
			}
			continue
		}
		if token.Len() < maxTokenBytes {
			token.WriteRune(r)
		}
	}
}
