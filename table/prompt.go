package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter decides whether another round should be dealt
type Prompter interface {
	Continue() (bool, error)
}

// LinePrompter asks on w and reads one answer per line from r.
// Any answer starting with y or Y continues; end of input stops.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading answers from r and asking on w
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), out: w}
}

func (p *LinePrompter) Continue() (bool, error) {
	fmt.Fprint(p.out, "Play another round (y/n)? ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return false, nil
	}

	answer := strings.ToUpper(strings.TrimSpace(line))
	return strings.HasPrefix(answer, "Y"), nil
}
