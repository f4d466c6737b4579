// Package input reads player commands from a line-oriented source.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput is returned once the input source has no more lines
var ErrEndOfInput = errors.New("end of input")

// LineReader reads one line of input at a time
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps a reader. The buffered reader is created once so no
// buffered input is lost between calls.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator.
// A final line without a newline is still returned; after that ErrEndOfInput.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("cannot read input: %w", err)
		}
		if line == "" {
			return "", ErrEndOfInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
