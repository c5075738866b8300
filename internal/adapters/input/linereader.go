package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// Common newline characters
const (
	CR = '\r'
	LF = '\n'
)

// LineReader reads single lines from an underlying reader.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r in a buffered line reader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its LF or CRLF terminator.
// A final line without a terminator is returned as is. If the input ends
// before any byte is read, ReadLine returns "" and io.EOF.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := lr.reader.ReadString(LF)
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return trimTerminator(line), nil
		}
		return "", err
	}

	return trimTerminator(line), nil
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, string(LF))
	return strings.TrimSuffix(line, string(CR))
}
