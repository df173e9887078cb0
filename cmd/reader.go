package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// lineReader reads trimmed lines and can be interrupted by a context.
type lineReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

func newLineReader(reader io.Reader) *lineReader {
	if reader == nil {
		panic("reader cannot be nil")
	}
	return &lineReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads a line and returns it without surrounding whitespace.
//
// A last line without a newline is still returned, the next call returns io.EOF.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInputCancelled
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine runs until the read completes, but we return immediately.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if errors.Is(res.err, io.EOF) && res.value != "" {
			res.err = nil
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
