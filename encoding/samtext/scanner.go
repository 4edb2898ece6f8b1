package samtext

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

// HeaderPrefix starts every SAM header line.
const HeaderPrefix = '@'

var errEOF = errors.New("eof")

// IsHeader reports whether line is a SAM header line.
func IsHeader(line []byte) bool {
	return len(line) > 0 && line[0] == HeaderPrefix
}

// Scanner provides line-by-line access to SAM text. Scanners are not
// threadsafe.
type Scanner struct {
	r    *bufio.Reader
	line []byte
	n    int
	err  error
}

// NewScanner constructs a Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 1<<20)}
}

// Scan advances to the next line, which is then available through Line.
// Scan returns false at the end of the input or on a read error; once Scan
// returns false, it never returns true again. Upon completion the caller
// should check Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	line, err := s.r.ReadBytes('\n')
	switch {
	case err == io.EOF && len(line) > 0:
		// Final line without a terminator.
		s.err = errEOF
	case err == io.EOF:
		s.err = errEOF
		s.line = nil
		vlog.VI(1).Infof("samtext: reached end of input after %d lines", s.n)
		return false
	case err != nil:
		s.err = err
		s.line = nil
		return false
	}
	s.line = line
	s.n++
	return true
}

// Line returns the current line, including its terminator if it had one.
// The slice is owned by the caller.
func (s *Scanner) Line() []byte {
	return s.line
}

// LineNumber returns the 1-based number of the current line.
func (s *Scanner) LineNumber() int {
	return s.n
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}
