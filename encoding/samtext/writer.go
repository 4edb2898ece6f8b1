package samtext

import (
	"bytes"
	"io"
	"strconv"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// Writer writes SAM text lines. After the first failed write every
// subsequent call returns the same error.
type Writer struct {
	w       io.Writer
	scratch []byte
	err     error
}

// NewWriter constructs a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes line unchanged. line should carry its own terminator.
func (w *Writer) Write(line []byte) error {
	if w.err != nil {
		return w.err
	}
	_, w.err = w.w.Write(line)
	return w.err
}

// WriteWithFlags writes line with its FLAG column replaced by flags. All
// other bytes are written unchanged.
func (w *Writer) WriteWithFlags(line []byte, flags sam.Flags) error {
	if w.err != nil {
		return w.err
	}
	start := bytes.IndexByte(line, '\t')
	if start < 0 {
		w.err = errors.Wrap(ErrMalformed, "no FLAG column")
		return w.err
	}
	end := bytes.IndexByte(line[start+1:], '\t')
	if end < 0 {
		w.err = errors.Wrap(ErrMalformed, "no RNAME column")
		return w.err
	}
	end += start + 1
	w.scratch = append(w.scratch[:0], line[:start+1]...)
	w.scratch = strconv.AppendUint(w.scratch, uint64(flags), 10)
	w.scratch = append(w.scratch, line[end:]...)
	_, w.err = w.w.Write(w.scratch)
	return w.err
}
