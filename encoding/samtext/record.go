package samtext

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// ErrMalformed is the cause of every error returned by ParseRecord.
var ErrMalformed = errors.New("malformed SAM record")

// minFields is the number of leading SAM columns ParseRecord needs:
// QNAME, FLAG, RNAME, POS, MAPQ and CIGAR.
const minFields = 6

const (
	fieldName = iota
	fieldFlags
	fieldRef
	fieldPos
	fieldMapq
	fieldCigar
)

// Record holds the fields of one SAM alignment line that identify a
// single-end read.
type Record struct {
	// Name is the query name. Its last colon-delimited token is the UMI.
	Name string
	UMI  string
	// Flags is the SAM flag. Bit 0x10 marks the reverse strand.
	Flags sam.Flags
	// Ref is the reference (contig) name.
	Ref string
	// Pos is the 1-based leftmost mapping position.
	Pos   int
	Cigar string
}

// Reverse reports whether the read is aligned to the reverse strand.
func (r *Record) Reverse() bool {
	return r.Flags&sam.Reverse != 0
}

// UMIFromName returns the substring of name after its last colon, or name
// itself if it contains no colon.
func UMIFromName(name string) string {
	return name[strings.LastIndexByte(name, ':')+1:]
}

// ParseRecord parses a non-header SAM line. The line terminator, if present,
// is ignored. Lines with fewer than six tab-separated fields, or with a flag
// or position that is not a decimal integer, yield an error whose cause is
// ErrMalformed.
func ParseRecord(line []byte) (Record, error) {
	line = bytes.TrimRight(line, "\r\n")
	fields := bytes.SplitN(line, []byte{'\t'}, minFields+1)
	if len(fields) < minFields {
		return Record{}, errors.Wrapf(ErrMalformed, "want at least %d fields, got %d", minFields, len(fields))
	}
	flags, err := strconv.ParseUint(string(fields[fieldFlags]), 10, 16)
	if err != nil {
		return Record{}, errors.Wrapf(ErrMalformed, "flag %q", fields[fieldFlags])
	}
	pos, err := strconv.Atoi(string(fields[fieldPos]))
	if err != nil {
		return Record{}, errors.Wrapf(ErrMalformed, "position %q", fields[fieldPos])
	}
	name := string(fields[fieldName])
	return Record{
		Name:  name,
		UMI:   UMIFromName(name),
		Flags: sam.Flags(flags),
		Ref:   string(fields[fieldRef]),
		Pos:   pos,
		Cigar: string(fields[fieldCigar]),
	}, nil
}
