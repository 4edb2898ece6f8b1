// Package cigar interprets the CIGAR strings of SAM text records for
// duplicate detection.
//
// Only the operations that consume reference bases (M, D, N, =, X) and
// soft clips (S) are recognized. Every other operation, such as
// insertions and hard clips, is dropped by the scan together with its
// length.
package cigar

import (
	"bytes"
	"strconv"

	"github.com/grailbio/hts/sam"
)

// Op is a single recognized CIGAR operation.
type Op struct {
	Len  int
	Type sam.CigarOpType
}

// String returns the op in CIGAR notation, e.g. "5S".
func (o Op) String() string {
	return strconv.Itoa(o.Len) + o.Type.String()
}

// Ops is the ordered sequence of recognized operations of one CIGAR.
type Ops []Op

var opTypes = [256]sam.CigarOpType{}
var recognized = [256]bool{}

func init() {
	for c, t := range map[byte]sam.CigarOpType{
		'M': sam.CigarMatch,
		'D': sam.CigarDeletion,
		'N': sam.CigarSkipped,
		'S': sam.CigarSoftClipped,
		'=': sam.CigarEqual,
		'X': sam.CigarMismatch,
	} {
		opTypes[c] = t
		recognized[c] = true
	}
}

// Parse scans s for (length, operation) groups. A run of digits followed by
// a recognized operation yields an Op. Any other character discards the
// pending length. "*" and the empty string yield no ops.
func Parse(s string) Ops {
	var (
		ops    Ops
		n      int
		digits bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			digits = true
			continue
		}
		if digits && recognized[c] {
			ops = append(ops, Op{Len: n, Type: opTypes[c]})
		}
		n, digits = 0, false
	}
	return ops
}

// ReferenceLength returns the number of reference bases spanned by ops.
func (ops Ops) ReferenceLength() int {
	var n int
	for _, op := range ops {
		n += op.Len * op.Type.Consumes().Reference
	}
	return n
}

// SoftClips returns the lengths of the soft clips at the left and right
// ends of ops. A CIGAR consisting of a single soft clip reports it on both
// sides.
func (ops Ops) SoftClips() (left, right int) {
	if len(ops) == 0 {
		return 0, 0
	}
	if first := ops[0]; first.Type == sam.CigarSoftClipped {
		left = first.Len
	}
	if last := ops[len(ops)-1]; last.Type == sam.CigarSoftClipped {
		right = last.Len
	}
	return left, right
}

// String returns ops in CIGAR notation. It returns "*" for empty ops.
func (ops Ops) String() string {
	if len(ops) == 0 {
		return "*"
	}
	var b bytes.Buffer
	for _, op := range ops {
		b.WriteString(op.String())
	}
	return b.String()
}
