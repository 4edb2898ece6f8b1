package umidedup

import (
	"fmt"

	"github.com/grailbio/hts/sam"
)

// DuplicateKey identifies a group of duplicate single-end reads. Two reads
// are duplicates iff their keys are equal.
type DuplicateKey struct {
	Ref       string
	Reverse   bool
	FivePrime int
	UMI       string
}

// NewDuplicateKey returns the duplicate key of a read with the given
// reference, flags, 1-based position, CIGAR and UMI.
func NewDuplicateKey(ref string, flags sam.Flags, pos int, cigar, umi string) DuplicateKey {
	return DuplicateKey{
		Ref:       ref,
		Reverse:   flags&sam.Reverse != 0,
		FivePrime: AdjustedFivePrime(pos, cigar, flags),
		UMI:       umi,
	}
}

func (k DuplicateKey) String() string {
	strand := '+'
	if k.Reverse {
		strand = '-'
	}
	return fmt.Sprintf("(%s,%c,%d,%s)", k.Ref, strand, k.FivePrime, k.UMI)
}
