package umidedup

import (
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/umidedup/cigar"
)

// AdjustedFivePrime returns the 1-based reference coordinate of the 5' end
// of a read before soft clipping.
//
// For a forward read this is pos minus the left soft clip. For a reverse
// read it is the last aligned reference base, pos+refLen-1, plus the right
// soft clip. Hard clips and insertions are ignored.
func AdjustedFivePrime(pos int, cigarStr string, flags sam.Flags) int {
	ops := cigar.Parse(cigarStr)
	left, right := ops.SoftClips()
	if flags&sam.Reverse == 0 {
		return pos - left
	}
	return pos + ops.ReferenceLength() - 1 + right
}
