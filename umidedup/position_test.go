package umidedup

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
)

func TestAdjustedFivePrime(t *testing.T) {
	tests := []struct {
		pos      int
		cigar    string
		flags    sam.Flags
		expected int
	}{
		{100, "5S20M", 0, 95},
		{100, "20M5S", sam.Reverse, 124},
		{50, "30M", 0, 50},
		{50, "30M", sam.Reverse, 79},
		// The right clip does not move a forward read, and vice versa.
		{100, "20M5S", 0, 100},
		{100, "5S20M", sam.Reverse, 119},
		// Deletions and splices extend the reverse 5' end, insertions don't.
		{100, "10M2D10M", sam.Reverse, 121},
		{100, "10M100N10M", sam.Reverse, 219},
		{100, "10M4I10M", sam.Reverse, 119},
		// Hard clips are ignored.
		{100, "3H20M", 0, 100},
		{100, "20M3H", sam.Reverse, 119},
		{100, "3H2S20M", 0, 98},
		// Other flag bits don't matter.
		{100, "2S20M", sam.Paired | sam.Read1, 98},
		{100, "20M2S", sam.Reverse | sam.Duplicate, 121},
		// A read that is entirely soft clipped.
		{10, "7S", 0, 3},
		{10, "7S", sam.Reverse, 16},
		{1, "10S30M", 0, -9},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, AdjustedFivePrime(test.pos, test.cigar, test.flags),
			"pos %d cigar %s flags %v", test.pos, test.cigar, test.flags)
	}
}

func TestNewDuplicateKey(t *testing.T) {
	a := NewDuplicateKey("1", 0, 100, "5S20M", "AACGCCAT")
	assert.Equal(t, DuplicateKey{Ref: "1", Reverse: false, FivePrime: 95, UMI: "AACGCCAT"}, a)
	assert.Equal(t, "(1,+,95,AACGCCAT)", a.String())

	// Same 5' end with a different alignment start and CIGAR.
	b := NewDuplicateKey("1", 0, 97, "2S23M", "AACGCCAT")
	assert.Equal(t, a, b)
	c := NewDuplicateKey("1", 0, 95, "25M1I3M", "AACGCCAT")
	assert.Equal(t, a, c)

	// Any differing component breaks the match.
	assert.NotEqual(t, a, NewDuplicateKey("2", 0, 100, "5S20M", "AACGCCAT"))
	assert.NotEqual(t, a, NewDuplicateKey("1", 0, 100, "5S20M", "AAGGTACG"))
	assert.NotEqual(t, a, NewDuplicateKey("1", 0, 101, "5S20M", "AACGCCAT"))

	r := NewDuplicateKey("1", sam.Reverse, 100, "20M5S", "AACGCCAT")
	assert.Equal(t, DuplicateKey{Ref: "1", Reverse: true, FivePrime: 124, UMI: "AACGCCAT"}, r)
	assert.Equal(t, "(1,-,124,AACGCCAT)", r.String())
	// A forward read whose 5' end coincides is on the other strand.
	assert.NotEqual(t, r, NewDuplicateKey("1", 0, 124, "20M", "AACGCCAT"))
}
