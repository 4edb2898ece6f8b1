package cigar

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		cigar    string
		expected Ops
	}{
		{"30M", Ops{{30, sam.CigarMatch}}},
		{"5S20M", Ops{{5, sam.CigarSoftClipped}, {20, sam.CigarMatch}}},
		{"3S10M2D4M1N6=2X7S", Ops{
			{3, sam.CigarSoftClipped}, {10, sam.CigarMatch}, {2, sam.CigarDeletion},
			{4, sam.CigarMatch}, {1, sam.CigarSkipped}, {6, sam.CigarEqual},
			{2, sam.CigarMismatch}, {7, sam.CigarSoftClipped}}},
		// Insertions and hard clips are dropped along with their lengths.
		{"10M3I10M", Ops{{10, sam.CigarMatch}, {10, sam.CigarMatch}}},
		{"5H10S20M", Ops{{10, sam.CigarSoftClipped}, {20, sam.CigarMatch}}},
		{"20M4S6H", Ops{{20, sam.CigarMatch}, {4, sam.CigarSoftClipped}}},
		{"123456M", Ops{{123456, sam.CigarMatch}}},
		{"*", nil},
		{"", nil},
		{"M10", nil},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Parse(test.cigar), "cigar %q", test.cigar)
	}
}

func TestReferenceLength(t *testing.T) {
	tests := []struct {
		cigar    string
		expected int
	}{
		{"30M", 30},
		{"20M5S", 20},
		{"5S20M5S", 20},
		{"10M2D10M", 22},
		{"10M100N10M", 120},
		{"5=1X5=", 11},
		{"10M5I10M", 20},
		{"8S", 0},
		{"*", 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Parse(test.cigar).ReferenceLength(), "cigar %q", test.cigar)
	}
}

func TestSoftClips(t *testing.T) {
	tests := []struct {
		cigar       string
		left, right int
	}{
		{"5S20M", 5, 0},
		{"30M4S", 0, 4},
		{"3S20M4S", 3, 4},
		{"30M", 0, 0},
		{"12S", 12, 12},
		{"2H3S20M", 3, 0},
		{"*", 0, 0},
	}
	for _, test := range tests {
		left, right := Parse(test.cigar).SoftClips()
		assert.Equal(t, test.left, left, "left clip of %q", test.cigar)
		assert.Equal(t, test.right, right, "right clip of %q", test.cigar)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "5S20M1D3=", Parse("5S20M1D3=").String())
	assert.Equal(t, "10M10M", Parse("10M2I10M").String())
	assert.Equal(t, "*", Parse("").String())
}
