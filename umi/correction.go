package umi

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

var alphabetMap = map[byte]bool{
	'A': true,
	'C': true,
	'G': true,
	'T': true,
}

type snapCorrectorEntry struct {
	knownUMI string
	edits    int
}

// SnapCorrector implements "snap" correction of UMIs.  A umi U is
// snappable if there is a known umi U1 that is closer to U than all other
// known umis, in terms of Levenshtein edit distance, and that distance is
// at most maxEdits.
//
// Corrections are computed on first use and memoized, so a SnapCorrector
// is not safe for concurrent use.
type SnapCorrector struct {
	knownUMIs []string
	maxEdits  int

	// correctionTable maps each umi seen so far to its closest known umi.
	// knownUMI is empty if there is no unique closest known umi.
	correctionTable map[string]snapCorrectorEntry
}

// NewSnapCorrector creates a new snap corrector over the umis in known. All
// known umis must have the same length and consist of the characters ACGT.
func NewSnapCorrector(known *KnownSet, maxEdits int) (*SnapCorrector, error) {
	if maxEdits < 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("max edits must be non-negative, got %d", maxEdits))
	}
	umis := known.UMIs()
	if len(umis) == 0 {
		return nil, errors.E(errors.Invalid, "no umis in input")
	}
	k := len(umis[0])
	for _, umi := range umis {
		if len(umi) != k {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("umi %s has length %d, other umis have length %d", umi, len(umi), k))
		}
		if err := validateUMI(umi); err != nil {
			return nil, err
		}
	}
	log.Debug.Printf("snap corrector: %d known umis of length %d, max edits %d", len(umis), k, maxEdits)
	return &SnapCorrector{
		knownUMIs:       umis,
		maxEdits:        maxEdits,
		correctionTable: map[string]snapCorrectorEntry{},
	}, nil
}

// CorrectUMI returns a corrected umi, the number of edits to the corrected
// umi, and true if there is exactly one known UMI that is closest to the
// original umi, ignoring case, and it differs from umi.  If umi is already
// known, it returns umi, 0, and false.  Otherwise, it returns the original
// umi, -1, and false.
func (c *SnapCorrector) CorrectUMI(umi string) (correctedUMI string, edits int, corrected bool) {
	upper := strings.ToUpper(umi)
	entry, ok := c.correctionTable[upper]
	if !ok {
		entry = c.snap(upper)
		c.correctionTable[upper] = entry
	}
	if entry.knownUMI == "" {
		return umi, -1, false
	}
	return entry.knownUMI, entry.edits, entry.knownUMI != umi
}

func (c *SnapCorrector) snap(umi string) snapCorrectorEntry {
	best := snapCorrectorEntry{edits: -1}
	ties := 0
	for _, known := range c.knownUMIs {
		d := matchr.Levenshtein(umi, known)
		switch {
		case best.edits < 0 || d < best.edits:
			best = snapCorrectorEntry{knownUMI: known, edits: d}
			ties = 1
		case d == best.edits:
			ties++
		}
	}
	if ties != 1 || best.edits > c.maxEdits {
		return snapCorrectorEntry{edits: -1}
	}
	log.Debug.Printf("%s snaps to %s with cost %d", umi, best.knownUMI, best.edits)
	return best
}

func validateUMI(umi string) error {
	for i := 0; i < len(umi); i++ {
		if !alphabetMap[umi[i]] {
			return errors.E(errors.Invalid, fmt.Sprintf("invalid base %c in umi %v", umi[i], umi))
		}
	}
	return nil
}
