package umidedup

import "sort"

type contigClass int

const (
	autosome contigClass = iota
	chrX
	chrY
	chrMT
	scaffold
)

func classifyContig(name string) contigClass {
	switch name {
	case "X":
		return chrX
	case "Y":
		return chrY
	case "MT":
		return chrMT
	}
	if isDigits(name) {
		return autosome
	}
	return scaffold
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareDigits compares two decimal strings by numeric value. It handles
// values of any length.
func compareDigits(a, b string) int {
	a, b = trimZeros(a), trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func trimZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return s[i:]
}

// contigLess orders numeric contigs by value, followed by X, Y, MT, and then
// every other contig. Contigs that compare equal (two scaffolds, or "1" and
// "01") keep their relative order under a stable sort.
func contigLess(a, b string) bool {
	ca, cb := classifyContig(a), classifyContig(b)
	if ca != cb {
		return ca < cb
	}
	if ca == autosome {
		return compareDigits(a, b) < 0
	}
	return false
}

// SortContigs sorts contig names into report order: numeric names in
// ascending numeric order, then X, Y and MT, then all remaining names in
// their original relative order.
func SortContigs(contigs []string) {
	sort.SliceStable(contigs, func(i, j int) bool {
		return contigLess(contigs[i], contigs[j])
	})
}
