package umidedup

import (
	"fmt"
	"io"

	"github.com/grailbio/base/tsv"
)

// Metrics contains the counts from one deduplication pass.
type Metrics struct {
	// HeaderLines is the number of header lines copied to the output.
	HeaderLines int

	// UniqueReads is the number of reads written to the output as
	// non-duplicates.
	UniqueReads int

	// UnknownUMIs is the number of reads dropped because their UMI is
	// not in the known UMI list.
	UnknownUMIs int

	// Duplicates is the number of reads identified as duplicates of an
	// earlier read. They are removed, or written with the duplicate flag
	// when marking.
	Duplicates int

	// CorrectedUMIs is the number of reads whose UMI was snapped to a
	// known UMI. Always zero unless UMI scavenging is enabled.
	CorrectedUMIs int

	// Contigs holds the number of unique reads kept per reference.
	Contigs ContigTally
}

// ContigTally counts reads per contig. The zero value is ready to use.
type ContigTally struct {
	counts map[string]int
	// seen lists contigs in order of first appearance.
	seen []string
}

// Add counts one read on contig.
func (t *ContigTally) Add(contig string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, ok := t.counts[contig]; !ok {
		t.seen = append(t.seen, contig)
	}
	t.counts[contig]++
}

// Count returns the number of reads counted on contig.
func (t *ContigTally) Count(contig string) int {
	return t.counts[contig]
}

// Total returns the number of reads counted on all contigs.
func (t *ContigTally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Contigs returns the counted contigs in report order; see SortContigs.
func (t *ContigTally) Contigs() []string {
	contigs := append([]string(nil), t.seen...)
	SortContigs(contigs)
	return contigs
}

// Report writes a human readable summary of m to w: the four pass counters,
// followed by one "contig<TAB>count" line per contig in report order.
func (m *Metrics) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Number of header lines: %d\n"+
		"Number of unique reads: %d\n"+
		"Number of wrong UMIs: %d\n"+
		"Number of removed duplicates: %d\n",
		m.HeaderLines, m.UniqueReads, m.UnknownUMIs, m.Duplicates); err != nil {
		return err
	}
	tw := tsv.NewWriter(w)
	for _, contig := range m.Contigs.Contigs() {
		tw.WriteString(contig)
		tw.WriteInt64(int64(m.Contigs.Count(contig)))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// writeMetrics writes m to w as TSV: a row of pass counters under a
// commented header, then the per-contig tally in report order.
func writeMetrics(w io.Writer, m *Metrics) error {
	tw := tsv.NewWriter(w)
	for _, col := range []string{"#HEADER_LINES", "UNIQUE_READS", "UNKNOWN_UMIS", "DUPLICATES", "CORRECTED_UMIS"} {
		tw.WriteString(col)
	}
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, v := range []int{m.HeaderLines, m.UniqueReads, m.UnknownUMIs, m.Duplicates, m.CorrectedUMIs} {
		tw.WriteInt64(int64(v))
	}
	if err := tw.EndLine(); err != nil {
		return err
	}
	tw.WriteString("#CONTIG")
	tw.WriteString("UNIQUE_READS")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, contig := range m.Contigs.Contigs() {
		tw.WriteString(contig)
		tw.WriteInt64(int64(m.Contigs.Count(contig)))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}
