package umidedup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/umidedup/encoding/samtext"
	"github.com/grailbio/umidedup/umi"
	"github.com/klauspost/compress/gzip"
)

// passState is the state of a deduplication pass.
type passState int

const (
	// awaitingFirstRecord copies header lines until the first alignment.
	awaitingFirstRecord passState = iota
	// streaming classifies each alignment line.
	streaming
	// done is reached at the end of the input.
	done
)

// Deduper removes duplicate reads from SAM text. A Deduper may run several
// passes, but not concurrently.
type Deduper struct {
	known          *umi.KnownSet
	umiCorrector   *umi.SnapCorrector
	markDuplicates bool
}

// NewDeduper creates a Deduper that accepts reads whose UMI is in known.
// Only opts.MarkDuplicates and opts.ScavengeUmis are used; with the zero
// Opts, a read is kept only if its UMI is exactly one of known.
func NewDeduper(known *umi.KnownSet, opts *Opts) (*Deduper, error) {
	d := &Deduper{
		known:          known,
		markDuplicates: opts.MarkDuplicates,
	}
	if opts.ScavengeUmis > 0 {
		var err error
		if d.umiCorrector, err = umi.NewSnapCorrector(known, opts.ScavengeUmis); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// pass holds the state of one run of Dedup over an input.
type pass struct {
	d       *Deduper
	w       *samtext.Writer
	state   passState
	contig  string
	seen    map[DuplicateKey]struct{}
	metrics *Metrics
}

// Dedup reads SAM text from in and writes the header and the kept records
// to out. It returns the counters of the pass. A malformed alignment line
// aborts the pass with an errors.Invalid error; lines already written to out
// are not retracted.
func (d *Deduper) Dedup(in io.Reader, out io.Writer) (*Metrics, error) {
	p := &pass{
		d:       d,
		w:       samtext.NewWriter(out),
		state:   awaitingFirstRecord,
		seen:    make(map[DuplicateKey]struct{}),
		metrics: &Metrics{},
	}
	scanner := samtext.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Line()
		if p.state == awaitingFirstRecord {
			if samtext.IsHeader(line) {
				if err := p.w.Write(line); err != nil {
					return nil, err
				}
				p.metrics.HeaderLines++
				continue
			}
			p.state = streaming
		}
		if err := p.processRecord(line); err != nil {
			return nil, errors.E(err, fmt.Sprintf("line %d", scanner.LineNumber()))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p.finishContig()
	p.state = done
	return p.metrics, nil
}

func (p *pass) processRecord(line []byte) error {
	rec, err := samtext.ParseRecord(line)
	if err != nil {
		return errors.E(errors.Invalid, err)
	}
	if rec.Ref != p.contig {
		p.finishContig()
		p.contig = rec.Ref
		p.seen = make(map[DuplicateKey]struct{})
	}

	readUMI := rec.UMI
	if !p.d.known.Contains(readUMI) {
		if !p.scavenge(&readUMI) {
			p.metrics.UnknownUMIs++
			return nil
		}
		p.metrics.CorrectedUMIs++
	}

	key := NewDuplicateKey(rec.Ref, rec.Flags, rec.Pos, rec.Cigar, readUMI)
	if _, ok := p.seen[key]; ok {
		p.metrics.Duplicates++
		if p.d.markDuplicates {
			return p.w.WriteWithFlags(line, rec.Flags|sam.Duplicate)
		}
		return nil
	}
	p.seen[key] = struct{}{}
	if err := p.w.Write(line); err != nil {
		return err
	}
	p.metrics.UniqueReads++
	p.metrics.Contigs.Add(rec.Ref)
	return nil
}

// scavenge replaces *readUMI with the known UMI it snaps to, and reports
// whether it did.
func (p *pass) scavenge(readUMI *string) bool {
	if p.d.umiCorrector == nil {
		return false
	}
	corrected, edits, ok := p.d.umiCorrector.CorrectUMI(*readUMI)
	if !ok || !p.d.known.Contains(corrected) {
		return false
	}
	log.Debug.Printf("corrected umi %s to %s with %d edits", *readUMI, corrected, edits)
	*readUMI = corrected
	return true
}

func (p *pass) finishContig() {
	if p.state == streaming && p.contig != "" {
		log.Debug.Printf("finished contig %s: %d unique reads, %d keys", p.contig,
			p.metrics.Contigs.Count(p.contig), len(p.seen))
	}
}

// SetupAndDedup validates opts, loads the known UMIs, and deduplicates
// opts.InputPath into opts.OutputPath. All files are opened before any
// record is processed.
func SetupAndDedup(ctx context.Context, opts *Opts) (metrics *Metrics, err error) {
	if err = validate(opts); err != nil {
		return nil, err
	}
	known, err := umi.ReadKnownSet(ctx, opts.UmiFile)
	if err != nil {
		return nil, err
	}
	d, err := NewDeduper(known, opts)
	if err != nil {
		return nil, err
	}

	in, err := file.Open(ctx, opts.InputPath)
	if err != nil {
		return nil, errors.E(err, "couldn't open input file:", opts.InputPath)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var metricsOut file.File
	if opts.MetricsFile != "" {
		if metricsOut, err = file.Create(ctx, opts.MetricsFile); err != nil {
			return nil, errors.E(err, "couldn't create metrics file:", opts.MetricsFile)
		}
		defer file.CloseAndReport(ctx, metricsOut, &err)
	}
	out, err := file.Create(ctx, opts.OutputPath)
	if err != nil {
		return nil, errors.E(err, "couldn't create output file:", opts.OutputPath)
	}
	defer file.CloseAndReport(ctx, out, &err)

	inr, _ := compress.NewReader(in.Reader(ctx))
	defer inr.Close() // nolint: errcheck
	w := newOutputWriter(out.Writer(ctx), opts.OutputPath)
	metrics, err = d.Dedup(inr, w)
	if e := w.Close(); e != nil && err == nil {
		err = errors.E(e, "error writing to output file:", opts.OutputPath)
	}
	if err != nil {
		return nil, errors.E(err, opts.InputPath)
	}
	log.Printf("%s: %d unique reads, %d duplicates, %d unknown umis",
		opts.InputPath, metrics.UniqueReads, metrics.Duplicates, metrics.UnknownUMIs)

	if metricsOut != nil {
		if err = writeMetrics(metricsOut.Writer(ctx), metrics); err != nil {
			return nil, errors.E(err, "error writing to metrics file:", opts.MetricsFile)
		}
	}
	return metrics, nil
}

// outputWriter buffers writes to the output, and gzips them if the output
// path ends in ".gz".
type outputWriter struct {
	buf *bufio.Writer
	gz  *gzip.Writer
}

func newOutputWriter(w io.Writer, path string) *outputWriter {
	o := &outputWriter{}
	if strings.HasSuffix(path, ".gz") {
		o.gz = gzip.NewWriter(w)
		w = o.gz
	}
	o.buf = bufio.NewWriterSize(w, 1<<20)
	return o
}

func (o *outputWriter) Write(p []byte) (int, error) {
	return o.buf.Write(p)
}

// Close flushes buffered data. It does not close the underlying writer.
func (o *outputWriter) Close() error {
	err := o.buf.Flush()
	if o.gz != nil {
		if e := o.gz.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
