package umidedup

import (
	"fmt"
)

// Opts for umi deduplication.
type Opts struct {
	// InputPath is the sorted SAM input. Compressed input is detected
	// automatically.
	InputPath string
	// OutputPath receives the deduplicated SAM. It is gzip compressed if
	// it ends in ".gz".
	OutputPath string
	// UmiFile lists the known UMIs, one per line.
	UmiFile string
	// MetricsFile, if set, receives the pass counters and per-contig
	// unique read counts as TSV.
	MetricsFile string
	// MarkDuplicates writes duplicates with flag 0x400 set instead of
	// removing them.
	MarkDuplicates bool
	// ScavengeUmis is the maximum edit distance for snapping an unknown
	// UMI to a known one. Zero or -1 disables scavenging.
	ScavengeUmis int
}

func validate(opts *Opts) error {
	if opts.InputPath == "" {
		return fmt.Errorf("you must specify an input SAM file")
	}
	if opts.OutputPath == "" {
		return fmt.Errorf("you must specify an output SAM file")
	}
	if opts.UmiFile == "" {
		return fmt.Errorf("you must specify a UMI list file")
	}
	if opts.InputPath == opts.OutputPath {
		return fmt.Errorf("output %s would overwrite the input", opts.OutputPath)
	}
	if opts.ScavengeUmis < -1 {
		return fmt.Errorf("scavenge-umis must be an edit distance, or 0 or -1 to disable, got %d", opts.ScavengeUmis)
	}
	return nil
}
