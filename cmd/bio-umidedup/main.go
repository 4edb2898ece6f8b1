package main

/*
bio-umidedup removes PCR duplicates from a coordinate-sorted, uniquely mapped,
single-end SAM file. Reads are duplicates when they share the contig, the
strand, the soft-clip adjusted 5' position, and the UMI found after the last
':' of the read name. See github.com/grailbio/umidedup/umidedup/doc.go.

Sample usage:
bio-umidedup \
    -metrics sample.metrics.tsv \
    sample.sorted.sam \
    sample.dedup.sam.gz \
    STL96.txt
*/

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/umidedup/umidedup"
	"v.io/x/lib/cmdline"
)

func newCmdUmidedup() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bio-umidedup",
		Short:    "Remove UMI-aware PCR duplicates from a sorted single-end SAM file",
		ArgsName: "input output umi-list",
		ArgsLong: `
input is a coordinate-sorted SAM file; .gz, .bz2 and .zst inputs are
decompressed. output receives the header and the kept records, gzip compressed
if the path ends in .gz. umi-list holds one known UMI per line.

A summary of the pass is printed on stderr.`,
		LookPath: false,
	}
	opts := umidedup.Opts{}
	cmd.Flags.StringVar(&opts.MetricsFile, "metrics", "", "Output metrics file")
	cmd.Flags.BoolVar(&opts.MarkDuplicates, "mark-duplicates", false, "set the duplicate flag (0x400) on duplicates instead of removing them")
	cmd.Flags.IntVar(&opts.ScavengeUmis, "scavenge-umis", 0, "snap unknown UMIs to the closest known UMI within this edit distance, 0 disables")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 3 {
			return fmt.Errorf("bio-umidedup takes input output umi-list, but found %v", argv)
		}
		opts.InputPath, opts.OutputPath, opts.UmiFile = argv[0], argv[1], argv[2]
		metrics, err := umidedup.SetupAndDedup(vcontext.Background(), &opts)
		if err != nil {
			return err
		}
		log.Debug.Printf("exiting")
		return metrics.Report(env.Stderr)
	})
	return cmd
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdUmidedup())
}
