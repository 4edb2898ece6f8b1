/*Package umidedup removes PCR duplicates from a sorted, uniquely mapped,
  single-end SAM file, using the unique molecular identifier (UMI) carried
  at the end of each read name.

  Duplicate Concepts:

  Two reads A and B are duplicates if their:
    1) reference name
    2) strand
    3) adjusted 5' position
    4) UMI
  are ALL identical.  The CIGAR is not part of the comparison, so two reads
  with different indel calls are still duplicates.

  The adjusted 5' position undoes soft clipping at the 5' end of the read.
  For a forward read it is POS minus the length of the leading soft clip.
  For a reverse read it is the last reference base covered by the
  alignment plus the length of the trailing soft clip:

      forward:   |ssss|=================>
                 5'   POS

      reverse:        <=================|ssss|
                      POS                    5'

  Among duplicates, the read that appears first in the input is kept.
  Reads whose UMI is not in the known UMI list are dropped and counted
  separately, whether or not they are duplicates.

  Implementation:

  The input is processed in one sequential pass.  Header lines are copied
  to the output.  For alignment lines, the deduper keeps the set of
  duplicate keys seen on the current reference, and clears it whenever the
  reference changes.  This bounds memory by the number of distinct reads on
  one reference, but it requires the input to be sorted by reference:
  if a reference reappears after another one, duplicates across the two
  runs are not detected.  Sortedness is not checked.

  Kept records are written byte for byte as they were read.  With
  Opts.MarkDuplicates, duplicates are written too, with flag 0x400 set.
*/
package umidedup
