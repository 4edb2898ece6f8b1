/*Package samtext reads and writes SAM text one line at a time.

  Unlike a full SAM codec, samtext never re-serializes a record: lines are
  returned with their original bytes (including the line terminator) so
  that a filter can pass records through unchanged. ParseRecord extracts
  only the fields needed to identify a single-end read: the query name and
  its UMI, the flag, the reference name, the position, and the CIGAR.
*/
package samtext
