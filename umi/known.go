// Package umi holds the set of known unique molecular identifiers and the
// optional correction of sequencing errors in observed UMIs.
package umi

import (
	"bufio"
	"bytes"
	"context"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// KnownSet is an immutable set of known UMIs. Membership is an exact string
// match. A KnownSet is safe for concurrent use.
type KnownSet struct {
	umis map[string]struct{}
}

// NewKnownSet creates a KnownSet from a newline separated list of UMIs
// (the content of a UMI list file). Surrounding whitespace is trimmed from
// each line and blank lines are ignored.
func NewKnownSet(data []byte) *KnownSet {
	s := &KnownSet{umis: map[string]struct{}{}}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		umi := strings.TrimSpace(scanner.Text())
		if umi == "" {
			continue
		}
		s.umis[umi] = struct{}{}
	}
	return s
}

// ReadKnownSet reads the UMI list at path. An empty list is an error, since
// it would classify every read as having an unknown UMI.
func ReadKnownSet(ctx context.Context, path string) (_ *KnownSet, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "couldn't open umi file:", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	data, err := ioutil.ReadAll(in.Reader(ctx))
	if err != nil {
		return nil, errors.E(err, "couldn't read umi file:", path)
	}
	s := NewKnownSet(data)
	if s.Len() == 0 {
		return nil, errors.E(errors.Invalid, "umi file is empty:", path)
	}
	log.Debug.Printf("read %d known umis from %s", s.Len(), path)
	return s, nil
}

// Contains reports whether umi is a known UMI.
func (s *KnownSet) Contains(umi string) bool {
	_, ok := s.umis[umi]
	return ok
}

// Len returns the number of distinct known UMIs.
func (s *KnownSet) Len() int {
	return len(s.umis)
}

// UMIs returns the known UMIs in sorted order.
func (s *KnownSet) UMIs() []string {
	umis := make([]string, 0, len(s.umis))
	for umi := range s.umis {
		umis = append(umis, umi)
	}
	sort.Strings(umis)
	return umis
}
