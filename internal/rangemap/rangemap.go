// Package rangemap tracks which registers of one register file, within one
// register space, are already claimed by a declaration. It is a disjoint
// interval map over closed uint32 ranges: insertion detects collisions and
// then splits, subsumes or extends coverage so the stored set stays
// pairwise disjoint.
package rangemap

import (
	"slices"
	"sort"
)

// Info describes one declaration's claimed register range. Element is the
// index of the originating declaration in the caller-owned element stream;
// the map borrows Info values and never copies or outlives them.
type Info struct {
	LowerBound uint32
	UpperBound uint32
	Element    int
}

type interval struct {
	lo, hi uint32
	info   *Info
}

// ResourceRange is a set of pairwise-disjoint closed intervals, each
// carrying the Info of the declaration that first claimed it. One instance
// covers one (register kind, register space) bucket for the duration of a
// single validation pass. Not safe for concurrent use.
type ResourceRange struct {
	intervals []interval // sorted by lo, pairwise disjoint
}

// search returns the index of the first stored interval whose upper bound
// is >= x: the interval containing x, or the nearest one after it.
func (r *ResourceRange) search(x uint32) int {
	return sort.Search(len(r.intervals), func(i int) bool {
		return r.intervals[i].hi >= x
	})
}

// Lookup returns the Info covering register x, or nil. Read-only.
func (r *ResourceRange) Lookup(x uint32) *Info {
	i := r.search(x)
	if i == len(r.intervals) || r.intervals[i].lo > x {
		return nil
	}
	return r.intervals[i].info
}

// GetOverlapping returns a stored Info whose interval overlaps info's
// bounds, or nil. Read-only.
func (r *ResourceRange) GetOverlapping(info *Info) *Info {
	i := r.search(info.LowerBound)
	if i == len(r.intervals) || r.intervals[i].lo > info.UpperBound {
		return nil
	}
	return r.intervals[i].info
}

// Insert adds info's range to the tracked set and returns the first stored
// Info it overlapped, or nil if the range was free. Afterwards every
// register in [info.LowerBound, info.UpperBound] is covered and the stored
// intervals remain pairwise disjoint. Inserting a range already fully
// covered leaves the set unchanged and returns the covering Info.
func (r *ResourceRange) Insert(info *Info) *Info {
	lo, hi := info.LowerBound, info.UpperBound

	var res *Info
	for lo <= hi {
		i := r.search(lo)
		if i == len(r.intervals) || r.intervals[i].lo > hi {
			break // remainder does not touch any stored interval
		}
		iv := r.intervals[i]
		if res == nil {
			res = iv.info // first intersection wins
		}
		switch {
		case iv.lo <= lo && hi <= iv.hi:
			// Candidate fully covered; nothing left to insert.
			return res
		case lo <= iv.lo && iv.hi <= hi:
			// Stored interval fully inside the candidate; the candidate
			// supersedes it.
			r.intervals = slices.Delete(r.intervals, i, i+1)
		case lo < iv.lo:
			// Left remainder [lo, iv.lo-1] is uncovered; keep shrinking.
			hi = iv.lo - 1
		default:
			// Covered up to iv.hi; continue with the right remainder.
			lo = iv.hi + 1
		}
	}

	i := sort.Search(len(r.intervals), func(i int) bool {
		return r.intervals[i].lo > lo
	})
	r.intervals = slices.Insert(r.intervals, i, interval{lo: lo, hi: hi, info: info})
	return res
}

// Len returns the number of stored disjoint intervals.
func (r *ResourceRange) Len() int {
	return len(r.intervals)
}
