// Package core: the per-airport departure index.
//
// departures is an ordered map from departure instant to a bucket of
// flights kept in ascending cost order. Range queries walk a sorted key
// slice with binary search; buckets preserve their cost order on insert,
// so FlightsBetween never re-sorts. The structure is not self-locking —
// the owning Airport's RWMutex guards every call.

package core

import (
	"sort"
	"time"
)

type departures struct {
	keys    []int64 // occupied departure instants (UnixNano), ascending
	buckets map[int64][]*Flight
}

// add inserts f into the bucket for its departure instant, creating the
// bucket (and its key slot) if absent. Within a bucket the insertion
// position keeps costs non-decreasing.
// Complexity: O(log B + bucket size).
func (d *departures) add(f *Flight) {
	if d.buckets == nil {
		d.buckets = make(map[int64][]*Flight)
	}
	key := f.DepartAt.UnixNano()
	bucket, ok := d.buckets[key]
	if !ok {
		i := sort.Search(len(d.keys), func(i int) bool { return d.keys[i] >= key })
		d.keys = append(d.keys, 0)
		copy(d.keys[i+1:], d.keys[i:])
		d.keys[i] = key
	}

	j := sort.Search(len(bucket), func(i int) bool { return bucket[i].Cost > f.Cost })
	bucket = append(bucket, nil)
	copy(bucket[j+1:], bucket[j:])
	bucket[j] = f
	d.buckets[key] = bucket
}

// remove drops every entry with the given flight ID from the bucket at
// departAt, deleting the bucket and its key slot once empty. Unknown
// instants or IDs are a no-op.
func (d *departures) remove(id int, departAt time.Time) {
	key := departAt.UnixNano()
	bucket, ok := d.buckets[key]
	if !ok {
		return
	}

	kept := bucket[:0]
	for _, f := range bucket {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) > 0 {
		d.buckets[key] = kept

		return
	}

	delete(d.buckets, key)
	i := sort.Search(len(d.keys), func(i int) bool { return d.keys[i] >= key })
	if i < len(d.keys) && d.keys[i] == key {
		d.keys = append(d.keys[:i], d.keys[i+1:]...)
	}
}

// between collects every flight departing in [start, end] inclusive, in
// ascending departure order with each bucket's native cost order. The
// returned slice is freshly allocated; callers own it.
func (d *departures) between(start, end time.Time) []*Flight {
	lo := start.UnixNano()
	hi := end.UnixNano()

	var out []*Flight
	i := sort.Search(len(d.keys), func(i int) bool { return d.keys[i] >= lo })
	for ; i < len(d.keys) && d.keys[i] <= hi; i++ {
		out = append(out, d.buckets[d.keys[i]]...)
	}

	return out
}
