// Package reconcile diffs a client's cached (id, updated_at) set against
// the authoritative set for the same owner and classifies every id into
// create/update/delete buckets. Timestamps are compared by exact equality,
// not ordering: a record is up to date only when both sides hold the very
// same updated_at instant.
package reconcile

import (
	"sort"
	"time"
)

// Item is one (id, updated_at) pair from either side of the diff.
type Item struct {
	UpdatedAt time.Time
	ID        string
}

// Result holds the three pairwise-disjoint id sets produced by Reconcile.
// ToBeCreated ids exist only on the server, ToBeDeleted only on the
// client, ToBeUpdated on both sides with differing timestamps.
type Result struct {
	ToBeUpdated []string
	ToBeCreated []string
	ToBeDeleted []string
}

// Empty reports whether the result requires no local mutations.
func (r Result) Empty() bool {
	return len(r.ToBeUpdated) == 0 && len(r.ToBeCreated) == 0 && len(r.ToBeDeleted) == 0
}

// Reconcile computes the diff between the client's cached state and the
// server's authoritative state. It is a total, deterministic function:
// both inputs may be empty, ordering is irrelevant, and the output slices
// are sorted. Duplicate ids within one input keep the last-seen timestamp.
func Reconcile(clientState, serverState []Item) Result {
	clientByID := indexByID(clientState)
	serverByID := indexByID(serverState)

	result := Result{
		ToBeUpdated: []string{},
		ToBeCreated: []string{},
		ToBeDeleted: []string{},
	}

	for id, clientUpdatedAt := range clientByID {
		serverUpdatedAt, ok := serverByID[id]
		if !ok {
			// The server no longer has this record.
			result.ToBeDeleted = append(result.ToBeDeleted, id)
			continue
		}
		if !clientUpdatedAt.Equal(serverUpdatedAt) {
			result.ToBeUpdated = append(result.ToBeUpdated, id)
		}
	}

	for id := range serverByID {
		if _, ok := clientByID[id]; !ok {
			result.ToBeCreated = append(result.ToBeCreated, id)
		}
	}

	sort.Strings(result.ToBeUpdated)
	sort.Strings(result.ToBeCreated)
	sort.Strings(result.ToBeDeleted)

	return result
}

// indexByID builds the id -> updated_at lookup. Later entries win on
// duplicate ids.
func indexByID(items []Item) map[string]time.Time {
	index := make(map[string]time.Time, len(items))
	for _, item := range items {
		index[item.ID] = item.UpdatedAt
	}
	return index
}
