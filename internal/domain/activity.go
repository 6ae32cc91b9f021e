package domain

import (
	"slices"
	"strings"
)

// Activity is a node of the business-category taxonomy. Activities form a
// forest: ParentID is nil for roots.
type Activity struct {
	ID       int64
	Name     string
	ParentID *int64
}

// ActivityNode is an activity with its children attached, as rendered by the tree view.
type ActivityNode struct {
	ID       int64
	Name     string
	ParentID *int64
	Children []ActivityNode
}

// IDSet is a set of activity ids.
type IDSet map[int64]struct{}

// NewIDSet creates a set holding ids.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id int64) { s[id] = struct{}{} }

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int { return len(s) }

// Union adds every id of other to s.
func (s IDSet) Union(other IDSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Slice returns the ids in ascending order.
func (s IDSet) Slice() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Taxonomy is an in-memory snapshot of all activities addressed by id.
// Parent and child relations are resolved through id lookups only.
type Taxonomy struct {
	byID     map[int64]Activity
	roots    []int64
	children map[int64][]int64
}

// NewTaxonomy builds a snapshot from activities. Children keep the order in
// which they appear in activities.
func NewTaxonomy(activities []Activity) *Taxonomy {
	t := &Taxonomy{
		byID:     make(map[int64]Activity, len(activities)),
		children: make(map[int64][]int64),
	}
	for _, a := range activities {
		t.byID[a.ID] = a
		if a.ParentID == nil {
			t.roots = append(t.roots, a.ID)
			continue
		}
		t.children[*a.ParentID] = append(t.children[*a.ParentID], a.ID)
	}
	return t
}

// Len returns the number of activities in the snapshot.
func (t *Taxonomy) Len() int { return len(t.byID) }

// Get returns the activity with the given id.
func (t *Taxonomy) Get(id int64) (Activity, bool) {
	a, ok := t.byID[id]
	return a, ok
}

// Children returns the direct children of parentID, or the roots when parentID is nil.
func (t *Taxonomy) Children(parentID *int64) []Activity {
	var ids []int64
	if parentID == nil {
		ids = t.roots
	} else {
		ids = t.children[*parentID]
	}
	out := make([]Activity, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.byID[id])
	}
	return out
}

// MatchName returns every activity whose name contains pattern, ignoring case,
// ordered by id.
func (t *Taxonomy) MatchName(pattern string) []Activity {
	needle := strings.ToLower(pattern)
	var out []Activity
	for _, a := range t.byID {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b Activity) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// IsAncestor reports whether ancestorID appears on the parent chain of id.
// The walk stops after Len() steps so malformed data cannot loop forever.
func (t *Taxonomy) IsAncestor(ancestorID, id int64) bool {
	cur, ok := t.byID[id]
	for steps := 0; ok && cur.ParentID != nil && steps < len(t.byID); steps++ {
		if *cur.ParentID == ancestorID {
			return true
		}
		cur, ok = t.byID[*cur.ParentID]
	}
	return false
}
