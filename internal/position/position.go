// Package position plans the position updates that keep a parent-scoped list
// dense (0-based, gap-free, duplicate-free) across inserts, deletes and moves.
// It is storage-agnostic: callers fetch the current sibling rows, ask for a
// plan, and apply the resulting updates atomically.
package position

import "errors"

// ErrOutOfRange is returned by Insert for a position outside [0, len].
var ErrOutOfRange = errors.New("position out of range")

// Item is a sibling row in a parent scope. Positions are expected to be dense.
type Item struct {
	ID  string
	Pos int
}

// Update assigns a new position to one sibling.
type Update struct {
	ID  string
	Pos int
}

// Append returns the position for a new item added at the end of a list of n
// siblings. No existing sibling changes.
func Append(n int) int { return n }

// Insert plans an insert at position p into the given siblings. Every sibling
// at p or later shifts up by one. p must be within [0, len(siblings)];
// anything else is rejected, not clamped.
func Insert(siblings []Item, p int) ([]Update, error) {
	if p < 0 || p > len(siblings) {
		return nil, ErrOutOfRange
	}
	var updates []Update
	for _, s := range siblings {
		if s.Pos >= p {
			updates = append(updates, Update{ID: s.ID, Pos: s.Pos + 1})
		}
	}
	return updates, nil
}

// Remove plans the removal of the item at position p: every sibling past p
// shifts down by one, closing the gap. The removed item itself is not part of
// the plan.
func Remove(siblings []Item, p int) []Update {
	var updates []Update
	for _, s := range siblings {
		if s.Pos > p {
			updates = append(updates, Update{ID: s.ID, Pos: s.Pos - 1})
		}
	}
	return updates
}

// Move plans relocating id to newPos within its own list. newPos beyond the
// end of the list places the item last. The returned updates include the moved
// item; the second result is the position it lands on.
func Move(siblings []Item, id string, newPos int) ([]Update, int) {
	old := -1
	for _, s := range siblings {
		if s.ID == id {
			old = s.Pos
			break
		}
	}
	if old == -1 {
		return nil, -1
	}
	if newPos < 0 {
		newPos = 0
	}
	if max := len(siblings) - 1; newPos > max {
		newPos = max
	}
	if newPos == old {
		return nil, old
	}

	var updates []Update
	for _, s := range siblings {
		switch {
		case s.ID == id:
			continue
		case newPos > old && s.Pos > old && s.Pos <= newPos:
			updates = append(updates, Update{ID: s.ID, Pos: s.Pos - 1})
		case newPos < old && s.Pos >= newPos && s.Pos < old:
			updates = append(updates, Update{ID: s.ID, Pos: s.Pos + 1})
		}
	}
	updates = append(updates, Update{ID: id, Pos: newPos})
	return updates, newPos
}

// Transfer plans moving id from its source list into target at newPos. The
// source list closes the gap the item leaves behind and the target list opens
// a slot; both plans plus the landing position are returned. newPos beyond the
// target's length appends at the end. The moved item's own update (new parent,
// landing position) is the caller's to apply alongside both plans.
func Transfer(source, target []Item, id string, newPos int) (sourceUpdates, targetUpdates []Update, finalPos int) {
	old := -1
	for _, s := range source {
		if s.ID == id {
			old = s.Pos
			break
		}
	}
	if old == -1 {
		return nil, nil, -1
	}
	if newPos < 0 {
		newPos = 0
	}
	if newPos > len(target) {
		newPos = len(target)
	}

	for _, s := range source {
		if s.Pos > old {
			sourceUpdates = append(sourceUpdates, Update{ID: s.ID, Pos: s.Pos - 1})
		}
	}
	for _, t := range target {
		if t.Pos >= newPos {
			targetUpdates = append(targetUpdates, Update{ID: t.ID, Pos: t.Pos + 1})
		}
	}
	return sourceUpdates, targetUpdates, newPos
}

// Dense reports whether the items' positions form exactly {0..n-1}.
func Dense(items []Item) bool {
	seen := make([]bool, len(items))
	for _, it := range items {
		if it.Pos < 0 || it.Pos >= len(items) || seen[it.Pos] {
			return false
		}
		seen[it.Pos] = true
	}
	return true
}
