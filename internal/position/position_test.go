package position

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(ids ...string) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{ID: id, Pos: i}
	}
	return out
}

// apply replays a plan onto a copy of the list and returns the result.
func apply(list []Item, updates []Update) []Item {
	out := append([]Item(nil), list...)
	for _, u := range updates {
		for i := range out {
			if out[i].ID == u.ID {
				out[i].Pos = u.Pos
			}
		}
	}
	return out
}

func posOf(t *testing.T, list []Item, id string) int {
	t.Helper()
	for _, it := range list {
		if it.ID == id {
			return it.Pos
		}
	}
	t.Fatalf("item %s not in list", id)
	return -1
}

func TestAppend(t *testing.T) {
	assert.Equal(t, 0, Append(0))
	assert.Equal(t, 3, Append(3))
}

func TestInsertShiftsTail(t *testing.T) {
	list := items("a", "b", "c")

	updates, err := Insert(list, 1)
	require.NoError(t, err)

	got := apply(list, updates)
	assert.Equal(t, 0, posOf(t, got, "a"))
	assert.Equal(t, 2, posOf(t, got, "b"))
	assert.Equal(t, 3, posOf(t, got, "c"))
}

func TestInsertAtEndShiftsNothing(t *testing.T) {
	updates, err := Insert(items("a", "b"), 2)
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestInsertOutOfRange(t *testing.T) {
	list := items("a", "b")

	_, err := Insert(list, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Insert(list, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRemoveClosesGap(t *testing.T) {
	list := items("a", "b", "c", "d")

	got := apply(list, Remove(list, 1))

	assert.Equal(t, 0, posOf(t, got, "a"))
	assert.Equal(t, 1, posOf(t, got, "c"))
	assert.Equal(t, 2, posOf(t, got, "d"))
	// Survivors stay dense once "b" is gone.
	assert.True(t, Dense([]Item{
		{ID: "a", Pos: posOf(t, got, "a")},
		{ID: "c", Pos: posOf(t, got, "c")},
		{ID: "d", Pos: posOf(t, got, "d")},
	}))
}

func TestRemoveLastShiftsNothing(t *testing.T) {
	list := items("a", "b")
	assert.Empty(t, Remove(list, 1))
}

func TestMoveForward(t *testing.T) {
	list := items("A", "B", "C", "D", "E")

	updates, final := Move(list, "B", 3)
	assert.Equal(t, 3, final)

	got := apply(list, updates)
	assert.Equal(t, 0, posOf(t, got, "A"))
	assert.Equal(t, 1, posOf(t, got, "C"))
	assert.Equal(t, 2, posOf(t, got, "D"))
	assert.Equal(t, 3, posOf(t, got, "B"))
	assert.Equal(t, 4, posOf(t, got, "E"))
	assert.True(t, Dense(got))
}

func TestMoveBackward(t *testing.T) {
	// Continue from [A, C, D, B, E] and move D to the front.
	list := []Item{
		{ID: "A", Pos: 0}, {ID: "C", Pos: 1}, {ID: "D", Pos: 2},
		{ID: "B", Pos: 3}, {ID: "E", Pos: 4},
	}

	updates, final := Move(list, "D", 0)
	assert.Equal(t, 0, final)

	got := apply(list, updates)
	assert.Equal(t, 0, posOf(t, got, "D"))
	assert.Equal(t, 1, posOf(t, got, "A"))
	assert.Equal(t, 2, posOf(t, got, "C"))
	assert.Equal(t, 3, posOf(t, got, "B"))
	assert.Equal(t, 4, posOf(t, got, "E"))
	assert.True(t, Dense(got))
}

func TestMoveClampsOverlargePosition(t *testing.T) {
	list := items("a", "b", "c")

	updates, final := Move(list, "a", 99)
	assert.Equal(t, 2, final)

	got := apply(list, updates)
	assert.Equal(t, 2, posOf(t, got, "a"))
	assert.True(t, Dense(got))
}

func TestMoveNoop(t *testing.T) {
	list := items("a", "b", "c")

	updates, final := Move(list, "b", 1)
	assert.Empty(t, updates)
	assert.Equal(t, 1, final)
}

func TestMoveUnknownID(t *testing.T) {
	updates, final := Move(items("a"), "zzz", 0)
	assert.Nil(t, updates)
	assert.Equal(t, -1, final)
}

func TestTransferBetweenLists(t *testing.T) {
	x := items("T1", "T2")
	y := items("T3")

	srcUpdates, dstUpdates, final := Transfer(x, y, "T1", 0)
	assert.Equal(t, 0, final)

	gotX := apply(x, srcUpdates)
	assert.Equal(t, 0, posOf(t, gotX, "T2"))

	gotY := apply(y, dstUpdates)
	assert.Equal(t, 1, posOf(t, gotY, "T3"))
}

func TestTransferClampsToTargetLength(t *testing.T) {
	src := items("a", "b")
	dst := items("c")

	srcUpdates, dstUpdates, final := Transfer(src, dst, "a", 10)
	assert.Equal(t, 1, final)
	assert.Empty(t, dstUpdates)

	gotSrc := apply(src, srcUpdates)
	assert.Equal(t, 0, posOf(t, gotSrc, "b"))
}

func TestTransferIntoEmptyList(t *testing.T) {
	srcUpdates, dstUpdates, final := Transfer(items("a"), nil, "a", 5)
	assert.Equal(t, 0, final)
	assert.Empty(t, srcUpdates)
	assert.Empty(t, dstUpdates)
}

func TestTransferUnknownID(t *testing.T) {
	_, _, final := Transfer(items("a"), items("b"), "zzz", 0)
	assert.Equal(t, -1, final)
}

func TestDense(t *testing.T) {
	assert.True(t, Dense(nil))
	assert.True(t, Dense(items("a", "b", "c")))
	assert.False(t, Dense([]Item{{ID: "a", Pos: 0}, {ID: "b", Pos: 2}}))
	assert.False(t, Dense([]Item{{ID: "a", Pos: 1}, {ID: "b", Pos: 1}}))
}

// Random sequences of inserts, removes and moves must keep the list dense.
func TestRandomOperationsStayDense(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var list []Item
	next := 0

	for i := 0; i < 500; i++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(list) == 0:
			p := rng.Intn(len(list) + 1)
			updates, err := Insert(list, p)
			require.NoError(t, err)
			list = apply(list, updates)
			list = append(list, Item{ID: fmt.Sprintf("n%d", next), Pos: p})
			next++
		case op == 1:
			victim := rng.Intn(len(list))
			var rest []Item
			var victimPos int
			for _, it := range list {
				if it.Pos == victim {
					victimPos = it.Pos
					continue
				}
				rest = append(rest, it)
			}
			updates := Remove(list, victimPos)
			list = apply(rest, updates)
		default:
			pick := list[rng.Intn(len(list))]
			updates, _ := Move(list, pick.ID, rng.Intn(len(list)+2)-1)
			list = apply(list, updates)
		}
		require.True(t, Dense(list), "list not dense after %d ops: %#v", i+1, list)
	}
}
