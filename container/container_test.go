package container_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiorder/container"
)

func TestContainer_AddAndSize(t *testing.T) {
	c := container.New[int]()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Size())

	c.Add(7)
	c.Add(15, 6)
	assert.False(t, c.IsEmpty())
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, "[ 7 15 6 ]", c.String())
}

func TestContainer_Remove(t *testing.T) {
	t.Run("RemovesAllOccurrences", func(t *testing.T) {
		c := container.New[int]()
		c.Add(3, 1, 3, 2, 1)

		require.NoError(t, c.Remove(1))
		assert.Equal(t, 3, c.Size())
		assert.Equal(t, "[ 3 3 2 ]", c.String())
		assert.Equal(t, []int{2, 3, 3}, collect(c.BeginAscending(), c.EndAscending()))
	})

	t.Run("NotFoundLeavesContainerUnchanged", func(t *testing.T) {
		c := container.New[int]()
		c.Add(1, 2, 3)

		err := c.Remove(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, container.ErrNotFound)
		assert.Contains(t, err.Error(), "42")
		assert.Equal(t, 3, c.Size())
		assert.Equal(t, "[ 1 2 3 ]", c.String())
	})

	t.Run("EmptyContainer", func(t *testing.T) {
		c := container.New[int]()
		assert.ErrorIs(t, c.Remove(99), container.ErrNotFound)
		assert.Equal(t, 0, c.Size())
	})

	t.Run("RemoveEverything", func(t *testing.T) {
		c := container.New[string]()
		c.Add("x", "x", "x")
		require.NoError(t, c.Remove("x"))
		assert.True(t, c.IsEmpty())
		assert.Equal(t, "[ ]", c.String())
	})
}

func TestContainer_SizeTracksAddsAndRemoves(t *testing.T) {
	c := container.New[int]()
	adds, removed := 0, 0
	for i := range 100 {
		c.Add(i % 7)
		adds++
	}
	for _, v := range []int{3, 3, 5, 42} {
		before := c.Size()
		if err := c.Remove(v); err == nil {
			removed += before - c.Size()
		}
	}
	assert.Equal(t, adds-removed, c.Size())
	for v := range c.Values() {
		assert.NotEqual(t, 3, v)
		assert.NotEqual(t, 5, v)
	}
}

func TestContainer_String(t *testing.T) {
	tests := []struct {
		name string
		vals []string
		want string
	}{
		{"Empty", nil, "[ ]"},
		{"Single", []string{"a"}, "[ a ]"},
		{"Two", []string{"a", "bb"}, "[ a bb ]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := container.New[string]()
			c.Add(tt.vals...)
			assert.Equal(t, tt.want, c.String())
		})
	}

	big := container.New[int64]()
	big.Add(1<<62, -(1 << 62))
	assert.Equal(t, "[ 4611686018427387904 -4611686018427387904 ]", big.String())
}

func TestContainer_CloneIsIndependent(t *testing.T) {
	a := container.New[int]()
	a.Add(1, 2, 3)

	b := a.Clone()
	b.Add(4)
	require.NoError(t, b.Remove(1))

	assert.Equal(t, "[ 1 2 3 ]", a.String())
	assert.Equal(t, "[ 2 3 4 ]", b.String())

	a.Add(9)
	assert.Equal(t, 3, b.Size())
}

func TestContainer_Clear(t *testing.T) {
	c := container.New[int]()
	c.Add(1, 2, 3)
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.BeginMiddleOut().Equal(c.EndMiddleOut()))

	c.Add(5)
	assert.Equal(t, "[ 5 ]", c.String())
}

func TestContainer_ValuesAndAll(t *testing.T) {
	c := container.New[int]()
	c.Add(4, 5, 6)

	var got []int
	for v := range c.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 5, 6}, got)

	for i, v := range c.All() {
		assert.Equal(t, i+4, v)
	}
}

func TestContainer_Seq(t *testing.T) {
	c := container.New[int]()
	c.Add(7, 15, 6, 1, 2)

	var got []int
	for v := range c.Seq(container.SideCross) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 15, 2, 7, 6}, got)

	// early break
	got = got[:0]
	for v := range c.Seq(container.Descending) {
		if v < 7 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{15, 7}, got)
}

type point struct {
	key int
	tag string
}

func comparePoints(a, b point) int {
	return a.key - b.key
}

func TestContainer_NewFunc(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		c := container.NewFunc(comparePoints)
		c.Add(point{2, "b"}, point{1, "a"}, point{3, "c"})
		got := collect(c.BeginAscending(), c.EndAscending())
		assert.Equal(t, []point{{1, "a"}, {2, "b"}, {3, "c"}}, got)

		require.NoError(t, c.Remove(point{key: 2}))
		assert.Equal(t, 2, c.Size())
	})

	t.Run("Bool", func(t *testing.T) {
		c := container.NewFunc(func(a, b bool) int {
			switch {
			case a == b:
				return 0
			case !a:
				return -1
			default:
				return 1
			}
		})
		c.Add(true, false, true)
		assert.Equal(t, []bool{false, true, true}, collect(c.BeginAscending(), c.EndAscending()))
		assert.Equal(t, []bool{true, true, false}, collect(c.BeginDescending(), c.EndDescending()))
		assert.Equal(t, "[ true false true ]", c.String())
	})

	t.Run("NilCompare", func(t *testing.T) {
		assert.Panics(t, func() { container.NewFunc[int](nil) })
	})
}

func TestContainer_LexicographicStrings(t *testing.T) {
	c := container.New[string]()
	c.Add("banana", "apple", "cherry", "Apple", "apple")
	got := collect(c.BeginAscending(), c.EndAscending())
	assert.Equal(t, []string{"Apple", "apple", "apple", "banana", "cherry"}, got)
	assert.True(t, strings.HasPrefix(c.String(), "[ banana"))
}
