package sliceutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"multiorder/sliceutil"
)

func TestFindIndex(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  int
	}{
		{"First", []int{4, 1, 2}, 0},
		{"Middle", []int{1, 5, 2, 6}, 1},
		{"NotFound", []int{1, 2, 3}, -1},
		{"Empty", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliceutil.FindIndex(tt.input, func(x int) bool { return x > 3 })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsFunc(t *testing.T) {
	type pair struct{ k, v int }
	input := []pair{{1, 10}, {2, 20}}

	assert.True(t, sliceutil.ContainsFunc(input, func(p pair) bool { return p.v == 20 }))
	assert.False(t, sliceutil.ContainsFunc(input, func(p pair) bool { return p.k == 3 }))
	assert.False(t, sliceutil.ContainsFunc([]pair{}, func(pair) bool { return true }))
}
