package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 10, 10},
		{5, 0, 0},
	}
	for _, tc := range cases {
		p := NewPage([]int{}, 0, tc.size, tc.total)
		assert.Equal(t, tc.want, p.TotalPages, "total=%d size=%d", tc.total, tc.size)
	}
}

func TestNewPageNeverNilContent(t *testing.T) {
	p := NewPage[string](nil, 3, 20, 0)
	assert.NotNil(t, p.Content)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Size)
}
