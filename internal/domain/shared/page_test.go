package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParams_Normalize(t *testing.T) {
	t.Run("clamps limit to minimum 1", func(t *testing.T) {
		p := PageParams{Limit: 0, Offset: 5}.Normalize()
		assert.Equal(t, 1, p.Limit)
		assert.Equal(t, 5, p.Offset)

		p = PageParams{Limit: -3}.Normalize()
		assert.Equal(t, 1, p.Limit)
	})

	t.Run("leaves valid limit alone", func(t *testing.T) {
		p := PageParams{Limit: 200, Offset: 0}.Normalize()
		assert.Equal(t, 200, p.Limit)
	})

	t.Run("does not clamp negative offset", func(t *testing.T) {
		p := PageParams{Limit: 10, Offset: -1}.Normalize()
		assert.Equal(t, -1, p.Offset)
	})
}

func TestNewPage(t *testing.T) {
	t.Run("hasNext true when window ends before total", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3}, 25, PageParams{Limit: 10, Offset: 0})
		assert.True(t, page.HasNext)
		assert.Equal(t, int64(25), page.Total)
	})

	t.Run("hasNext false on last partial page", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3, 4, 5}, 25, PageParams{Limit: 10, Offset: 20})
		assert.False(t, page.HasNext)
		assert.Len(t, page.Content, 5)
	})

	t.Run("hasNext false when window exactly covers total", func(t *testing.T) {
		page := NewPage([]int{}, 20, PageParams{Limit: 10, Offset: 10})
		assert.False(t, page.HasNext)
	})

	t.Run("nil content marshals as empty slice", func(t *testing.T) {
		page := NewPage[string](nil, 0, DefaultPageParams())
		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
		assert.False(t, page.HasNext)
	})
}
