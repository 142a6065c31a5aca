package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := Parse("", "")
		require.NoError(t, err)
		assert.Equal(t, Params{Limit: 10, Offset: 0}, p)
	})

	t.Run("explicit values", func(t *testing.T) {
		p, err := Parse("25", "50")
		require.NoError(t, err)
		assert.Equal(t, Params{Limit: 25, Offset: 50}, p)
	})

	t.Run("zero limit rejected", func(t *testing.T) {
		_, err := Parse("0", "")
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		_, err := Parse("-5", "")
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("non-numeric limit rejected", func(t *testing.T) {
		_, err := Parse("ten", "")
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		_, err := Parse("", "-1")
		assert.ErrorIs(t, err, ErrInvalidOffset)
	})
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		offset int
		count  int64
		want   Meta
	}{
		{
			name: "middle page of 25 items", limit: 10, offset: 10, count: 25,
			want: Meta{Index: 1, Next: intPtr(20), Previous: intPtr(0), Limit: 10, Offset: 10, Count: 25, Pages: 3},
		},
		{
			name: "last partial page of 25 items", limit: 10, offset: 20, count: 25,
			want: Meta{Index: 2, Next: nil, Previous: intPtr(10), Limit: 10, Offset: 20, Count: 25, Pages: 3},
		},
		{
			name: "first page", limit: 10, offset: 0, count: 25,
			want: Meta{Index: 0, Next: intPtr(10), Previous: nil, Limit: 10, Offset: 0, Count: 25, Pages: 3},
		},
		{
			name: "empty collection", limit: 10, offset: 0, count: 0,
			want: Meta{Index: 0, Next: nil, Previous: nil, Limit: 10, Offset: 0, Count: 0, Pages: 0},
		},
		{
			name: "offset beyond count", limit: 10, offset: 40, count: 25,
			want: Meta{Index: 4, Next: nil, Previous: intPtr(30), Limit: 10, Offset: 40, Count: 25, Pages: 3},
		},
		{
			name: "count exactly offset plus limit has no next", limit: 10, offset: 10, count: 20,
			want: Meta{Index: 1, Next: nil, Previous: intPtr(0), Limit: 10, Offset: 10, Count: 20, Pages: 2},
		},
		{
			name: "non-aligned offset floors the index", limit: 10, offset: 15, count: 100,
			want: Meta{Index: 1, Next: intPtr(25), Previous: intPtr(5), Limit: 10, Offset: 15, Count: 100, Pages: 10},
		},
		{
			name: "limit one", limit: 1, offset: 3, count: 5,
			want: Meta{Index: 3, Next: intPtr(4), Previous: intPtr(2), Limit: 1, Offset: 3, Count: 5, Pages: 5},
		},
		{
			name: "single short page", limit: 10, offset: 0, count: 7,
			want: Meta{Index: 0, Next: nil, Previous: nil, Limit: 10, Offset: 0, Count: 7, Pages: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeta(Params{Limit: tt.limit, Offset: tt.offset}, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

// pages == ceil(count/limit) 且 index == floor(offset/limit) 对任意合法窗口成立
func TestMetaDerivations(t *testing.T) {
	for limit := 1; limit <= 13; limit++ {
		for offset := 0; offset <= 40; offset += 7 {
			for count := int64(0); count <= 50; count += 11 {
				m := NewMeta(Params{Limit: limit, Offset: offset}, count)

				wantPages := int(count) / limit
				if int(count)%limit != 0 {
					wantPages++
				}
				assert.Equal(t, wantPages, m.Pages)
				assert.Equal(t, offset/limit, m.Index)

				if offset+limit >= int(count) {
					assert.Nil(t, m.Next)
				} else {
					require.NotNil(t, m.Next)
					assert.Equal(t, offset+limit, *m.Next)
				}

				if offset < limit {
					assert.Nil(t, m.Previous)
				} else {
					require.NotNil(t, m.Previous)
					assert.Equal(t, offset-limit, *m.Previous)
				}
			}
		}
	}
}
