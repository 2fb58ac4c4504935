package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeRatings(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
		count   int
	}{
		{"single rating", []int{5}, 5.0, 1},
		{"rounds half up", []int{3, 4, 4}, 3.7, 3},
		{"exact mean", []int{2, 4}, 3.0, 2},
		{"all ones", []int{1, 1, 1, 1}, 1.0, 4},
		{"mixed", []int{5, 4, 3, 2, 1}, 3.0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := SummarizeRatings(tt.ratings)
			require.NotNil(t, summary.Average)
			assert.InDelta(t, tt.want, *summary.Average, 0.001)
			assert.Equal(t, tt.count, summary.Count)
		})
	}
}

func TestSummarizeRatings_EmptyHasNilAverage(t *testing.T) {
	summary := SummarizeRatings(nil)
	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.Count)

	summary = SummarizeRatings([]int{})
	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestSummarizeRatings_OrderIndependent(t *testing.T) {
	a := SummarizeRatings([]int{1, 3, 5, 4})
	b := SummarizeRatings([]int{4, 5, 3, 1})

	require.NotNil(t, a.Average)
	require.NotNil(t, b.Average)
	assert.Equal(t, *a.Average, *b.Average)
	assert.Equal(t, a.Count, b.Count)
}
