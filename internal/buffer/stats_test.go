package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		sum       float64
		stDev     float64
		variance  float64
		min, max  float64
		minIndex  int
		maxIndex  int
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			sum:      float64(l) * 500,
			stDev:    289,
			variance: 83500,
			min:      0,
			max:      float64(l - 1),
			minIndex: 0,
			maxIndex: l - 1,
		},
		"monotonically-decreasing-0": {
			transform: func(i int) float64 {
				return float64(l/2) - float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			// NOTE : these are the same as for the increasing case
			stDev:    289,
			variance: 83500,
			min:      -float64(l / 2),
			max:      float64(l / 2),
			minIndex: l - 1,
			maxIndex: 0,
		},
		"abs-+": {
			transform: func(i int) float64 {
				return math.Abs(-1*float64(l/2) + float64(i))
			},
			avg:   float64(l / 4),
			count: l,
			sum:   250500,
			// NOTE : these are half of the monotonical case
			stDev:    289 / 2,
			variance: 83500 / 4,
			min:      0,
			max:      float64(l / 2),
			minIndex: l / 2,
			maxIndex: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				stats.Push(tt.transform(i))
			}
			assert.InDelta(t, tt.avg, stats.Avg(), 1)
			assert.Equal(t, tt.count, stats.Count())
			assert.InDelta(t, tt.sum, stats.Sum(), 1e-6)
			assert.InDelta(t, tt.stDev, stats.StDev(), 1)
			assert.InDelta(t, tt.variance, stats.Variance(), 100)
			min, minIndex := stats.Min()
			max, maxIndex := stats.Max()
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
			assert.Equal(t, tt.minIndex, minIndex)
			assert.Equal(t, tt.maxIndex, maxIndex)
		})
	}

}

func TestStats_Empty(t *testing.T) {
	stats := NewStats()
	assert.Equal(t, 0, stats.Count())
	assert.Equal(t, 0., stats.Variance())
	assert.Equal(t, 0., stats.StDev())
}
