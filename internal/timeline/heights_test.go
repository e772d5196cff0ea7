package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateIsMonotonic(t *testing.T) {
	var h Heights
	for _, v := range []float64{40, 25, 60, 10} {
		h = Aggregate(h, "exp-01", v)
	}
	assert.Equal(t, 60, h["exp-01"])
	assert.Equal(t, 60, MaxHeight(h))
}

func TestAggregateRoundsUp(t *testing.T) {
	h := Aggregate(nil, "a", 40.2)
	assert.Equal(t, 41, h["a"])

	// 40.9 rounds to 41, which is not larger
	same := Aggregate(h, "a", 40.9)
	assert.Equal(t, 41, same["a"])
}

func TestAggregateDoesNotMutate(t *testing.T) {
	current := Heights{"a": 10}
	next := Aggregate(current, "b", 30)

	assert.Equal(t, Heights{"a": 10}, current)
	assert.Equal(t, Heights{"a": 10, "b": 30}, next)
}

func TestAggregateIgnoresNonFinite(t *testing.T) {
	current := Heights{"a": 10}
	assert.Equal(t, current, Aggregate(current, "a", math.NaN()))
	assert.Equal(t, current, Aggregate(current, "a", math.Inf(1)))
}

func TestBottomPadding(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 0, BottomPadding(nil, config))
	assert.Equal(t, 0, BottomPadding(Heights{"a": 0}, config))
	assert.Equal(t, 76, BottomPadding(Heights{"a": 60, "b": 12}, config))
}
