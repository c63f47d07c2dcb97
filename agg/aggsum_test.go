package agg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynagraph/dynagraph/agg"
)

func TestAggSum_MonoidLaws(t *testing.T) {
	var a agg.AggSum

	assert.Equal(t, int64(0), a.Default())
	assert.Equal(t, int64(5), a.From(5))
	assert.Equal(t, int64(7), a.Merge(a.From(3), a.From(4)))
	// right/left identity
	assert.Equal(t, a.From(9), a.Merge(a.From(9), a.Default()))
	assert.Equal(t, a.From(9), a.Merge(a.Default(), a.From(9)))
	// commutative: reverse is identity
	sum := a.Merge(a.From(3), a.From(4))
	assert.Equal(t, sum, a.Reverse(sum))
	// associativity
	x, y, z := a.From(1), a.From(2), a.From(3)
	assert.Equal(t, a.Merge(a.Merge(x, y), z), a.Merge(x, a.Merge(y, z)))
}
