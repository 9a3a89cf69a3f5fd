package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}

func TestRoundRating(t *testing.T) {
	cases := []struct {
		avg  float64
		want float64
	}{
		{14.0 / 3.0, 4.7}, // 5,5,4
		{17.0 / 4.0, 4.3}, // 5,5,4,3
		{5, 5},
		{4.04, 4.0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundRating(c.avg), "avg=%v", c.avg)
	}
}

func TestItemInCategory(t *testing.T) {
	it := &Item{Category: "Jackets"}
	assert.True(t, it.InCategory("jackets"))
	assert.True(t, it.InCategory("JACKETS"))
	assert.False(t, it.InCategory("coats"))
}
