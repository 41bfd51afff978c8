package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchAppliesOnlyNonNil(t *testing.T) {
	dst := "original"
	patch(&dst, nil)
	assert.Equal(t, "original", dst)

	v := "changed"
	patch(&dst, &v)
	assert.Equal(t, "changed", dst)

	n := 0
	zero := 0
	patch(&n, &zero)
	assert.Equal(t, 0, n) // explicit zero is applied, absence is not null
}
