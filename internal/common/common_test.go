package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "pets", PkgAlias("example.com/zoo/pets"))
	assert.Equal(t, "fmt", PkgAlias("fmt"))
	assert.Empty(t, PkgAlias(""))
}

func TestSliceShape(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))
}
