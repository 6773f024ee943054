package trick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedSource(t *testing.T) {
	s := NewScriptedSource(3, 7, -1)

	assert.Equal(t, 3, s.Intn(10))
	assert.Equal(t, 1, s.Intn(3))
	assert.Equal(t, 4, s.Intn(5))
	assert.Equal(t, 0, s.Intn(5), "Expected exhausted source to return 0")
	assert.Panics(t, func() { s.Intn(0) })
}
