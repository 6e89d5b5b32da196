package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	prev := NewFunc
	defer func() { NewFunc = prev }()

	NewFunc = func() string { return "0123456789abcdef" }
	assert.Equal(t, "01234567", Short())

	NewFunc = func() string { return "abc" }
	assert.Equal(t, "abc", Short())
}
