package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct {
		id  *int
		seq uint64
	}
	var id int

	first := Name(key{&id, 1})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(key{&id, 1}), "names are stable for equal keys")
	assert.NotEqual(t, "Ø", Name(key{&id, 2}))
}

func TestName_Nil(t *testing.T) {
	var p *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(p))
}
