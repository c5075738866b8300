package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool_GetReturnsEmptyBufferWithCapacity(t *testing.T) {
	bp := NewBufferPool(16)

	buf := bp.Get(64)
	assert.Len(t, *buf, 0)
	assert.GreaterOrEqual(t, cap(*buf), 64)

	*buf = append(*buf, "racecar"...)
	bp.Put(buf)

	again := bp.Get(4)
	assert.Len(t, *again, 0)
}

func TestRuneBufferPool_PutResetsLength(t *testing.T) {
	rp := NewRuneBufferPool(8)

	buf := rp.Get()
	*buf = append(*buf, []rune("level")...)
	rp.Put(buf)

	assert.Len(t, *buf, 0)
	assert.Len(t, *rp.Get(), 0)
}
