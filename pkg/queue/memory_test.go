package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[string]()
	assert.Equal(t, 0, q.Size())

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Size())

	assert.Equal(t, "a", q.Dequeue())
	assert.Equal(t, []string{"b", "c"}, q.ReadAllItems())
	assert.Equal(t, 0, q.Size())

	q.Enqueue("d")
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAllItems())
}
