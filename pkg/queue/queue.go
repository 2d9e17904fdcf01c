// queue package

package queue

// Queue represents a basic queue.
type Queue[T any] interface {
	Enqueue(item T)
	Dequeue() T
	Size() int
	ReadAllItems() []T
	ClearQueue()
}
