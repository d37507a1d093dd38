package pairing_test

import (
	"fmt"

	"github.com/davidvella/pairing"
)

// ExampleNewQueue demonstrates using the queue as a max-heap.
func ExampleNewQueue() {
	// Create a max-heap (larger values have higher priority)
	pq := pairing.NewQueue(func(a, b int) bool {
		return a > b
	})

	// Add some items
	pq.Push(3)
	pq.Push(7)
	pq.Push(5)

	// Peek at the highest priority item
	if value, ok := pq.Peek(); ok {
		fmt.Printf("Highest priority: %d\n", value)
	}

	// Pop items in priority order
	for !pq.IsEmpty() {
		fmt.Printf("Popped: %d\n", pq.MustPop())
	}

	// Output:
	// Highest priority: 7
	// Popped: 7
	// Popped: 5
	// Popped: 3
}

// ExampleNewQueue_minHeap demonstrates using the queue as a min-heap.
func ExampleNewQueue_minHeap() {
	// Smaller values have higher priority
	pq := pairing.NewQueue(func(a, b int) bool {
		return a < b
	})

	pq.Push(4)
	pq.Push(1)
	pq.Push(3)

	for !pq.IsEmpty() {
		fmt.Printf("%d ", pq.MustPop())
	}

	// Output: 1 3 4
}

// ExampleNewQueueFromSlice demonstrates building a queue from existing values.
func ExampleNewQueueFromSlice() {
	pq := pairing.NewQueueFromSlice(func(a, b int) bool {
		return a > b
	}, []int{1, 2, 3, 4, 5})

	value, _ := pq.Peek()
	fmt.Printf("Length: %d, highest: %d\n", pq.Len(), value)

	// Output: Length: 5, highest: 5
}

// ExampleQueue_customType demonstrates using the queue with custom types.
func ExampleQueue_customType() {
	type Task struct {
		Priority int
		Name     string
	}

	// Order tasks by ascending priority number
	pq := pairing.NewQueue(func(a, b Task) bool {
		return a.Priority < b.Priority
	})

	pq.Push(Task{Priority: 2, Name: "Low priority"})
	pq.Push(Task{Priority: 1, Name: "High priority"})

	// Process tasks in priority order
	for !pq.IsEmpty() {
		task := pq.MustPop()
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 1)
	// Processing: Low priority (priority 2)
}

// ExampleQueue_All demonstrates iterating a queue without draining it.
func ExampleQueue_All() {
	pq := pairing.NewQueueFromSlice(func(a, b string) bool {
		return a < b
	}, []string{"cat", "apple", "banana"})

	for v := range pq.All() {
		fmt.Println(v)
	}
	fmt.Printf("Still holding %d items\n", pq.Len())

	// Output:
	// apple
	// banana
	// cat
	// Still holding 3 items
}
