package astar

// priorityQueue is the search frontier: a container/heap of indices into the
// node arena. Lower score wins; equal scores fall back to the lower Point.Key,
// which keeps the visitation order reproducible.
type priorityQueue struct {
	nodes *[]node
	items []int32
}

func (queue *priorityQueue) Len() int { return len(queue.items) }

func (queue *priorityQueue) Less(i, j int) bool {
	a, b := &(*queue.nodes)[queue.items[i]], &(*queue.nodes)[queue.items[j]]
	if a.score != b.score {
		return a.score < b.score
	}
	return a.point.Key() < b.point.Key()
}

func (queue *priorityQueue) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	(*queue.nodes)[queue.items[i]].queueIndex = i
	(*queue.nodes)[queue.items[j]].queueIndex = j
}

func (queue *priorityQueue) Push(x any) {
	id := x.(int32)
	(*queue.nodes)[id].queueIndex = len(queue.items)
	queue.items = append(queue.items, id)
}

func (queue *priorityQueue) Pop() any {
	n := len(queue.items)
	id := queue.items[n-1]
	queue.items = queue.items[:n-1]
	(*queue.nodes)[id].queueIndex = -1
	return id
}
