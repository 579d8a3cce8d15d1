package achievements

// Notifier is told about every fresh unlock.
type Notifier interface {
	Notify(Definition)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Definition)

func (f NotifierFunc) Notify(d Definition) { f(d) }

// Queue buffers unlocks until the UI shows them.
type Queue struct {
	items []Definition
}

func (q *Queue) Notify(d Definition) {
	q.items = append(q.items, d)
}

// Pop returns the oldest pending unlock.
func (q *Queue) Pop() (Definition, bool) {
	if len(q.items) == 0 {
		return Definition{}, false
	}
	d := q.items[0]
	q.items = q.items[1:]
	return d, true
}

// Len is the number of pending unlocks.
func (q *Queue) Len() int { return len(q.items) }
