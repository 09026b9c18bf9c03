package view

// ObservableList is an ordered container whose subscribers are told the new
// contents after every mutation. Derived views are always replaced wholesale;
// element-level mutators exist so clients can edit AllItems in place between
// pipeline runs.
//
// The list is not safe for concurrent use; the engine contract is
// single-threaded throughout.
type ObservableList[T any] struct {
	items []T
	subs  []func(items []T)
}

// NewObservableList creates an empty list.
func NewObservableList[T any]() *ObservableList[T] {
	return &ObservableList[T]{}
}

// Subscribe registers fn to be called with the list's contents after every
// mutation. The returned func removes the subscription.
func (l *ObservableList[T]) Subscribe(fn func(items []T)) func() {
	l.subs = append(l.subs, fn)
	i := len(l.subs) - 1
	return func() {
		l.subs[i] = nil
	}
}

func (l *ObservableList[T]) notify() {
	if len(l.subs) == 0 {
		return
	}
	snapshot := l.Items()
	for _, fn := range l.subs {
		if fn != nil {
			fn(snapshot)
		}
	}
}

// Items returns a copy of the list's contents.
func (l *ObservableList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of elements.
func (l *ObservableList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l *ObservableList[T]) At(i int) T {
	return l.items[i]
}

// Add appends an element.
func (l *ObservableList[T]) Add(item T) {
	l.items = append(l.items, item)
	l.notify()
}

// Insert places an element at index i, shifting later elements right.
func (l *ObservableList[T]) Insert(i int, item T) {
	l.items = append(l.items, item)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.notify()
}

// Set replaces the element at index i.
func (l *ObservableList[T]) Set(i int, item T) {
	l.items[i] = item
	l.notify()
}

// RemoveAt deletes and returns the element at index i.
func (l *ObservableList[T]) RemoveAt(i int) T {
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notify()
	return item
}

// Replace swaps the entire contents for items.
func (l *ObservableList[T]) Replace(items []T) {
	l.items = make([]T, len(items))
	copy(l.items, items)
	l.notify()
}

// Clear empties the list.
func (l *ObservableList[T]) Clear() {
	l.items = nil
	l.notify()
}
