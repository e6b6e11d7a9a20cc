// This file implements LRU eviction.

package eviction

import "time"

// lruNode represents ONE key inside the LRU structure. We use a doubly-linked list to track usage order.
type lruNode struct {
	key string

	// accessedAt is the last read or write of key.
	accessedAt time.Time

	// prev points to the node that was used just after this one
	prev *lruNode

	// next points to the node that was used just before this one
	next *lruNode
}

/*
lru keeps keys ordered by last access. Every access moves the key to the head,
so the tail always holds the smallest access timestamp as long as the clock
does not run backwards. Keys that share a timestamp are ordered by which was
touched first, which makes the victim choice deterministic.
*/
type lru struct {
	// nodes maps cache keys to their list nodes for O(1) lookup and moves.
	nodes map[string]*lruNode

	// head points to the MOST recently used key
	head *lruNode

	// tail points to the LEAST recently used key
	tail *lruNode
}

// NewLRU returns an empty least-recently-used policy.
func NewLRU() Policy {
	return &lru{nodes: make(map[string]*lruNode)}
}

func (l *lru) OnGet(k string, at time.Time) {
	if n, ok := l.nodes[k]; ok {
		n.accessedAt = at
		l.moveToFront(n)
	}
}

// OnPut records a write. New keys enter at the front; existing keys are
// refreshed and moved to the front like a read.
func (l *lru) OnPut(k string, at time.Time) {
	if n, ok := l.nodes[k]; ok {
		n.accessedAt = at
		l.moveToFront(n)
		return
	}
	n := &lruNode{key: k, accessedAt: at}
	l.nodes[k] = n
	l.addFront(n)
}

// Victim returns the tail without touching it.
func (l *lru) Victim() (string, bool) {
	if l.tail == nil {
		return "", false
	}
	return l.tail.key, true
}

func (l *lru) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		delete(l.nodes, k)
	}
}

func (l *lru) AccessTime(k string) (time.Time, bool) {
	n, ok := l.nodes[k]
	if !ok {
		return time.Time{}, false
	}
	return n.accessedAt, true
}

func (l *lru) Keys() []string {
	out := make([]string, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func (l *lru) Len() int { return len(l.nodes) }

func (l *lru) Reset() {
	l.nodes = make(map[string]*lruNode)
	l.head = nil
	l.tail = nil
}

// addFront adds a node to the front of the linked list. This marks the node as "most recently used".
func (l *lru) addFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same
	if l.tail == nil {
		l.tail = n
	}
}

// remove unlinks a node and fixes head and tail when needed.
func (l *lru) remove(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

func (l *lru) moveToFront(n *lruNode) {
	if l.head == n {
		return
	}
	l.remove(n)
	l.addFront(n)
}
