package util

import "sync"

// Signal fans values out to connected callbacks.  Emit may be called from
// any goroutine; callbacks run on the emitting goroutine, in connection order.
type Signal[T any] struct {
	mu    sync.Mutex
	conns []*SignalConnection[T]
}

func NewSignal[T any]() *Signal[T] { return &Signal[T]{} }

func (s *Signal[T]) Connect(f func(T)) *SignalConnection[T] {
	c := &SignalConnection[T]{signal: s, active: true, callback: f}
	s.mu.Lock()
	s.conns = append(s.conns, c)
	s.mu.Unlock()
	return c
}

func (s *Signal[T]) ConnectSingleShot(f func(T)) *SignalConnection[T] {
	var c *SignalConnection[T]
	c = s.Connect(func(x T) {
		c.Disconnect()
		f(x)
	})
	return c
}

func (s *Signal[T]) Emit(x T) {
	s.mu.Lock()
	conns := make([]*SignalConnection[T], 0, len(s.conns))
	for _, c := range s.conns {
		if c.active {
			conns = append(conns, c)
		}
	}
	s.mu.Unlock()
	for _, c := range conns {
		c.callback(x)
	}
}

func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

type SignalConnection[T any] struct {
	signal   *Signal[T]
	active   bool
	callback func(T)
}

func (c *SignalConnection[T]) Disconnect() {
	s := c.signal
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, conn := range s.conns {
		if c == conn {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			return
		}
	}
}

func (c *SignalConnection[T]) Block() {
	c.signal.mu.Lock()
	c.active = false
	c.signal.mu.Unlock()
}

func (c *SignalConnection[T]) Unblock() {
	c.signal.mu.Lock()
	c.active = true
	c.signal.mu.Unlock()
}
