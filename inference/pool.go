package inference

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultPoolSize bounds concurrent in-flight inferences when no size is
	// configured.
	DefaultPoolSize = 2
	// DefaultAcquireTimeout is how long a request waits for a free session
	// before giving up.
	DefaultAcquireTimeout = 5 * time.Second
)

var (
	// ErrPoolExhausted is returned when no session frees up within the
	// acquire timeout.
	ErrPoolExhausted = errors.New("no inference session available")
	// ErrPoolClosed is returned when acquiring from a closed pool.
	ErrPoolClosed = errors.New("session pool is closed")
)

// Factory creates one pooled session.
type Factory func() (*Session, error)

// Pool is a fixed-size set of Sessions shared across requests. Sessions carry
// pre-bound tensors and cannot run concurrently, so the pool also bounds the
// number of in-flight inferences.
type Pool struct {
	sessions chan *Session
	size     int
	timeout  time.Duration

	mu     sync.Mutex
	closed bool
}

// NewPool creates size sessions up front via newSession. All sessions are
// created before serving begins and never reloaded.
func NewPool(newSession Factory, size int, acquireTimeout time.Duration) (*Pool, error) {
	if size <= 0 {
		size = DefaultPoolSize
	}
	if acquireTimeout <= 0 {
		acquireTimeout = DefaultAcquireTimeout
	}

	p := &Pool{
		sessions: make(chan *Session, size),
		size:     size,
		timeout:  acquireTimeout,
	}
	for i := 0; i < size; i++ {
		session, err := newSession()
		if err != nil {
			p.Close()
			return nil, errors.Wrapf(err, "create session %d", i)
		}
		p.sessions <- session
	}
	return p, nil
}

// Size returns the fixed number of sessions in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Acquire takes a session out of the pool, waiting up to the acquire timeout
// or until ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrPoolClosed
	}

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case session := <-p.sessions:
		return session, nil
	case <-timer.C:
		return nil, ErrPoolExhausted
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a session to the pool. Sessions released after Close are
// closed instead of re-pooled.
func (p *Pool) Release(session *Session) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		session.Close()
		return
	}
	// The channel is buffered to the pool size, so this send cannot block
	// while the mutex is held.
	p.sessions <- session
}

// WarmUp runs a zeroed inference on every session in the pool.
func (p *Pool) WarmUp() error {
	warmed := make([]*Session, 0, p.size)
	defer func() {
		for _, session := range warmed {
			p.sessions <- session
		}
	}()

	for i := 0; i < p.size; i++ {
		select {
		case session := <-p.sessions:
			if err := session.WarmUp(); err != nil {
				warmed = append(warmed, session)
				return err
			}
			warmed = append(warmed, session)
		default:
			return errors.New("warm up requires an idle pool")
		}
	}
	return nil
}

// Close marks the pool closed and releases every idle session. Sessions
// still checked out are closed when their Release arrives.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	// The channel is never closed; draining by select keeps a concurrent
	// Acquire from ever observing a nil session.
	for {
		select {
		case session := <-p.sessions:
			session.Close()
		default:
			return
		}
	}
}
