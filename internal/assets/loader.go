// Package assets loads brick meshes off the frame loop. Each load returns a Request that
// moves from Pending to Ready or Failed; finished requests are also delivered on the
// loader's completion channel so the frame loop handles success and failure in one place.
package assets

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// State is the lifecycle of a load request.
type State int32

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "pending"
}

// Request is one asynchronous load.
type Request struct {
	ID   uint64
	Path string

	state atomic.Int32
	done  chan struct{}
	geom  *Geometry
	err   error
}

// State returns the current state.
func (r *Request) State() State {
	return State(r.state.Load())
}

// Done is closed when the request leaves Pending.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Result returns the geometry or the failure. It must only be called after Done is closed.
func (r *Request) Result() (*Geometry, error) {
	return r.geom, r.err
}

// Wait blocks until the request finishes or ctx ends.
func (r *Request) Wait(ctx context.Context) (*Geometry, error) {
	select {
	case <-r.done:
		return r.geom, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Request) finish(g *Geometry, err error) {
	r.geom, r.err = g, err
	if err != nil {
		r.state.Store(int32(Failed))
	} else {
		r.state.Store(int32(Ready))
	}
	close(r.done)
}

// DefaultConcurrency bounds how many files are parsed at once.
const DefaultConcurrency = 4

const completedBuffer = 64

// Loader parses meshes in the background and caches them by path.
type Loader struct {
	parse     Parser
	sem       *semaphore.Weighted
	flight    singleflight.Group
	completed chan *Request
	nextID    atomic.Uint64

	mu    sync.Mutex
	cache map[string]*Geometry
}

// NewLoader returns a loader using parse with at most concurrency parses in flight.
// A nil parse uses ParseSTL.
func NewLoader(parse Parser, concurrency int64) *Loader {
	if parse == nil {
		parse = ParseSTL
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Loader{
		parse:     parse,
		sem:       semaphore.NewWeighted(concurrency),
		completed: make(chan *Request, completedBuffer),
		cache:     make(map[string]*Geometry),
	}
}

// Completed delivers every request once it has finished.
func (l *Loader) Completed() <-chan *Request {
	return l.completed
}

// Load starts loading path. Cancelling ctx fails requests that have not finished yet.
func (l *Loader) Load(ctx context.Context, path string) *Request {
	req := &Request{ID: l.nextID.Add(1), Path: path, done: make(chan struct{})}
	go l.run(ctx, req)
	return req
}

func (l *Loader) run(ctx context.Context, req *Request) {
	g, err := l.get(ctx, req.Path)
	req.finish(g, err)
	select {
	case l.completed <- req:
	case <-ctx.Done():
		// the channel may be full; callers sweep Done requests themselves
		select {
		case l.completed <- req:
		default:
		}
	}
}

func (l *Loader) get(ctx context.Context, path string) (*Geometry, error) {
	l.mu.Lock()
	g, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		return g, nil
	}
	v, err, _ := l.flight.Do(path, func() (any, error) {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		defer l.sem.Release(1)
		g, err := l.parse(path)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[path] = g
		l.mu.Unlock()
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Geometry), nil
}

// Cached returns geometry that has already been loaded.
func (l *Loader) Cached(path string) (*Geometry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	g, ok := l.cache[path]
	return g, ok
}
