// Package bodyqueue implements the Function Body Queue (spec.md §4.5): once
// the structural pass pipeline has finished, every body-carrying intention
// in the collection is visited and turned into a work item the downstream
// expression passes consume. The collection phase may run across several
// worker goroutines (spec.md §5's "only parallel region" besides parsing);
// the queue's own append path is the one piece of shared state, so it is
// guarded by a single mutex held for the duration of one append — the same
// discipline the teacher's linkedList.go/sendLimiter.go pair uses for a
// shared buffer fed by a bounded pool of concurrent senders.
package bodyqueue

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// ContextBuilder produces the per-item context object for a carrier
// (spec.md §4.5: "context is produced by a caller-supplied delegate"). It
// runs concurrently across workers and must not mutate shared state outside
// of what Queue.Append serializes.
type ContextBuilder func(carrier intention.BodyCarrier) any

// WorkItem is one `{ body, carrier, context }` triple (spec.md §4.5).
type WorkItem struct {
	Body    *swiftast.Stmt
	Carrier intention.BodyCarrier
	Context any
}

// Queue accumulates WorkItems under a mutex held for the duration of one
// append (spec.md §5's shared-resource policy), regardless of how many
// workers are collecting concurrently. The backing store is a FIFO linked
// list rather than a slice, so Append never has to copy or reallocate
// anything already queued by a concurrent worker.
type Queue struct {
	mu    sync.Mutex
	items itemList[WorkItem]
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Append adds item to the queue. Safe for concurrent use.
func (q *Queue) Append(item WorkItem) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Insert(item)
}

// Len reports how many items are currently queued. Safe for concurrent use.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int(q.items.Len())
}

// Drain removes and returns every queued item in insertion order, leaving
// the queue empty. Callers hand the result to the downstream expression
// passes (spec.md §4.5), which run sequentially once collection is
// complete.
func (q *Queue) Drain() []WorkItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Drain()
}

// Collect visits every body-carrying intention in col and appends one
// WorkItem per carrier, building each item's context across maxConcurrency
// worker goroutines bounded by a weighted semaphore (spec.md §5, grounded on
// the teacher's sendLimiter.go use of golang.org/x/sync/semaphore to cap
// concurrent senders onto one shared resource). The enumeration of carriers
// itself is cheap sequential work; only ContextBuilder invocation and the
// resulting append happen in parallel.
func Collect(ctx context.Context, col *intention.Collection, maxConcurrency int64, build ContextBuilder) (*Queue, error) {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	q := NewQueue()
	sem := semaphore.NewWeighted(maxConcurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	schedule := func(carrier intention.BodyCarrier) {
		body := carrier.Body()
		if body == nil {
			return
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			item := WorkItem{Body: body, Carrier: carrier}
			if build != nil {
				item.Context = build(carrier)
			}
			q.Append(item)
		}()
	}

	for _, carrier := range Carriers(col) {
		schedule(carrier)
	}

	wg.Wait()
	return q, firstErr
}

// Carriers enumerates every body-carrying intention across the collection
// in file, then declaration, order: global functions, then each class's
// initializers, methods, and property accessors (getter before setter).
// This walk is sequential and deterministic; only the concurrent step built
// on top of it (Collect) introduces parallelism.
func Carriers(col *intention.Collection) []intention.BodyCarrier {
	var out []intention.BodyCarrier
	add := func(c intention.BodyCarrier) {
		if c.Body() != nil {
			out = append(out, c)
		}
	}
	for _, f := range col.Files {
		for _, gf := range f.GlobalFuncs {
			add(intention.GlobalCarrier(gf))
		}
		for _, c := range f.Classes {
			for _, in := range c.Inits {
				add(intention.InitCarrier(in))
			}
			for _, m := range c.Methods {
				add(intention.MethodCarrier(m))
			}
			for _, p := range c.Props {
				if p.GetterBody != nil {
					out = append(out, intention.PropertyCarrier(p, false))
				}
				if p.SetterBody != nil {
					out = append(out, intention.PropertyCarrier(p, true))
				}
			}
		}
		for _, e := range f.Extensions {
			for _, m := range e.Methods {
				add(intention.MethodCarrier(m))
			}
			for _, p := range e.Props {
				if p.GetterBody != nil {
					out = append(out, intention.PropertyCarrier(p, false))
				}
				if p.SetterBody != nil {
					out = append(out, intention.PropertyCarrier(p, true))
				}
			}
		}
	}
	return out
}
