package mstore

import (
	"context"

	"github.com/ValentinKolb/stubDB/lib/store"
	"github.com/ValentinKolb/stubDB/lib/store/util"
)

// --------------------------------------------------------------------------
// Interface Methods - Streaming (docu see store/interface.go)
// --------------------------------------------------------------------------

// Both stream variants snapshot the contents at call time. Elements added
// or removed after the call do not affect an in-flight stream.

func (s *storeImpl[ID, E]) Stream(ctx context.Context) <-chan E {
	countOp(store.OpFetch)
	return s.stream(ctx, s.snapshot(), false)
}

func (s *storeImpl[ID, E]) StreamWith(ctx context.Context, req store.FetchRequest[E]) <-chan E {
	countOp(store.OpFetch)
	// the projection itself costs one fetch round-trip, paid before the
	// first element goes out
	return s.stream(ctx, req.Fetch(s.snapshot()), true)
}

// stream feeds the given snapshot into an unbounded buffer, paying one
// fetch delay per element. On cancellation the buffer is aborted so the
// channel closes even if the consumer stopped draining it.
func (s *storeImpl[ID, E]) stream(ctx context.Context, elements []E, projected bool) <-chan E {
	buf := util.NewBuffer[E]()

	go func() {
		if projected {
			if err := s.wait(ctx, store.OpFetch); err != nil {
				buf.Abort()
				return
			}
		}
		for _, e := range elements {
			if err := s.wait(ctx, store.OpFetch); err != nil {
				buf.Abort()
				return
			}
			buf.Push(e)
		}
		buf.Close()
	}()

	return buf.Recv()
}
