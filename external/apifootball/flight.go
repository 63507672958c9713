package apifootball

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// flightGroup collapses identical concurrent calls. The shared call gets its
// own context, cancelled only once every caller waiting on it has left, so a
// single disconnecting caller does not fail the rest.
type flightGroup struct {
	group singleflight.Group

	mu    sync.Mutex
	calls map[string]*sharedCall
}

type sharedCall struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func (g *flightGroup) Do(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	call := g.join(ctx, key)
	defer g.leave(key, call)

	ch := g.group.DoChan(key, func() (any, error) { return fn(call.ctx) })
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (g *flightGroup) join(ctx context.Context, key string) *sharedCall {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]*sharedCall)
	}
	call, ok := g.calls[key]
	if !ok {
		callCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		call = &sharedCall{ctx: callCtx, cancel: cancel}
		g.calls[key] = call
	}
	call.waiters++
	return call
}

func (g *flightGroup) leave(key string, call *sharedCall) {
	g.mu.Lock()
	defer g.mu.Unlock()

	call.waiters--
	if call.waiters > 0 {
		return
	}
	call.cancel()
	if g.calls[key] == call {
		delete(g.calls, key)
	}
}
