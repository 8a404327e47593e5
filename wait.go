// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"context"
	"sync"
)

// wakeOnDone arranges for every cond to be broadcast once ctx is done.
//
// The broadcast is issued with mu held. A waiter checks ctx.Err() under mu
// before calling Wait, so the broadcast either lands after the waiter is
// parked or the waiter already observed the cancellation.
//
// The returned stop function must be called when the wait is over. It does
// not wait for a running broadcast, so it is safe to call with mu held.
func wakeOnDone(ctx context.Context, mu *sync.Mutex, conds ...*sync.Cond) (stop func() bool) {
	if ctx.Done() == nil {
		return func() bool { return true }
	}
	return context.AfterFunc(ctx, func() {
		mu.Lock()
		for _, c := range conds {
			c.Broadcast()
		}
		mu.Unlock()
	})
}
