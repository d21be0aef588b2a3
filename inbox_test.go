package actorio

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestInboxMessagesWaitersExclusivity drives a real Inbox through a
// random interleaving of deliver/receive calls and checks, after each
// one settles, that its internal message queue and waiter queue are
// never simultaneously non-empty.
func TestInboxMessagesWaitersExclusivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt, err := New()
		require.NoError(t, err)
		t.Cleanup(rt.Shutdown)

		ib := createInbox[int](rt)

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "deliver") {
				ib.deliver(rt, rapid.Int().Draw(t, "value"))
			} else {
				ib.receive(rt, func(int) {})
			}
			rt.sched.run()

			ib.mu.Lock()
			bothNonEmpty := len(ib.messages) > 0 && len(ib.waiters) > 0
			ib.mu.Unlock()
			if bothNonEmpty {
				t.Fatalf("inbox has both queued messages and parked waiters simultaneously")
			}
		}
	})
}
