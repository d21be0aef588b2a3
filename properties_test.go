package actorio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	. "github.com/ionrun/actorio"
)

// TestInboxDeliversFIFO checks that messages queued ahead of any receiver
// are handed back out in the order they were sent (invariant 2's
// "message is in the target inbox's messages" branch, observed end to
// end through Send/Receive).
func TestInboxDeliversFIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		ib := createTestInbox[int](t, rt)
		addr := IdentityAddress(ib)

		n := rapid.IntRange(1, 20).Draw(t, "n")
		sent := make([]int, n)
		for i := 0; i < n; i++ {
			v := rapid.IntRange(-1000, 1000).Draw(t, "value")
			sent[i] = v
			Run(rt, Send[error](addr, v))
		}

		for i := 0; i < n; i++ {
			got := Run(rt, Receive[error, int](ib))
			require.True(t, got.IsOk())
			assert.Equal(t, sent[i], got.Value())
		}
	})
}

// TestAddressTaggerRoundTrip checks spec invariant 4: AddressOf(ib, tag)
// composed with send and then receive yields tag(v).
func TestAddressTaggerRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		ib := createTestInbox[string](t, rt)

		prefix := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "prefix")
		tag := func(v int) string { return prefix + itoa(v) }
		addr := AddressOf(ib, tag)

		v := rapid.IntRange(-1000, 1000).Draw(t, "value")
		Run(rt, Send[error](addr, v))
		got := Run(rt, Receive[error, string](ib))

		require.True(t, got.IsOk())
		assert.Equal(t, tag(v), got.Value())
	})
}

func itoa(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// TestAndThenReturnIdentity checks andThen(f, return(a)) ≡ f(a).
func TestAndThenReturnIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		a := rapid.Int().Draw(t, "a")

		f := func(x int) IOValue[string, int] { return Return[string, int](x * 2) }

		lhs := Run(rt, AndThen(Return[string, int](a), f))
		rhs := Run(rt, f(a))

		assert.Equal(t, rhs, lhs)
	})
}

// TestAndThenReturnLeftIdentity checks andThen(return, io) ≡ io.
func TestAndThenReturnLeftIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		a := rapid.Int().Draw(t, "a")
		io := Return[string, int](a)

		lhs := Run(rt, AndThen(io, func(x int) IOValue[string, int] { return Return[string, int](x) }))
		rhs := Run(rt, io)

		assert.Equal(t, rhs, lhs)
	})
}

// TestRecoverReturnIdentity checks recover(_, return(a)) ≡ return(a).
func TestRecoverReturnIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		a := rapid.Int().Draw(t, "a")

		lhs := Run(rt, Recover(Return[string, int](a), func(string) IOValue[string, int] {
			return Return[string, int](-1)
		}))
		rhs := Run(rt, Return[string, int](a))

		assert.Equal(t, rhs, lhs)
	})
}

// TestRecoverFailIdentity checks recover(h, fail(e)) ≡ h(e).
func TestRecoverFailIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		e := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "e")
		h := func(s string) IOValue[string, int] { return Return[string, int](len(s)) }

		lhs := Run(rt, Recover(Fail[string, int](e), h))
		rhs := Run(rt, h(e))

		assert.Equal(t, rhs, lhs)
	})
}

// TestMapAndThenIdentity checks map(f, io) ≡ andThen(x -> return(f(x)), io).
func TestMapAndThenIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		a := rapid.Int().Draw(t, "a")
		f := func(x int) int { return x + 1 }

		lhs := Run(rt, Map(Return[string, int](a), f))
		rhs := Run(rt, AndThen(Return[string, int](a), func(x int) IOValue[string, int] {
			return Return[string, int](f(x))
		}))

		assert.Equal(t, rhs, lhs)
	})
}

// TestSequenceOrdering checks that sequence([a,b,c]) runs a, then b, then
// c, with each subsequent step starting only after the previous succeeds.
func TestSequenceOrdering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rt := newTestRuntime(t)
		n := rapid.IntRange(1, 8).Draw(t, "n")

		var order []int
		ios := make([]IOValue[string, int], n)
		for i := 0; i < n; i++ {
			i := i
			ios[i] = ioWithSideEffect(&order, i)
		}

		got := Run(rt, Sequence(ios))
		require.True(t, got.IsOk())

		for i := 0; i < n; i++ {
			assert.Equal(t, i, order[i])
		}
		assert.Equal(t, n, len(got.Value()))
	})
}

func ioWithSideEffect(order *[]int, i int) IOValue[string, int] {
	return Map(Return[string, int](i), func(x int) int {
		*order = append(*order, x)
		return x
	})
}

// TestBatchEmptyYieldsOkUnit checks the empty-list boundary for batch.
func TestBatchEmptyYieldsOkUnit(t *testing.T) {
	rt := newTestRuntime(t)
	got := Run(rt, Batch[string](nil))
	assert.True(t, got.IsOk())
}

// TestSequenceEmptyYieldsOkEmptySlice checks the empty-list boundary for
// sequence.
func TestSequenceEmptyYieldsOkEmptySlice(t *testing.T) {
	rt := newTestRuntime(t)
	got := Run(rt, Sequence[string, int](nil))
	require.True(t, got.IsOk())
	assert.Empty(t, got.Value())
}

// TestConcurrentEmptyYieldsOkEmptySlice checks the empty-list boundary
// for concurrent.
func TestConcurrentEmptyYieldsOkEmptySlice(t *testing.T) {
	rt := newTestRuntime(t)
	got := Run(rt, Concurrent[string, int](nil))
	require.True(t, got.IsOk())
	assert.Empty(t, got.Value())
}
