package actorio_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ionrun/actorio"
)

// testingT is the part of *testing.T and *rapid.T that the helpers below
// use, so property tests can call them from inside rapid.Check.
type testingT interface {
	require.TestingT
	Helper()
	Cleanup(func())
}

func newTestRuntime(t testingT, opts ...Option) *Runtime {
	t.Helper()
	rt, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(rt.Shutdown)
	return rt
}

// speakerMsg is the message type for the "Hello speaker" scenario: an
// actor that either prints s as-is (Say) or upper-cased (Yell).
type speakerMsg struct {
	yell bool
	text string
}

func say(s string) speakerMsg  { return speakerMsg{text: s} }
func yell(s string) speakerMsg { return speakerMsg{yell: true, text: s} }

func TestScenario_HelloSpeaker(t *testing.T) {
	var out bytes.Buffer
	rt := newTestRuntime(t, WithStdout(&out))

	speak := func(proc *Process[speakerMsg]) IOValue[error, Unit] {
		return AndThen(Receive[error, speakerMsg](proc.Inbox()), func(m1 speakerMsg) IOValue[error, Unit] {
			return AndThen(printSpeaker[error](m1), func(Unit) IOValue[error, Unit] {
				return AndThen(Receive[error, speakerMsg](proc.Inbox()), func(m2 speakerMsg) IOValue[error, Unit] {
					return printSpeaker[error](m2)
				})
			})
		})
	}

	done := make(chan struct{})
	onExit := HandlerAddress(func(_ *Runtime, _ Result[error, Unit]) { close(done) })

	spawned := Run(rt, Spawn(rt, speak, onExit))
	proc := spawned.Value()

	Run(rt, Send[error](IdentityAddress(proc.Inbox()), say("Hello")))
	Run(rt, Send[error](IdentityAddress(proc.Inbox()), yell("World")))
	<-waitOrTimeout(done)

	assert.Equal(t, "Hello\nWORLD\n", out.String())
}

func printSpeaker[E any](m speakerMsg) IOValue[E, Unit] {
	if m.yell {
		return Print[E](strings.ToUpper(m.text))
	}
	return Print[E](m.text)
}

func waitOrTimeout(done <-chan struct{}) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
		close(out)
	}()
	return out
}

// counterMsg is the message type for the "Counter FSM" / "Request/reply
// via call" scenarios.
type counterMsg struct {
	increment bool
	replyTo   Address[int]
}

func incr() counterMsg                         { return counterMsg{increment: true} }
func sendValueTo(addr Address[int]) counterMsg { return counterMsg{replyTo: addr} }

func counterMachine() StateMachine[int, int, counterMsg, error] {
	return StateMachine[int, int, counterMsg, error]{
		Init: func(start int) (int, IOValue[error, Unit]) {
			return start, None[error]()
		},
		Update: func(model int, msg counterMsg) (int, IOValue[error, Unit]) {
			if msg.increment {
				return model + 1, None[error]()
			}
			return model, Send[error](msg.replyTo, model)
		},
	}
}

func TestScenario_CounterFSM(t *testing.T) {
	rt := newTestRuntime(t)

	done := make(chan struct{})
	onExit := HandlerAddress(func(_ *Runtime, _ Result[error, Unit]) { close(done) })

	spawned := Run(rt, SpawnStateMachine(rt, 7, counterMachine(), onExit))
	proc := spawned.Value()
	counterAddr := IdentityAddress(proc.Inbox())

	resultInbox := createTestInbox[int](t, rt)
	me := IdentityAddress(resultInbox)

	Run(rt, Send[error](counterAddr, incr()))
	Run(rt, Send[error](counterAddr, incr()))
	Run(rt, Send[error](counterAddr, sendValueTo(me)))

	got := Run(rt, Receive[error, int](resultInbox))
	require.True(t, got.IsOk())
	assert.Equal(t, 9, got.Value())
}

func createTestInbox[M any](t testingT, rt *Runtime) *Inbox[M] {
	t.Helper()
	r := Run(rt, CreateInbox[error, M](rt))
	require.True(t, r.IsOk())
	return r.Value()
}

func TestScenario_RequestReplyViaCall(t *testing.T) {
	rt := newTestRuntime(t)

	done := make(chan struct{})
	onExit := HandlerAddress(func(_ *Runtime, _ Result[error, Unit]) { close(done) })

	spawned := Run(rt, SpawnStateMachine(rt, 0, counterMachine(), onExit))
	proc := spawned.Value()
	counterAddr := IdentityAddress(proc.Inbox())

	got := Run(rt, Call(rt, counterAddr, sendValueTo))
	require.True(t, got.IsOk())
	assert.Equal(t, 0, got.Value())
}

func TestScenario_AsyncAwait(t *testing.T) {
	rt := newTestRuntime(t)

	start := time.Now()
	futResult := Run(rt, Async(rt, func() IOValue[error, int] {
		return AndThen(Sleep[error](10*time.Millisecond), func(Unit) IOValue[error, int] {
			return Return[error, int](42)
		})
	}))
	require.True(t, futResult.IsOk())
	fut := futResult.Value()

	got := Run(rt, Await(fut))
	elapsed := time.Since(start)

	require.True(t, got.IsOk())
	inner := got.Value()
	require.True(t, inner.IsOk())
	assert.Equal(t, 42, inner.Value())
	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
}

func TestScenario_ConcurrentShortCircuit(t *testing.T) {
	rt := newTestRuntime(t)

	sideEffectInbox := createTestInbox[int](t, rt)
	sideEffectAddr := IdentityAddress(sideEffectInbox)

	ios := []IOValue[string, int]{
		Return[string, int](1),
		Fail[string, int]("x"),
		AndThen(Sleep[string](50*time.Millisecond), func(Unit) IOValue[string, int] {
			return KeepThen(Return[string, int](3), Send[string](sideEffectAddr, 3))
		}),
	}

	got := Run(rt, Concurrent(ios))
	require.True(t, got.IsErr())
	assert.Equal(t, "x", got.Error())

	sideEffect := Run(rt, Receive[string, int](sideEffectInbox))
	require.True(t, sideEffect.IsOk())
	assert.Equal(t, 3, sideEffect.Value())
}

// TestScenario_SpawnAsync checks that SpawnAsync combines inbox creation
// and spawn in one step: the returned address can be sent messages, and
// the returned Future can be awaited for the body's terminal Result.
func TestScenario_SpawnAsync(t *testing.T) {
	rt := newTestRuntime(t)

	counter := func(proc *Process[counterMsg]) IOValue[error, int] {
		return AndThen(Receive[error, counterMsg](proc.Inbox()), func(m counterMsg) IOValue[error, int] {
			if m.increment {
				return Return[error, int](1)
			}
			return Return[error, int](0)
		})
	}

	spawned := Run(rt, SpawnAsync(rt, counter))
	require.True(t, spawned.IsOk())
	handle := spawned.Value()

	Run(rt, Send[error](handle.Address, incr()))
	got := Run(rt, Await(handle.Future))

	require.True(t, got.IsOk())
	inner := got.Value()
	require.True(t, inner.IsOk())
	assert.Equal(t, 1, inner.Value())
}

// TestScenario_Program checks that Program spawns its root under the
// fixed Result<string, Unit> contract, drives it to quiescence, and
// returns its terminal Result to the caller.
func TestScenario_Program(t *testing.T) {
	var out bytes.Buffer

	root := func(proc *Process[speakerMsg]) IOValue[string, Unit] {
		self := IdentityAddress(proc.Inbox())
		return AndThen(Send[string](self, say("Hello")), func(Unit) IOValue[string, Unit] {
			return AndThen(Receive[string, speakerMsg](proc.Inbox()), func(m speakerMsg) IOValue[string, Unit] {
				return printSpeaker[string](m)
			})
		})
	}

	result, err := Program(root, WithStdout(&out))
	require.NoError(t, err)
	assert.True(t, result.IsOk())
	assert.Equal(t, "Hello\n", out.String())
}

func TestScenario_DeadLetterTolerance(t *testing.T) {
	rt := newTestRuntime(t)

	done := make(chan struct{})
	onExit := HandlerAddress(func(_ *Runtime, _ Result[error, Unit]) { close(done) })

	spawned := Run(rt, Spawn(rt, func(_ *Process[Unit]) IOValue[error, Unit] {
		return Return[error, Unit](Unit{})
	}, onExit))
	proc := spawned.Value()
	<-waitOrTimeout(done)

	addr := IdentityAddress(proc.Inbox())
	result := Run(rt, Send[error](addr, Unit{}))
	assert.True(t, result.IsOk())
}
