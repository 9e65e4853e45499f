package progress

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Task is an asynchronous computation whose completion can be observed.
// Done is closed once Result will return without blocking.
type Task[T any] interface {
	Done() <-chan struct{}
	Result() (T, error)
}

// Starter is implemented by tasks that can be scheduled lazily. Run calls
// Start before animating; Start must be safe to call on a running task.
type Starter interface {
	Start()
}

// Future is a Task backed by a function run on its own goroutine.
type Future[T any] struct {
	fn   func() (T, error)
	once sync.Once
	done chan struct{}

	val T
	err error
}

// NewFuture wraps fn without running it. The function starts on the first
// call to Start or Result.
func NewFuture[T any](fn func() (T, error)) *Future[T] {
	return &Future[T]{
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Go starts fn immediately and returns its Future.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture(fn)
	f.Start()
	return f
}

// GoErr starts a function that produces no value.
func GoErr(fn func() error) *Future[struct{}] {
	return Go(func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Resolved returns an already completed Future.
func Resolved[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: val, err: err}
	f.once.Do(func() {})
	close(f.done)
	return f
}

// PanicError is the error of a Future whose function panicked.
type PanicError struct {
	// Value is what was passed to panic.
	Value any
	// Stack is the goroutine stack at the time of the panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Unwrap returns Value if the task panicked with an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Start runs the function if it has not been started yet.
func (f *Future[T]) Start() {
	f.once.Do(func() {
		go f.run()
	})
}

func (f *Future[T]) run() {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	f.val, f.err = f.fn()
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result waits for the function to finish and returns its outcome.
func (f *Future[T]) Result() (T, error) {
	f.Start()
	<-f.done
	return f.val, f.err
}

func isDone(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
