package parser

type resultState int

const (
	stateUnmatched resultState = iota
	stateMatched
	stateErrored
)

// Result is the outcome of trying to recognize a construct. Unmatched is
// recoverable and lets the caller try the next interpretation; Errored
// carries a fatal error and survives every combinator.
type Result[V any] struct {
	state resultState
	value V
	err   error
}

func Matched[V any](v V) Result[V] {
	return Result[V]{state: stateMatched, value: v}
}

func Unmatched[V any]() Result[V] {
	return Result[V]{state: stateUnmatched}
}

func Errored[V any](err error) Result[V] {
	return Result[V]{state: stateErrored, err: err}
}

func (r Result[V]) IsMatched() bool { return r.state == stateMatched }
func (r Result[V]) IsUnmatched() bool { return r.state == stateUnmatched }
func (r Result[V]) IsErrored() bool { return r.state == stateErrored }

// Value returns the matched value and whether there was one.
func (r Result[V]) Value() (V, bool) {
	return r.value, r.state == stateMatched
}

func (r Result[V]) Err() error {
	return r.err
}

// Unwrap converts the result to the usual Go pair. An unmatched result yields
// the zero value and a nil error.
func (r Result[V]) Unwrap() (V, error) {
	return r.value, r.err
}

// OrElse tries next only when r is unmatched.
func (r Result[V]) OrElse(next func() Result[V]) Result[V] {
	if r.state == stateUnmatched {
		return next()
	}
	return r
}

// OnUnmatched is OrElse for callers that read better with the state name.
func (r Result[V]) OnUnmatched(next func() Result[V]) Result[V] {
	return r.OrElse(next)
}

// OnError runs fn only for an errored result. fn may replace the error or
// turn it into a non-fatal result.
func (r Result[V]) OnError(fn func(error) Result[V]) Result[V] {
	if r.state == stateErrored {
		return fn(r.err)
	}
	return r
}

// Filter turns a matched value that fails pred into Unmatched.
func (r Result[V]) Filter(pred func(V) bool) Result[V] {
	if r.state == stateMatched && !pred(r.value) {
		return Unmatched[V]()
	}
	return r
}

// Map transforms a matched value.
func Map[V, W any](r Result[V], fn func(V) W) Result[W] {
	switch r.state {
	case stateMatched:
		return Matched(fn(r.value))
	case stateErrored:
		return Errored[W](r.err)
	}
	return Unmatched[W]()
}

// FlatMap chains a computation that runs only on success.
func FlatMap[V, W any](r Result[V], fn func(V) Result[W]) Result[W] {
	switch r.state {
	case stateMatched:
		return fn(r.value)
	case stateErrored:
		return Errored[W](r.err)
	}
	return Unmatched[W]()
}

// All evaluates steps in order and collects their values. It stops at the
// first result that is not matched and returns it.
func All[V any](steps ...func() Result[V]) Result[[]V] {
	values := make([]V, 0, len(steps))
	for _, step := range steps {
		r := step()
		switch r.state {
		case stateErrored:
			return Errored[[]V](r.err)
		case stateUnmatched:
			return Unmatched[[]V]()
		}
		values = append(values, r.value)
	}
	return Matched(values)
}
