package parser

import (
	"errors"
	"strconv"
	"testing"
)

func TestResultStates(t *testing.T) {
	m := Matched(1)
	if !m.IsMatched() || m.IsUnmatched() || m.IsErrored() {
		t.Errorf("Matched reports the wrong state")
	}
	u := Unmatched[int]()
	if !u.IsUnmatched() || u.IsMatched() || u.IsErrored() {
		t.Errorf("Unmatched reports the wrong state")
	}
	e := Errored[int](errors.New("boom"))
	if !e.IsErrored() || e.IsMatched() || e.IsUnmatched() {
		t.Errorf("Errored reports the wrong state")
	}
	if _, ok := e.Value(); ok {
		t.Error("Errored has a value")
	}
	if _, err := e.Unwrap(); err == nil || err.Error() != "boom" {
		t.Errorf("Unwrap() error = %v, want boom", err)
	}
}

func TestResultOrElse(t *testing.T) {
	fallback := func() Result[string] { return Matched("fallback") }

	if v, _ := Unmatched[string]().OrElse(fallback).Value(); v != "fallback" {
		t.Errorf("unmatched: got %q, want %q", v, "fallback")
	}
	if v, _ := Matched("first").OrElse(fallback).Value(); v != "first" {
		t.Errorf("matched: got %q, want %q", v, "first")
	}
	if r := Errored[string](errors.New("fatal")).OrElse(fallback); !r.IsErrored() {
		t.Error("errored result was replaced by the fallback")
	}
}

func TestResultOnError(t *testing.T) {
	r := Errored[int](errors.New("fatal")).OnError(func(error) Result[int] {
		return Unmatched[int]()
	})
	if !r.IsUnmatched() {
		t.Error("OnError did not replace the errored result")
	}
	called := false
	Matched(1).OnError(func(error) Result[int] {
		called = true
		return Matched(2)
	})
	if called {
		t.Error("OnError ran for a matched result")
	}
}

func TestResultFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	if !Matched(2).Filter(even).IsMatched() {
		t.Error("Filter rejected a passing value")
	}
	if !Matched(3).Filter(even).IsUnmatched() {
		t.Error("Filter kept a failing value")
	}
}

func TestMapAndFlatMap(t *testing.T) {
	r := Map(Matched(41), func(v int) int { return v + 1 })
	if v, _ := r.Value(); v != 42 {
		t.Errorf("Map: got %d, want 42", v)
	}

	parse := func(s string) Result[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Unmatched[int]()
		}
		return Matched(v)
	}
	if v, _ := FlatMap(Matched("7"), parse).Value(); v != 7 {
		t.Errorf("FlatMap: got %d, want 7", v)
	}
	if !FlatMap(Matched("x"), parse).IsUnmatched() {
		t.Error("FlatMap: expected unmatched")
	}
	if !FlatMap(Errored[string](errors.New("fatal")), parse).IsErrored() {
		t.Error("FlatMap: error was not propagated")
	}
}

func TestAll(t *testing.T) {
	one := func() Result[int] { return Matched(1) }
	two := func() Result[int] { return Matched(2) }
	none := func() Result[int] { return Unmatched[int]() }
	fail := func() Result[int] { return Errored[int](errors.New("fatal")) }

	values, ok := All(one, two).Value()
	if !ok || len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Errorf("got %v, want [1 2]", values)
	}
	if !All(one, none, fail).IsUnmatched() {
		t.Error("All did not stop at the first unmatched step")
	}
	if !All(one, fail, none).IsErrored() {
		t.Error("All did not stop at the first errored step")
	}
}
