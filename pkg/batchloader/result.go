package batchloader

type resultState uint8

const (
	stateUnresolved resultState = iota
	stateResolved
	stateAbsent
)

// Result is a cache entry: either a resolved value or a confirmed miss. The zero
// Result means the id has not been resolved.
type Result struct {
	state resultState
	value any
}

func Resolved(value any) Result {
	return Result{state: stateResolved, value: value}
}

func Absent() Result {
	return Result{state: stateAbsent}
}

// Value returns the resolved value. ok is false for misses and unresolved entries.
func (r Result) Value() (value any, ok bool) {
	if r.state != stateResolved {
		return nil, false
	}
	return r.value, true
}

func (r Result) IsResolved() bool {
	return r.state != stateUnresolved
}

func (r Result) IsAbsent() bool {
	return r.state == stateAbsent
}
