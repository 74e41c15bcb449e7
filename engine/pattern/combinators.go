// Package pattern provides composable matching primitives and
// structural analysis over parsed SQL statements. A Pattern attempts
// to produce a typed output from an input; failure is an uninformative
// no-match signal, never an error. Callers needing diagnostics build
// them outside this layer.
package pattern

// Pattern attempts to produce an Output from an Input. Every pattern
// built here is referentially transparent: same input, same result,
// no side effects.
type Pattern[I, O any] func(I) (O, bool)

// Pair holds the outputs of two patterns that both matched.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option wraps a value that may be absent. Produced by Optional,
// which itself never fails.
type Option[O any] struct {
	Value O
	Set   bool
}

// Map transforms the success value of a pattern.
func Map[I, O, R any](p Pattern[I, O], f func(O) R) Pattern[I, R] {
	return func(in I) (R, bool) {
		out, ok := p(in)
		if !ok {
			var zero R
			return zero, false
		}
		return f(out), true
	}
}

// AndThen sequences two patterns, feeding the first's output into the
// second. It fails as soon as the first fails.
func AndThen[I, M, O any](first Pattern[I, M], second Pattern[M, O]) Pattern[I, O] {
	return func(in I) (O, bool) {
		mid, ok := first(in)
		if !ok {
			var zero O
			return zero, false
		}
		return second(mid)
	}
}

// Or tries each pattern against the same, unconsumed input and
// returns the first success. With no arguments it behaves as Never,
// which makes Never the identity of Or and Or associative.
func Or[I, O any](patterns ...Pattern[I, O]) Pattern[I, O] {
	return func(in I) (O, bool) {
		for _, p := range patterns {
			if out, ok := p(in); ok {
				return out, true
			}
		}
		var zero O
		return zero, false
	}
}

// Optional lifts a pattern into one that always succeeds, recording
// whether the inner pattern matched.
func Optional[I, O any](p Pattern[I, O]) Pattern[I, Option[O]] {
	return func(in I) (Option[O], bool) {
		out, ok := p(in)
		return Option[O]{Value: out, Set: ok}, true
	}
}

// Both requires two patterns to match the same input and pairs their
// outputs.
func Both[I, A, B any](first Pattern[I, A], second Pattern[I, B]) Pattern[I, Pair[A, B]] {
	return func(in I) (Pair[A, B], bool) {
		a, ok := first(in)
		if !ok {
			return Pair[A, B]{}, false
		}
		b, ok := second(in)
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: a, Second: b}, true
	}
}

// Always succeeds with a fixed value, ignoring its input.
func Always[I, O any](value O) Pattern[I, O] {
	return func(I) (O, bool) {
		return value, true
	}
}

// Never fails on every input.
func Never[I, O any]() Pattern[I, O] {
	return func(I) (O, bool) {
		var zero O
		return zero, false
	}
}

// Predicate lifts a boolean test into a pattern whose success carries
// no information beyond "matched".
func Predicate[I any](test func(I) bool) Pattern[I, struct{}] {
	return func(in I) (struct{}, bool) {
		return struct{}{}, test(in)
	}
}

// Extract lifts a partial function into a pattern. The failure case
// drops all information by construction.
func Extract[I, O any](f func(I) (O, bool)) Pattern[I, O] {
	return Pattern[I, O](f)
}

// Guard keeps a pattern's output only when the test also holds on the
// input. Convenience over Both + Map for the common filter shape.
func Guard[I, O any](p Pattern[I, O], test func(I) bool) Pattern[I, O] {
	return func(in I) (O, bool) {
		if !test(in) {
			var zero O
			return zero, false
		}
		return p(in)
	}
}
