package jsonrivulet

// bitStack is a packed stack of booleans — one per currently open container,
// object=true, array=false — with amortized O(1) push/pop and no allocation
// for the first 63 nesting levels.
//
// Representation follows the sentinel design from original_source's
// bit_stack2.c (the variant spec.md §4.1 recommends over bit_stack.c's
// counter-indexed array): current holds up to 63 live bits plus a leading
// sentinel 1 marking the next free slot. Pushing past bit 62 spills current
// onto array and resets it to the empty sentinel. Go's growable slice
// replaces the original's manual realloc/doubling entirely — there is no
// distinct "out of memory" outcome to report, since append either succeeds
// or the runtime panics, so push and pop here are unconditional.
type bitStack struct {
	current uint64
	array   []uint64
	n       int
}

func (b *bitStack) init() {
	b.current = 1
	b.array = nil
	b.n = 0
}

func (b *bitStack) reset() {
	b.current = 1
	b.array = b.array[:0]
	b.n = 0
}

// push appends a bit, true for an object, false for an array.
func (b *bitStack) push(objectContainer bool) {
	if b.current&0x8000000000000000 != 0 {
		b.array = append(b.array, b.current)
		b.current = 1
	}
	var bit uint64
	if objectContainer {
		bit = 1
	}
	b.current = (b.current << 1) | bit
	b.n++
}

// pop removes the top bit and returns the new top (false once the stack is
// empty, matching the original's documented behavior for that case).
func (b *bitStack) pop() bool {
	b.current >>= 1
	b.n--
	if b.n == 0 {
		return false
	}
	if b.current == 1 {
		if n := len(b.array); n > 0 {
			b.current = b.array[n-1]
			b.array = b.array[:n-1]
		}
	}
	return b.current&1 == 1
}

// count returns the number of live bits, i.e. the current nesting depth.
func (b *bitStack) count() int {
	return b.n
}
