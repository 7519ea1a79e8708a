package jsonrivulet

import "testing"

func TestBitStackPushPopWithinSingleWord(t *testing.T) {
	var b bitStack
	b.init()
	if b.count() != 0 {
		t.Fatalf("new stack count = %d, want 0", b.count())
	}
	b.push(true)
	b.push(false)
	b.push(true)
	if b.count() != 3 {
		t.Fatalf("count = %d, want 3", b.count())
	}
	if top := b.pop(); top != false {
		t.Fatalf("pop() = %v, want false (the array bit pushed before it)", top)
	}
	if top := b.pop(); top != true {
		t.Fatalf("pop() = %v, want true", top)
	}
	if b.count() != 1 {
		t.Fatalf("count after two pops = %d, want 1", b.count())
	}
	if top := b.pop(); top != false {
		t.Fatalf("pop() on last bit = %v, want false (stack now empty)", top)
	}
	if b.count() != 0 {
		t.Fatalf("count after draining = %d, want 0", b.count())
	}
}

// TestBitStackSpillsPastSentinelWindow pushes past the 63-bit single-word
// capacity (§4.1: "peak allocator calls during one document is
// ⌈max_depth/63⌉") and checks every bit survives the round trip through the
// spilled array.
func TestBitStackSpillsPastSentinelWindow(t *testing.T) {
	var b bitStack
	b.init()
	const depth = 200
	want := make([]bool, depth)
	for i := range want {
		want[i] = i%3 == 0
		b.push(want[i])
	}
	if b.count() != depth {
		t.Fatalf("count = %d, want %d", b.count(), depth)
	}
	for i := depth - 1; i >= 0; i-- {
		top := b.pop()
		if i > 0 && top != want[i-1] {
			t.Fatalf("pop at depth %d = %v, want %v", i, top, want[i-1])
		}
	}
	if b.count() != 0 {
		t.Fatalf("count after draining 200 pushes = %d, want 0", b.count())
	}
}

func TestBitStackResetReusesArray(t *testing.T) {
	var b bitStack
	b.init()
	for i := 0; i < 200; i++ {
		b.push(i%2 == 0)
	}
	b.reset()
	if b.count() != 0 {
		t.Fatalf("count after reset = %d, want 0", b.count())
	}
	b.push(true)
	if b.count() != 1 {
		t.Fatalf("count after push following reset = %d, want 1", b.count())
	}
}
