package bfvm

type Interrupt struct {
	Yield bool
}

// InterruptYield is yielded after every backward jump, giving the caller a
// chance to stop programs that never halt.
var InterruptYield = &Interrupt{
	Yield: true,
}
