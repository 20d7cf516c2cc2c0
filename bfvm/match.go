package bfvm

// Match builds the jump table of ops. Each loop bracket maps to the index of
// its counterpart, every other instruction maps to -1.
func Match(ops []Op) ([]int, error) {
	jumps := make([]int, len(ops))
	stack := make([]int, 0, 16)
	for i, op := range ops {
		jumps[i] = -1
		switch op {

		case OpLoopOpen:
			stack = append(stack, i)

		case OpLoopClose:
			if len(stack) == 0 {
				return nil, &BracketError{
					Index: i,
					Op:    OpLoopClose,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open

		}
	}

	if len(stack) > 0 {
		// innermost open loop
		return nil, &BracketError{
			Index: stack[len(stack)-1],
			Op:    OpLoopOpen,
		}
	}

	return jumps, nil
}
