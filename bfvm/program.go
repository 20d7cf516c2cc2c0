package bfvm

// Program is a loaded instruction sequence. It is not modified after Load returns.
type Program struct {
	Name   string
	Ops    []Op
	Jumps  []int // index of the matching bracket for loop instructions, -1 otherwise
	Pos    []Pos
	Source *Source
}

func (p *Program) Len() int {
	return len(p.Ops)
}

// String returns the program with comments stripped.
func (p *Program) String() string {
	buf := make([]byte, len(p.Ops))
	for i, op := range p.Ops {
		buf[i] = op.Symbol()
	}
	return string(buf)
}

func (p *Program) posOf(ip int) Pos {
	if ip >= 0 && ip < len(p.Pos) {
		return p.Pos[ip]
	}
	return Pos{}
}
