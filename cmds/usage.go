package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists described commands, aliases on the same line.
func (p *Executor) WriteUsage(w io.Writer) {
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range p.commands {
		if cmd.Description == "" {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		// primary name first, aliases after it in definition order
		slices.SortFunc(names[cmd], func(a, b string) int {
			return aliasIndex(cmd, a) - aliasIndex(cmd, b)
		})
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, cmd := range order {
		head := strings.Join(names[cmd], ", ")
		if args := cmd.argNames(); len(args) > 0 {
			head += " " + strings.Join(args, " ")
		}
		fmt.Fprintf(w, "%-28s %s\n", head, cmd.Description)
	}
}

func aliasIndex(cmd *Command, name string) int {
	return slices.Index(cmd.Aliases, name)
}
