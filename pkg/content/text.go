package content

import "strings"

// ParseText builds a body tree from free text as typed into a form.
//
// Newlines and whitespace-only lines are collected into a single LineBreak
// whose spacing is the number of newlines between two content lines. A line
// starting with tabs becomes an IndentBlock of four spaces per tab holding
// the rest of the line.
func ParseText(s string) Root {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if s == "" {
		return Root{}
	}

	var (
		children []Node
		pending  int
	)
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			pending++
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if pending > 0 {
			children = append(children, Breaks(pending))
			pending = 0
		}
		children = append(children, lineNode(line))
	}
	if pending > 0 {
		children = append(children, Breaks(pending))
	}
	return Root{Children: children}
}

func lineNode(line string) Node {
	tabs := len(line) - len(strings.TrimLeft(line, "\t"))
	if tabs == 0 {
		return Text{Value: line}
	}
	return IndentBy(tabs*DefaultIndentSpacing, Text{Value: line[tabs:]})
}
