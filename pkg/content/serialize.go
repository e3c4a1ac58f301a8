package content

import "strings"

// Serialize flattens a body tree into plain text starting at list level 0.
func Serialize(root Node) string {
	return SerializeLevel(root, 0)
}

// SerializeLevel flattens a body tree into plain text with lists starting at
// the given nesting level. The result is trimmed of surrounding whitespace.
// Unknown or misplaced nodes contribute nothing.
func SerializeLevel(root Node, startLevel int) string {
	if startLevel < 0 {
		startLevel = 0
	}
	s := &serializer{}
	s.walk(root, startLevel)
	return strings.TrimSpace(s.buf.String())
}

type serializer struct {
	buf strings.Builder
}

func (s *serializer) walk(n Node, level int) {
	switch n := n.(type) {
	case Text:
		s.buf.WriteString(n.Value)
	case *Text:
		if n != nil {
			s.walk(*n, level)
		}
	case LineBreak:
		s.buf.WriteString(strings.Repeat("\n", n.spacing()))
	case *LineBreak:
		if n != nil {
			s.walk(*n, level)
		}
	case IndentBlock:
		s.buf.WriteString(strings.Repeat(" ", n.spacing()))
		for _, c := range n.Children {
			s.walk(c, level)
		}
	case *IndentBlock:
		if n != nil {
			s.walk(*n, level)
		}
	case ListBlock:
		s.list(n, level)
	case *ListBlock:
		if n != nil {
			s.list(*n, level)
		}
	case Root:
		for _, c := range n.Children {
			s.walk(c, level)
		}
	case *Root:
		if n != nil {
			s.walk(*n, level)
		}
	}
	// A ListItem outside a ListBlock is misplaced and dropped.
}

func (s *serializer) list(l ListBlock, level int) {
	if s.buf.Len() > 0 && !s.endsWithNewline() {
		s.buf.WriteByte('\n')
	}
	for _, c := range l.Items {
		switch it := c.(type) {
		case ListItem:
			s.item(it, level)
		case *ListItem:
			if it != nil {
				s.item(*it, level)
			}
		}
	}
}

func (s *serializer) item(it ListItem, level int) {
	indent := strings.Repeat(" ", level*DefaultIndentSpacing)
	for _, c := range it.Children {
		switch c := c.(type) {
		case ListBlock:
			s.list(c, level+1)
		case *ListBlock:
			if c != nil {
				s.list(*c, level+1)
			}
		case Text:
			s.bullet(indent, c.Value)
		case *Text:
			if c != nil {
				s.bullet(indent, c.Value)
			}
		}
	}
	if !s.endsWithNewline() {
		s.buf.WriteByte('\n')
	}
}

func (s *serializer) bullet(indent, text string) {
	s.buf.WriteString(indent)
	s.buf.WriteString("- ")
	s.buf.WriteString(text)
}

func (s *serializer) endsWithNewline() bool {
	out := s.buf.String()
	return strings.HasSuffix(out, "\n")
}
