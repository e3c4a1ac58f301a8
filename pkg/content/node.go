package content

const (
	// DefaultIndentSpacing is the number of spaces an IndentBlock emits when
	// built with Indent, and the width of one list nesting level.
	DefaultIndentSpacing = 4
	// DefaultBreakSpacing is the number of newlines a LineBreak emits when its
	// spacing is unset.
	DefaultBreakSpacing = 1
)

// Node is a single element of a message body tree.
//
// The set of node types is closed: Text, LineBreak, IndentBlock, ListBlock,
// ListItem and Root. Nodes carry data only; Serialize owns all rendering.
type Node interface {
	node()
}

// Text is literal text, emitted verbatim.
type Text struct {
	Value string
}

// LineBreak emits Spacing newline characters. A Spacing below 1 means the
// default of one newline.
type LineBreak struct {
	Spacing int
}

// IndentBlock emits Spacing spaces followed by its flattened children.
// The prefix is one-time; it does not change list indentation.
//
// Unlike LineBreak, the zero value has no default: IndentBlock{} emits no
// spaces. Use Indent for the default of four spaces.
type IndentBlock struct {
	Spacing  int
	Children []Node
}

// ListBlock is a bulleted or numbered list. Only ListItem entries are rendered.
type ListBlock struct {
	Ordered bool
	Items   []Node
}

// ListItem is one bullet. Text children become bullet lines and ListBlock
// children become nested lists; anything else is dropped.
type ListItem struct {
	Children []Node
}

// Root is the message body container.
type Root struct {
	Children []Node
}

func (Text) node()        {}
func (LineBreak) node()   {}
func (IndentBlock) node() {}
func (ListBlock) node()   {}
func (ListItem) node()    {}
func (Root) node()        {}

// NewText returns a Text node.
func NewText(s string) Text {
	return Text{Value: s}
}

// Break returns a single line break.
func Break() LineBreak {
	return LineBreak{Spacing: DefaultBreakSpacing}
}

// Breaks returns a line break of n newlines.
func Breaks(n int) LineBreak {
	return LineBreak{Spacing: n}
}

// Indent returns an IndentBlock with the default spacing of four spaces.
func Indent(children ...Node) IndentBlock {
	return IndentBlock{Spacing: DefaultIndentSpacing, Children: children}
}

// IndentBy returns an IndentBlock with an explicit spacing.
func IndentBy(spacing int, children ...Node) IndentBlock {
	return IndentBlock{Spacing: spacing, Children: children}
}

// List returns an unordered list.
func List(items ...Node) ListBlock {
	return ListBlock{Items: items}
}

// OrderedList returns an ordered list. It renders with the same dash bullets
// as an unordered list.
func OrderedList(items ...Node) ListBlock {
	return ListBlock{Ordered: true, Items: items}
}

// Item returns a list item.
func Item(children ...Node) ListItem {
	return ListItem{Children: children}
}

// ItemText is shorthand for an item holding a single line of text.
func ItemText(s string) ListItem {
	return ListItem{Children: []Node{Text{Value: s}}}
}

// NewRoot returns a body container.
func NewRoot(children ...Node) Root {
	return Root{Children: children}
}

func (b LineBreak) spacing() int {
	if b.Spacing < 1 {
		return DefaultBreakSpacing
	}
	return b.Spacing
}

func (b IndentBlock) spacing() int {
	if b.Spacing < 0 {
		return 0
	}
	return b.Spacing
}
