package redfa

type nodeType int

const (
	nEmpty  nodeType = iota // matches the empty string
	nChar                   // single literal rune
	nConcat                 // left followed by right
	nUnion                  // left or right
	nStar                   // zero or more of left
)

type astNode struct {
	typ   nodeType
	left  *astNode
	right *astNode

	ch rune // for nChar
}

func charNode(r rune) *astNode { return &astNode{typ: nChar, ch: r} }
