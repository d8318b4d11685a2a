package resources

// Object is any resource that can live in the render tree.
type Object interface {
	ResourceID() string
	// AsNode returns the embedded Node, which provides containment.
	AsNode() *Node
}

// Node provides identity and containment for render-tree objects.
// Children are held by reference in registration order; an object is
// attached to at most one parent at a time.
type Node struct {
	id       string
	parent   Object
	children []Object
}

func NewNode(id string) Node {
	return Node{id: id}
}

func (n *Node) ResourceID() string {
	return n.id
}

func (n *Node) AsNode() *Node {
	return n
}

func (n *Node) Parent() Object {
	return n.parent
}

// Children returns the ordered child list. The returned slice is the live
// backing array and must not be mutated by callers.
func (n *Node) Children() []Object {
	return n.children
}

// Attach appends child to parent's ordered child list. Re-attaching to the
// same parent is an identity-deduplicated no-op; a child attached elsewhere
// is reparented.
func Attach(parent, child Object) {
	cn := child.AsNode()
	if cn.parent == parent {
		return
	}
	if cn.parent != nil {
		Detach(child)
	}
	pn := parent.AsNode()
	pn.children = append(pn.children, child)
	cn.parent = parent
}

// Detach removes child from its parent's child list, if it has one.
func Detach(child Object) {
	cn := child.AsNode()
	if cn.parent == nil {
		return
	}
	pn := cn.parent.AsNode()
	for i, c := range pn.children {
		if c == child {
			pn.children = append(pn.children[:i], pn.children[i+1:]...)
			break
		}
	}
	cn.parent = nil
}
