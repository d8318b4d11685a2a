package resources

// Group collects individual elements under a common parent but carries no
// geometry or material of its own.
type Group struct {
	Node
}

func NewGroup(id string) *Group {
	return &Group{Node: NewNode(id)}
}
