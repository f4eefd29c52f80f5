package domain

// NodeKind tags the variants of a browse-tree node. The tree is a flat
// tagged-variant type rather than an inheritance hierarchy: rendering
// dispatches on Kind through the small capability methods below.
type NodeKind uint8

const (
	// NodeTenant is the root node for one configured tenant.
	NodeTenant NodeKind = iota
	// NodeFolder groups all resources of one type under a tenant.
	NodeFolder
	// NodeResource is a single remote resource.
	NodeResource
	// NodePagination is the synthetic trailing "load more" element of a
	// partially loaded folder.
	NodePagination
	// NodeMessage is a synthetic informational leaf (e.g. the empty-state
	// marker of a folder with no resources).
	NodeMessage
)

// Node is one element of the browse tree.
type Node struct {
	Kind  NodeKind
	Label string

	// Resource is set only for NodeResource.
	Resource *Resource
	// Folder is set for NodeFolder and identifies the grouped type. It is
	// also set on NodePagination so the UI knows which folder to grow.
	Folder ResourceType
	// ParentRef links synthetic nodes back to their owning folder node.
	ParentRef string
}

// TenantNode returns the root node for a tenant.
func TenantNode(name string) Node {
	return Node{Kind: NodeTenant, Label: name}
}

// FolderNode returns the grouping node for one resource type.
func FolderNode(t ResourceType) Node {
	return Node{Kind: NodeFolder, Label: t.Label() + "s", Folder: t}
}

// ResourceNode wraps a remote resource.
func ResourceNode(r Resource) Node {
	res := r
	return Node{Kind: NodeResource, Label: r.Name, Resource: &res, Folder: r.Type}
}

// PaginationNode returns the continuation marker for a folder.
func PaginationNode(t ResourceType, parentRef string) Node {
	return Node{Kind: NodePagination, Label: "Load more...", Folder: t, ParentRef: parentRef}
}

// MessageNode returns an informational leaf.
func MessageNode(text, parentRef string) Node {
	return Node{Kind: NodeMessage, Label: text, ParentRef: parentRef}
}

// HasChildren reports whether the node can be expanded.
func (n Node) HasChildren() bool {
	return n.Kind == NodeTenant || n.Kind == NodeFolder
}

// Selectable reports whether the node represents something an operation can
// target. Synthetic nodes are display-only.
func (n Node) Selectable() bool {
	return n.Kind == NodeResource || n.Kind == NodePagination
}
