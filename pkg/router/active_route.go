package router

// ActiveRoute is one entry in the live navigation stack: a resolved, indexed
// instantiation of a RouteDefinition. Entries are immutable once created;
// mutation operations remove and append entries, they never edit one in
// place.
type ActiveRoute struct {
	definition *RouteDefinition
	path       string
	index      int
	id         string
	content    any
}

func newActiveRoute(definition *RouteDefinition, path string, index int, id string) *ActiveRoute {
	r := &ActiveRoute{
		definition: definition,
		path:       path,
		index:      index,
		id:         id,
	}
	if definition.factory != nil {
		r.content = definition.factory(r)
	}
	return r
}

// Definition returns the route definition this entry was resolved to.
// The definition is shared with the registry, not owned by the entry.
func (r *ActiveRoute) Definition() *RouteDefinition {
	return r.definition
}

// Path returns the concrete path that was requested, which may differ from
// the definition's pattern.
func (r *ActiveRoute) Path() string {
	return r.path
}

// Index returns the entry's unique index. Indices increase strictly across
// the router's lifetime and remain stable identities after restoration.
func (r *ActiveRoute) Index() int {
	return r.index
}

// ID returns the optional caller-supplied id used for listener matching.
func (r *ActiveRoute) ID() string {
	return r.id
}

// Content returns the UI content built by the definition's page factory.
func (r *ActiveRoute) Content() any {
	return r.content
}

// RestorablePageInformation is the serializable projection of an ActiveRoute.
// Content and middleware are not serialized; they are re-derived by
// re-resolving Path against the registry on restore.
type RestorablePageInformation struct {
	Path  string `json:"path"`
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
}

// RestorableInfo projects the entry into its serializable form.
func (r *ActiveRoute) RestorableInfo() RestorablePageInformation {
	return RestorablePageInformation{
		Path:  r.path,
		Index: r.index,
		ID:    r.id,
	}
}
