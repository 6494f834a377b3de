package router

// registry is the ordered, read-only list of route definitions.
// Resolution is first-match in declaration order: overlapping patterns are
// disambiguated by registration order, never by specificity.
type registry struct {
	definitions  []*RouteDefinition
	notFoundPath string
}

func newRegistry(definitions []*RouteDefinition, notFoundPath string) (*registry, error) {
	if len(definitions) == 0 {
		return nil, &ConfigError{Field: "Routes", Err: ErrNoRoutes}
	}
	g := &registry{
		definitions:  definitions,
		notFoundPath: notFoundPath,
	}
	// The not-found definition is the recovery target for every unresolved
	// path; it must exist before any navigation happens.
	if _, err := g.resolveStrict(notFoundPath); err != nil {
		return nil, &ConfigError{Field: "NotFoundPath", Err: err}
	}
	return g, nil
}

// resolve returns the first definition matching path, falling back to the
// not-found definition. The fallback is guaranteed to exist because the
// constructor resolved it strictly.
func (g *registry) resolve(path string) *RouteDefinition {
	for _, d := range g.definitions {
		if d.Match(path) {
			return d
		}
	}
	notFound, _ := g.resolveStrict(g.notFoundPath)
	return notFound
}

// resolveStrict returns the first definition matching path, or
// ErrNotFoundUnresolvable when nothing matches. Used only for the
// not-found path itself, where absence is a configuration error.
func (g *registry) resolveStrict(path string) (*RouteDefinition, error) {
	for _, d := range g.definitions {
		if d.Match(path) {
			return d, nil
		}
	}
	return nil, ErrNotFoundUnresolvable
}
