package domain

import "context"

// NameSet is a set of unit names.
type NameSet map[string]struct{}

// NewNameSet builds a set from names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. A nil set contains nothing.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// RebuildRequest carries the user's rebuild intent for one invocation.
type RebuildRequest struct {
	RebuildAll    bool
	Forced        NameSet
	SnapshotUnits NameSet
	// Reconfigure names units whose configure step must start from a clean tree.
	Reconfigure   NameSet
	ForceDownload bool
}

// Names returns every unit name referenced by the request.
func (r RebuildRequest) Names() []string {
	var names []string
	for _, s := range []NameSet{r.Forced, r.SnapshotUnits, r.Reconfigure} {
		for n := range s {
			names = append(names, n)
		}
	}
	return names
}

type requestKey struct{}

// ContextWithRequest returns a context carrying req.
func ContextWithRequest(ctx context.Context, req RebuildRequest) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// RequestFromContext returns the run's rebuild request, or an empty one.
func RequestFromContext(ctx context.Context) RebuildRequest {
	req, _ := ctx.Value(requestKey{}).(RebuildRequest)
	return req
}
