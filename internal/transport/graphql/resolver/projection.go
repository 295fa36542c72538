package resolver

import (
	"github.com/graphql-go/graphql/language/ast"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// Projection returns the user fields selected under fieldASTs in request
// order, without duplicates. Inline fragments and named fragment spreads are
// followed; __typename and names that are not stored user fields are skipped.
// An empty result means the caller asked for nothing the store can filter on.
func Projection(fieldASTs []*ast.Field, fragments map[string]ast.Definition) []domain.UserField {
	p := projector{
		fragments: fragments,
		seen:      make(map[domain.UserField]bool),
		expanded:  make(map[string]bool),
	}
	for _, f := range fieldASTs {
		if f != nil {
			p.collect(f.SelectionSet)
		}
	}
	return p.fields
}

type projector struct {
	fragments map[string]ast.Definition
	seen      map[domain.UserField]bool
	expanded  map[string]bool
	fields    []domain.UserField
}

func (p *projector) collect(set *ast.SelectionSet) {
	if set == nil {
		return
	}
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			if s.Name == nil {
				continue
			}
			if f, ok := domain.ParseUserField(s.Name.Value); ok && !p.seen[f] {
				p.seen[f] = true
				p.fields = append(p.fields, f)
			}
		case *ast.InlineFragment:
			p.collect(s.SelectionSet)
		case *ast.FragmentSpread:
			if s.Name == nil || p.expanded[s.Name.Value] {
				continue
			}
			p.expanded[s.Name.Value] = true
			if def, ok := p.fragments[s.Name.Value].(*ast.FragmentDefinition); ok {
				p.collect(def.SelectionSet)
			}
		}
	}
}
