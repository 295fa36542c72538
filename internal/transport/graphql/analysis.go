package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// OperationKind is the root type an operation executes against.
type OperationKind string

const (
	OperationQuery        OperationKind = "query"
	OperationMutation     OperationKind = "mutation"
	OperationSubscription OperationKind = "subscription"
	OperationUnknown      OperationKind = "unknown"
)

// Analysis describes the operation a request will run.
type Analysis struct {
	Kind  OperationKind
	Name  string
	Depth int
}

// Analyze parses query and reports the kind and field depth of the operation
// selected by operationName. A document that fails to parse is returned as an
// error; the executor reports the same problem in its own words.
func Analyze(query, operationName string) (Analysis, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return Analysis{Kind: OperationUnknown}, fmt.Errorf("parse query: %w", err)
	}

	op := selectOperation(doc.Operations, operationName)
	if op == nil {
		return Analysis{Kind: OperationUnknown}, nil
	}

	d := depthWalker{fragments: doc.Fragments, active: make(map[string]bool)}
	return Analysis{
		Kind:  OperationKind(op.Operation),
		Name:  op.Name,
		Depth: d.depth(op.SelectionSet),
	}, nil
}

func selectOperation(ops ast.OperationList, name string) *ast.OperationDefinition {
	if name == "" {
		if len(ops) == 1 {
			return ops[0]
		}
		return nil
	}
	for _, op := range ops {
		if op.Name == name {
			return op
		}
	}
	return nil
}

type depthWalker struct {
	fragments ast.FragmentDefinitionList
	// active guards against fragment cycles; the executor rejects them later.
	active map[string]bool
}

// depth returns the longest chain of nested fields in set. Fragments add no
// depth of their own.
func (d *depthWalker) depth(set ast.SelectionSet) int {
	maxDepth := 0
	for _, sel := range set {
		var n int
		switch s := sel.(type) {
		case *ast.Field:
			n = 1 + d.depth(s.SelectionSet)
		case *ast.InlineFragment:
			n = d.depth(s.SelectionSet)
		case *ast.FragmentSpread:
			def := d.fragments.ForName(s.Name)
			if def == nil || d.active[s.Name] {
				continue
			}
			d.active[s.Name] = true
			n = d.depth(def.SelectionSet)
			delete(d.active, s.Name)
		}
		if n > maxDepth {
			maxDepth = n
		}
	}
	return maxDepth
}
