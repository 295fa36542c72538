// Package graphql provides the GraphQL transport layer for the usergraph
// backend. The schema is built code-first with graphql-go; requests are
// analysed with gqlparser before execution so that oversized or misrouted
// operations are rejected without touching the store.
package graphql
