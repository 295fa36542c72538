package resolver

import (
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
	"github.com/heartmarshall/usergraph-backend/internal/service/user"
	dl "github.com/heartmarshall/usergraph-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/usergraph-backend/pkg/ctxutil"
)

const greeting = "Hello World"

// Hello is the resolver for the hello field.
func (r *Resolver) Hello(_ graphql.ResolveParams) (interface{}, error) {
	return greeting, nil
}

// User is the resolver for the user field.
func (r *Resolver) User(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	return nullable(r.user.GetUser(p.Context, user.GetUserInput{
		ID:     id,
		Fields: Projection(p.Info.FieldASTs, p.Info.Fragments),
	}))
}

// CreateUser is the resolver for the createUser field.
func (r *Resolver) CreateUser(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorizeMutation(p.Context); err != nil {
		return nil, err
	}

	return nullable(r.user.CreateUser(p.Context, user.CreateUserInput{
		Name: stringArg(p.Args, "name"),
	}))
}

// UpdateUser is the resolver for the updateUser field.
func (r *Resolver) UpdateUser(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorizeMutation(p.Context); err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	name := stringArg(p.Args, "name")

	return nullable(r.user.UpdateUser(p.Context, user.UpdateUserInput{
		ID:        id,
		Name:      name,
		ClearName: name == nil && explicitNull(p, "name"),
		Fields:    Projection(p.Info.FieldASTs, p.Info.Fragments),
	}))
}

// DeleteUser is the resolver for the deleteUser field.
func (r *Resolver) DeleteUser(p graphql.ResolveParams) (interface{}, error) {
	if err := r.authorizeMutation(p.Context); err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)

	return nullable(r.user.DeleteUser(p.Context, user.DeleteUserInput{
		ID:     id,
		Fields: Projection(p.Info.FieldASTs, p.Info.Fragments),
	}))
}

// Friends is the resolver for User.friends. Friends are loaded through the
// per-request dataloader; references to users that no longer exist are
// dropped and the stored order is kept.
func (r *Resolver) Friends(p graphql.ResolveParams) (interface{}, error) {
	u, ok := p.Source.(*domain.User)
	if !ok || len(u.FriendIDs) == 0 {
		return []*domain.User{}, nil
	}

	fields := Projection(p.Info.FieldASTs, p.Info.Fragments)
	thunk := dl.FromContext(p.Context).UsersByID(fields).LoadMany(p.Context, u.FriendIDs)

	return func() (interface{}, error) {
		users, errs := thunk()

		friends := make([]*domain.User, 0, len(users))
		for i, friend := range users {
			if i < len(errs) && errs[i] != nil {
				if errors.Is(errs[i], domain.ErrNotFound) {
					r.log.DebugContext(p.Context, "dangling friend reference",
						slog.String("user_id", u.ID),
						slog.String("friend_id", u.FriendIDs[i]),
					)
					continue
				}
				return nil, errs[i]
			}
			if friend != nil {
				friends = append(friends, friend)
			}
		}
		return friends, nil
	}, nil
}

// UserID resolves User.id.
func UserID(p graphql.ResolveParams) (interface{}, error) {
	u, ok := p.Source.(*domain.User)
	if !ok {
		return nil, nil
	}
	return u.ID, nil
}

// UserName resolves User.name; an unset name is null.
func UserName(p graphql.ResolveParams) (interface{}, error) {
	u, ok := p.Source.(*domain.User)
	if !ok || u.Name == nil {
		return nil, nil
	}
	return *u.Name, nil
}

// stringArg returns the named argument, or nil when it is absent or null.
func stringArg(args map[string]interface{}, name string) *string {
	v, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

// explicitNull reports whether arg was bound to a variable the client sent
// as null. Arguments left out, and variables left unset, are not null.
func explicitNull(p graphql.ResolveParams, arg string) bool {
	if len(p.Info.FieldASTs) == 0 {
		return false
	}
	for _, a := range p.Info.FieldASTs[0].Arguments {
		if a.Name == nil || a.Name.Value != arg {
			continue
		}
		v, ok := a.Value.(*ast.Variable)
		if !ok || v.Name == nil {
			return false
		}
		val, sent := ctxutil.VariablesFromCtx(p.Context)[v.Name.Value]
		return sent && val == nil
	}
	return false
}
