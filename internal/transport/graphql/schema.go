package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/heartmarshall/usergraph-backend/internal/transport/graphql/resolver"
)

// NewSchema builds the executable schema backed by r.
func NewSchema(r *resolver.Resolver) (graphql.Schema, error) {
	var userType *graphql.Object
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A person in the social graph.",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type:        graphql.NewNonNull(graphql.String),
					Description: "The id of the user.",
					Resolve:     resolver.UserID,
				},
				"name": &graphql.Field{
					Type:        graphql.String,
					Description: "The name of the user.",
					Resolve:     resolver.UserName,
				},
				"friends": &graphql.Field{
					Type:        graphql.NewList(userType),
					Description: "The friends of the user, or an empty list if they have none.",
					Resolve:     r.Friends,
				},
			}
		}),
	})

	idArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
	nameArg := &graphql.ArgumentConfig{Type: graphql.String}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type:    graphql.String,
				Resolve: r.Hello,
			},
			"user": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.User,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"name": nameArg},
				Resolve: r.CreateUser,
			},
			"deleteUser": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.DeleteUser,
			},
			"updateUser": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"id": idArg, "name": nameArg},
				Resolve: r.UpdateUser,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
