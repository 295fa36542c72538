// Package user implements the User repository using MongoDB.
package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/usergraph-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

const entity = "user"

// document is the stored shape of a user.
type document struct {
	ID      primitive.ObjectID   `bson:"_id"`
	Name    *string              `bson:"name"`
	Friends []primitive.ObjectID `bson:"friends"`
}

// Repo provides user persistence backed by a MongoDB collection.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new user repository over coll.
func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// GetByID returns the user with the given id, limited to fields.
// An empty fields slice fetches the whole document.
func (r *Repo) GetByID(ctx context.Context, id string, fields []domain.UserField) (*domain.User, error) {
	oid, err := mongodb.ParseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne()
	if p := projection(fields); p != nil {
		opts.SetProjection(p)
	}

	var doc document
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, entity, id)
	}

	return toDomain(doc), nil
}

// GetByIDs returns every user whose id is in ids, limited to fields.
// Ids without a matching document are absent from the result; order follows
// the store's natural order.
func (r *Repo) GetByIDs(ctx context.Context, ids []string, fields []domain.UserField) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	oids, err := mongodb.ParseIDs(ids)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	if p := projection(fields); p != nil {
		opts.SetProjection(p)
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users by ids: %w", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, *toDomain(d))
	}
	return users, nil
}

// Create inserts a new user with the given name and no friends.
func (r *Repo) Create(ctx context.Context, name *string) (*domain.User, error) {
	doc := document{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Friends: []primitive.ObjectID{},
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, entity, doc.ID.Hex())
	}

	return toDomain(doc), nil
}

// UpdateName sets the user's name and returns the updated document limited
// to fields. A nil name stores null.
func (r *Repo) UpdateName(ctx context.Context, id string, name *string, fields []domain.UserField) (*domain.User, error) {
	oid, err := mongodb.ParseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if p := projection(fields); p != nil {
		opts.SetProjection(p)
	}

	var doc document
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": name}}, opts).Decode(&doc)
	if err != nil {
		return nil, mongodb.MapError(err, entity, id)
	}

	return toDomain(doc), nil
}

// Delete removes the user and returns the removed document limited to fields.
func (r *Repo) Delete(ctx context.Context, id string, fields []domain.UserField) (*domain.User, error) {
	oid, err := mongodb.ParseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndDelete()
	if p := projection(fields); p != nil {
		opts.SetProjection(p)
	}

	var doc document
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, entity, id)
	}

	return toDomain(doc), nil
}

// SetFriends replaces the user's friend references. Referenced ids are not
// checked for existence.
func (r *Repo) SetFriends(ctx context.Context, id string, friendIDs []string) error {
	oid, err := mongodb.ParseID(id)
	if err != nil {
		return err
	}

	friends, err := mongodb.ParseIDs(friendIDs)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"friends": friends}})
	if err != nil {
		return mongodb.MapError(err, entity, id)
	}
	if res.MatchedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, entity, id)
	}

	return nil
}

// projection translates requested fields into a MongoDB projection document.
// It returns nil when fields is empty so the whole document is fetched.
func projection(fields []domain.UserField) bson.D {
	if len(fields) == 0 {
		return nil
	}

	p := make(bson.D, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		key := storedKey(f)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		p = append(p, bson.E{Key: key, Value: 1})
	}

	if len(p) == 0 {
		return nil
	}
	return p
}

func storedKey(f domain.UserField) string {
	switch f {
	case domain.UserFieldID:
		return "_id"
	case domain.UserFieldName:
		return "name"
	case domain.UserFieldFriends:
		return "friends"
	default:
		return ""
	}
}

func toDomain(d document) *domain.User {
	u := &domain.User{
		ID:   d.ID.Hex(),
		Name: d.Name,
	}
	if d.Friends != nil {
		u.FriendIDs = make([]string, 0, len(d.Friends))
		for _, f := range d.Friends {
			u.FriendIDs = append(u.FriendIDs, f.Hex())
		}
	}
	return u
}
