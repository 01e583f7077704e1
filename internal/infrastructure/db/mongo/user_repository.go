package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffhub/employee-system/internal/core/domain"
	"github.com/staffhub/employee-system/internal/core/ports"
)

const (
	usersCollection    = "users"
	rolesCollection    = "roles"
	countersCollection = "counters"
)

// MongoUserRepository is the credential store: durable User and Role records.
// User ids are int64, allocated from a counters document, since the token
// claims carry integer ids.
type MongoUserRepository struct {
	users    *mongo.Collection
	roles    *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users:    db.Collection(usersCollection),
		roles:    db.Collection(rolesCollection),
		counters: db.Collection(countersCollection),
	}
}

type mongoUser struct {
	ID           int64  `bson:"_id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	Name         string `bson:"name,omitempty"`
	Email        string `bson:"email,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

type mongoRole struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

// EnsureIndexes creates the unique username index. Username collisions then
// surface as duplicate-key errors regardless of request interleaving.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

// SeedRoles inserts the manager and employee roles if they are not present.
func (r *MongoUserRepository) SeedRoles(ctx context.Context) error {
	seed := []mongoRole{
		{ID: 1, Name: domain.RoleManager},
		{ID: 2, Name: domain.RoleEmployee},
	}
	for _, role := range seed {
		filter := bson.M{"_id": role.ID}
		update := bson.M{"$setOnInsert": bson.M{"name": role.Name}}
		if _, err := r.roles.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}

// nextID atomically increments and returns the user id sequence.
func (r *MongoUserRepository) nextID(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": usersCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}
	return out.Seq, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoUser{
		ID:           id,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Name:         user.Name,
		Email:        user.Email,
		CreatedAt:    now.Unix(),
		UpdatedAt:    now.Unix(),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) Update(ctx context.Context, id int64, patch ports.UserUpdate) (*domain.User, error) {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}

	var mu mongoUser
	err := r.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.roles.FindOne(ctx, bson.M{"name": name}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvalidRole
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: mr.ID, Name: mr.Name}, nil
}

func (r *MongoUserRepository) ListByRole(ctx context.Context, roleName string) ([]*domain.User, error) {
	cur, err := r.users.Find(ctx, bson.M{"role": roleName},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		Name:         mu.Name,
		Email:        mu.Email,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
