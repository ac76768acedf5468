package database

import "context"

// Store defines the persistence gateway for users and community submissions.
// It is constructed once at startup and injected into the API server.
type Store interface {
	// CreateUser stores a new user and assigns its ID.
	// Returns ErrDuplicateUsername if the username is already taken.
	CreateUser(ctx context.Context, user *User) (*User, error)
	// GetUser returns the user with the given ID, or ErrNotFound.
	GetUser(ctx context.Context, id uint) (*User, error)
	// GetUserByUsername returns the user with the given username, or ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// CreateCommunity stores a new submission record, assigning its ID and
	// creation timestamp, and returns the stored value.
	CreateCommunity(ctx context.Context, community *Community) (*Community, error)
	// GetCommunity returns the record with the given ID, or ErrNotFound.
	GetCommunity(ctx context.Context, id uint) (*Community, error)
	// ListCommunities returns all records in insertion order (ascending ID).
	ListCommunities(ctx context.Context) ([]Community, error)

	Close() error
}
