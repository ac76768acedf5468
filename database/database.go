package database

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Client is the sqlite-backed Store.
type Client struct {
	db *gorm.DB
}

var _ Store = (*Client)(nil)

// New creates a new database connection and performs migrations.
func New(dbpath string) (*Client, error) {
	db, err := gorm.Open(sqlite.Open(path.Join(dbpath, "communityforge.db")), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&Community{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) CreateUser(ctx context.Context, user *User) (*User, error) {
	// The unique index alone would only surface a driver error, so check
	// explicitly to return a typed duplicate error.
	var count int64
	if err := c.db.WithContext(ctx).Model(&User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		log.Error("failed to check username", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	if err := c.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (c *Client) GetUser(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to get user", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

func (c *Client) CreateCommunity(ctx context.Context, community *Community) (*Community, error) {
	if err := c.db.WithContext(ctx).Create(community).Error; err != nil {
		log.Error("failed to create community", "error", err)
		return nil, fmt.Errorf("failed to create community: %w", err)
	}
	return community, nil
}

func (c *Client) GetCommunity(ctx context.Context, id uint) (*Community, error) {
	var community Community
	if err := c.db.WithContext(ctx).First(&community, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to get community", "error", err)
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return &community, nil
}

func (c *Client) ListCommunities(ctx context.Context) ([]Community, error) {
	var communities []Community
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&communities).Error; err != nil {
		log.Error("failed to list communities", "error", err)
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	return communities, nil
}

// Close closes the underlying database connection.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
