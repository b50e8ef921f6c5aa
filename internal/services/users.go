package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/models"
	"gorm.io/gorm"
)

// UserProfile is the public view of a user with content counts
type UserProfile struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	DisplayName   *string   `json:"displayName"`
	JoinedDate    time.Time `json:"joinedDate"`
	ChannelsCount int64     `json:"channelsCount"`
	BlocksCount   int64     `json:"blocksCount"`
}

// EnsureUser returns the user with username, creating it when missing.
// created reports whether a row was inserted.
func EnsureUser(ctx context.Context, db *gorm.DB, username, displayName string) (user *models.User, created bool, err error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	user = &models.User{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := silent(tx).Where("username = ?", username).First(user).Error
		if err == nil {
			return nil
		}
		if notFound(err) != ErrNotFound {
			return err
		}

		user.Username = username
		if displayName != "" {
			user.DisplayName = &displayName
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", username, err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return user, created, nil
}

// GetUserByUsername finds a user by username
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := silent(db.WithContext(ctx)).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// GetUserProfile returns a user with board and block counts
func GetUserProfile(ctx context.Context, db *gorm.DB, username string) (*UserProfile, error) {
	user, err := GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		JoinedDate:  user.CreatedAt,
	}

	q := silent(db.WithContext(ctx))
	if err := q.Model(&models.Board{}).Where("user_id = ?", user.ID).Count(&profile.ChannelsCount).Error; err != nil {
		return nil, err
	}
	if err := q.Model(&models.Block{}).Where("user_id = ?", user.ID).Count(&profile.BlocksCount).Error; err != nil {
		return nil, err
	}

	return profile, nil
}
