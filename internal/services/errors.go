package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a referenced user, block, board or connection does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyConnected is returned by ConnectBlock when the pair already exists
	ErrAlreadyConnected = errors.New("already connected")
	// ErrInvalidInput wraps validation failures
	ErrInvalidInput = errors.New("invalid input")
)

// silent returns a session that does not log its statements
func silent(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// notFound maps gorm's missing-record error onto ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
