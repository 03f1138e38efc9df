package models

import (
	"context"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mysql error number for "Duplicate entry ... for key"
const MYSQL_DUPLICATE_ENTRY = 1062

var (
	ErrNotFound       = errors.New("contact submission not found")
	ErrDuplicateEmail = errors.New("contact submission with the given email already exists")
)

type ContactSubmission struct {
	BaseModel
	Name        string `json:"name" gorm:"size:25;not null"`
	Email       string `json:"email" gorm:"size:120;not null;unique"`
	PhoneNumber string `json:"phone_number" gorm:"size:10;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// ContactStore persists contact submissions. FindByEmail returns ErrNotFound
// when no record matches, Insert returns an error wrapping ErrDuplicateEmail
// when the email is already taken.
type ContactStore interface {
	FindByEmail(ctx context.Context, email string) (*ContactSubmission, error)
	Insert(ctx context.Context, submission *ContactSubmission) error
}

// Store is the gorm backed ContactStore.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*ContactSubmission, error) {
	submission := ContactSubmission{}

	err := s.db.WithContext(ctx).First(&submission, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, errors.Wrap(err, "find contact submission by email")
	}

	return &submission, nil
}

// Insert creates the record inside a transaction, so a failed commit leaves nothing behind.
func (s *Store) Insert(ctx context.Context, submission *ContactSubmission) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(submission).Error
	})
	if err == nil {
		return nil
	}

	submission.ID = 0
	if isUniqueViolation(err) {
		return errors.Wrapf(ErrDuplicateEmail, "insert contact submission: %v", err)
	}

	return errors.Wrap(err, "insert contact submission")
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&ContactSubmission{}).Count(&total).Error
	return total, err
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == MYSQL_DUPLICATE_ENTRY
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
