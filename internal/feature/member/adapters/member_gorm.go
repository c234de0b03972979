// Package adapters provides repository implementations for the member feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// memberGorm is a GORM implementation of the MemberRepository interface.
type memberGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure memberGorm implements MemberRepository.
var _ usecase.MemberRepository = (*memberGorm)(nil)

// NewMemberGorm creates a new instance of memberGorm.
func NewMemberGorm(db *gorm.DB) *memberGorm {
	return &memberGorm{db: db}
}

// Create inserts the member. A duplicate email yields usecase.ErrMemberAlreadyExists.
func (r *memberGorm) Create(ctx context.Context, m *entity.Member) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrMemberAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns usecase.ErrMemberNotFound when no member has the email.
func (r *memberGorm) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	var m entity.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// isDuplicateKey covers both GORM's translated error and a raw pgx error
// (when the connection was opened without TranslateError).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
