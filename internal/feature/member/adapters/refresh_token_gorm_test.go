package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
)

func TestRefreshTokenGorm_FindByAccountEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		email       string
		seed        *entity.RefreshToken
		wantToken   string
		expectedErr error
	}{
		{
			name:      "success: token stored for account",
			email:     "k_a@b.com",
			seed:      &entity.RefreshToken{Token: "refresh-1", AccountEmail: "k_a@b.com"},
			wantToken: "refresh-1",
		},
		{
			name:        "failure: nothing stored",
			email:       "k_none@b.com",
			expectedErr: usecase.ErrRefreshTokenNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewRefreshTokenGorm(setupTestDB(t))
			if tt.seed != nil {
				require.NoError(t, repo.Save(context.Background(), tt.seed))
			}

			found, err := repo.FindByAccountEmail(context.Background(), tt.email)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, found.Token)
			assert.Equal(t, tt.email, found.AccountEmail)
		})
	}
}

func TestRefreshTokenGorm_SaveReplacesExisting(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewRefreshTokenGorm(db)

	require.NoError(t, repo.Save(context.Background(), &entity.RefreshToken{Token: "old", AccountEmail: "k_a@b.com"}))
	require.NoError(t, repo.Save(context.Background(), &entity.RefreshToken{Token: "new", AccountEmail: "k_a@b.com"}))

	var count int64
	db.Model(&RefreshTokenModel{}).Where("account_email = ?", "k_a@b.com").Count(&count)
	assert.Equal(t, int64(1), count, "one refresh token per account")

	found, err := repo.FindByAccountEmail(context.Background(), "k_a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "new", found.Token)
}
