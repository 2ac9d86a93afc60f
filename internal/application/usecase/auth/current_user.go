// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// CurrentUserInput represents the input for resolving the current user.
type CurrentUserInput struct {
	PrincipalEmail string
}

// CurrentUserOutput represents the output of current-user resolution.
type CurrentUserOutput struct {
	User *entity.User
}

// CurrentUserUseCase resolves an authenticated principal to the owning user
// record. Every ledger operation starts from this resolution; a principal
// whose user was deleted after token issuance fails here.
type CurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewCurrentUserUseCase creates a new CurrentUserUseCase instance.
func NewCurrentUserUseCase(userRepo adapter.UserRepository) *CurrentUserUseCase {
	return &CurrentUserUseCase{
		userRepo: userRepo,
	}
}

// Execute resolves the principal email to a user.
func (uc *CurrentUserUseCase) Execute(ctx context.Context, input CurrentUserInput) (*CurrentUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.PrincipalEmail)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	return &CurrentUserOutput{User: user}, nil
}
