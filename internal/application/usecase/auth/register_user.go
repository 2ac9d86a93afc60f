// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/application/usecase/category"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken string
	User        *entity.User
}

// RegisterUserUseCase handles user registration. Creating the user, seeding
// the default category catalog and issuing the token run as one unit of work:
// a failure in any step leaves no partial user record behind.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	seedDefaults    *category.SeedDefaultCategoriesUseCase
	unitOfWork      adapter.UnitOfWork
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	seedDefaults *category.SeedDefaultCategoriesUseCase,
	unitOfWork adapter.UnitOfWork,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		seedDefaults:    seedDefaults,
		unitOfWork:      unitOfWork,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name is required",
			nil,
		)
	}

	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Name, input.Email, passwordHash)

	var accessToken string
	err = uc.unitOfWork.Do(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if _, err := uc.seedDefaults.Execute(ctx, category.SeedDefaultCategoriesInput{UserID: user.ID}); err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}

		token, err := uc.tokenService.Issue(ctx, user.ID, user.Email)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}
		accessToken = token

		return nil
	})
	if err != nil {
		// The existence check above races with concurrent registrations; the
		// unique index catches the loser, and it must surface the same way.
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, err
	}

	return &RegisterUserOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
