// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/application/usecase/category"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory user repository for use case tests.
type fakeUserRepo struct {
	byEmail   map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return domainerror.ErrEmailAlreadyExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) Issue(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-for-" + email, nil
}

func (f *fakeTokenService) Verify(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

// fakeCategoryRepo records created categories.
type fakeCategoryRepo struct {
	created  []*entity.Category
	batchErr error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCategoryRepo) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.created = append(f.created, categories...)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.created {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *entity.Category) error { return nil }

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// passthroughUnitOfWork runs the function without a real transaction. The
// rollback semantics are covered by the persistence tests.
type passthroughUnitOfWork struct{}

func (passthroughUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newRegisterUseCase(userRepo *fakeUserRepo, categoryRepo *fakeCategoryRepo, tokenService *fakeTokenService) *RegisterUserUseCase {
	seed := category.NewSeedDefaultCategoriesUseCase(categoryRepo)
	return NewRegisterUserUseCase(userRepo, fakePasswordService{}, tokenService, seed, passthroughUnitOfWork{})
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and seeds default categories", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		categoryRepo := &fakeCategoryRepo{}
		uc := newRegisterUseCase(userRepo, categoryRepo, &fakeTokenService{})

		output, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "supersecret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
		if output.User.PasswordHash == "supersecret" {
			t.Error("password must not be stored in plain text")
		}

		if len(categoryRepo.created) != len(entity.DefaultCategories) {
			t.Fatalf("expected %d seeded categories, got %d", len(entity.DefaultCategories), len(categoryRepo.created))
		}
		var expenses, incomes int
		for _, c := range categoryRepo.created {
			if c.UserID != output.User.ID {
				t.Errorf("seeded category %q not owned by the new user", c.Name)
			}
			switch c.Type {
			case entity.CategoryTypeExpense:
				expenses++
			case entity.CategoryTypeIncome:
				incomes++
			}
		}
		if expenses != 8 || incomes != 4 {
			t.Errorf("expected 8 expense and 4 income defaults, got %d and %d", expenses, incomes)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := newRegisterUseCase(userRepo, &fakeCategoryRepo{}, &fakeTokenService{})

		if _, err := uc.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"}); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Other", Email: "alice@example.com", Password: "differentpw"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
			t.Fatalf("expected email-exists error, got %v", err)
		}
	})

	t.Run("maps a duplicate insert to the email-exists error", func(t *testing.T) {
		// The existence check sees no user, but a concurrent registration wins
		// the insert and the repository returns the duplicate sentinel.
		userRepo := newFakeUserRepo()
		userRepo.createErr = domainerror.ErrEmailAlreadyExists
		uc := newRegisterUseCase(userRepo, &fakeCategoryRepo{}, &fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
			t.Fatalf("expected email-exists error, got %v", err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := newRegisterUseCase(newFakeUserRepo(), &fakeCategoryRepo{}, &fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "short"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Fatalf("expected weak-password error, got %v", err)
		}
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		uc := newRegisterUseCase(newFakeUserRepo(), &fakeCategoryRepo{}, &fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "not-an-email", Password: "supersecret"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidEmail {
			t.Fatalf("expected invalid-email error, got %v", err)
		}
	})

	t.Run("fails registration when seeding fails", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		categoryRepo := &fakeCategoryRepo{batchErr: errors.New("insert failed")}
		uc := newRegisterUseCase(userRepo, categoryRepo, &fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
		if err == nil {
			t.Fatal("expected registration to fail when seeding fails")
		}
	})

	t.Run("fails registration when token issuance fails", func(t *testing.T) {
		uc := newRegisterUseCase(newFakeUserRepo(), &fakeCategoryRepo{}, &fakeTokenService{issueErr: errors.New("signer down")})

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"})
		if err == nil {
			t.Fatal("expected registration to fail when token issuance fails")
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*LoginUserUseCase, *fakeUserRepo) {
		t.Helper()
		userRepo := newFakeUserRepo()
		registerUC := newRegisterUseCase(userRepo, &fakeCategoryRepo{}, &fakeTokenService{})
		if _, err := registerUC.Execute(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "supersecret"}); err != nil {
			t.Fatalf("setup registration failed: %v", err)
		}
		return NewLoginUserUseCase(userRepo, fakePasswordService{}, &fakeTokenService{}), userRepo
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		uc, _ := setup(t)

		output, err := uc.Execute(ctx, LoginUserInput{Email: "alice@example.com", Password: "supersecret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
		if output.User.Email != "alice@example.com" {
			t.Errorf("unexpected user: %s", output.User.Email)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		uc, _ := setup(t)

		_, wrongPasswordErr := uc.Execute(ctx, LoginUserInput{Email: "alice@example.com", Password: "wrong"})
		_, unknownEmailErr := uc.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "supersecret"})

		var wrongErr, unknownErr *domainerror.AuthError
		if !errors.As(wrongPasswordErr, &wrongErr) || !errors.As(unknownEmailErr, &unknownErr) {
			t.Fatalf("expected auth errors, got %v and %v", wrongPasswordErr, unknownEmailErr)
		}
		if wrongErr.Code != unknownErr.Code {
			t.Errorf("credential failures must share a code, got %s and %s", wrongErr.Code, unknownErr.Code)
		}
		if wrongErr.Message != unknownErr.Message {
			t.Errorf("credential failures must share a message, got %q and %q", wrongErr.Message, unknownErr.Message)
		}
	})
}
