package usecases

import (
	"errors"
	"testing"

	"mealprep-server/auth"
	"mealprep-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository. Create runs the same
// BeforeCreate hook gorm would, so ids and defaults behave like production.
type fakeUserRepo struct {
	users []*entities.User
	err   error
}

func (f *fakeUserRepo) Create(user *entities.User) error {
	if f.err != nil {
		return f.err
	}
	_ = user.BeforeCreate(nil)
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func newUserUseCase() (*UserUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return NewUserUseCase(repo, auth.NewTokenService("test-secret")), repo
}

func TestRegister_Success(t *testing.T) {
	uc, repo := newUserUseCase()

	result, err := uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "Ada", result.User.Name)
	assert.NotEqual(t, "secret1", result.User.PasswordHash)

	// Profile defaults applied on creation.
	assert.Equal(t, "omnivore", result.User.DietaryPreference)
	assert.Equal(t, "maintenance", result.User.NutritionalGoal)
	assert.Equal(t, "any", result.User.PreferredCuisine)
	assert.Equal(t, entities.StringList{}, result.User.Allergies)

	require.Len(t, repo.users, 1)
}

func TestRegister_CollectsAllFieldErrors(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register(RegisterInput{Name: "  ", Email: "not-an-email", Password: "abc"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)
	assert.Equal(t, "Name is required", verrs[0].Msg)
	assert.Equal(t, "Please include a valid email", verrs[1].Msg)
	assert.Equal(t, "Password must be at least 6 characters", verrs[2].Msg)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(RegisterInput{Name: "Also Ada", Email: "ada@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_DuplicateCheckedAfterFieldValidation(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	// Bad password on an existing email reports the field error, not the
	// duplicate.
	_, err = uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "abc"})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	result, err := uc.Login(LoginInput{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ada", result.User.Name)
}

func TestLogin_WrongPasswordAndUnknownEmailAreIdentical(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPass := uc.Login(LoginInput{Email: "ada@example.com", Password: "wrong-pass"})
	_, unknown := uc.Login(LoginInput{Email: "nobody@example.com", Password: "secret1"})

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestLogin_CollectsFieldErrors(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Login(LoginInput{Email: "bad", Password: ""})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "Please include a valid email", verrs[0].Msg)
	assert.Equal(t, "Password is required", verrs[1].Msg)
}

func TestGetByID_NotFound(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.GetByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegister_StoreFailurePropagates(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("connection reset")}
	uc := NewUserUseCase(repo, auth.NewTokenService("test-secret"))

	_, err := uc.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.Error(t, err)

	var verrs ValidationErrors
	assert.False(t, errors.As(err, &verrs))
	assert.NotErrorIs(t, err, ErrUserExists)
}
