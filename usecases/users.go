package usecases

import (
	"regexp"
	"strings"

	"mealprep-server/auth"
	"mealprep-server/entities"
	"mealprep-server/repositories"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserUseCase struct {
	repo   repositories.UserRepository
	tokens *auth.TokenService
}

func NewUserUseCase(repo repositories.UserRepository, tokens *auth.TokenService) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by Register and Login: a fresh token plus the
// authenticated user.
type AuthResult struct {
	Token string
	User  *entities.User
}

// Register validates all fields (collecting every failure), rejects
// duplicate emails, hashes the password and persists the user with profile
// defaults, then issues a token.
func (uc *UserUseCase) Register(in RegisterInput) (*AuthResult, error) {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Msg: "Name is required"})
	}
	if in.Email == "" || !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{Msg: "Please include a valid email"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, FieldError{Msg: "Password must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login checks credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (uc *UserUseCase) Login(in LoginInput) (*AuthResult, error) {
	var errs ValidationErrors
	if in.Email == "" || !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{Msg: "Please include a valid email"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{Msg: "Password is required"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// GetByID loads a user profile.
func (uc *UserUseCase) GetByID(id string) (*entities.User, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
