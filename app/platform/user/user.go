package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"userblock/app/auth"
	"userblock/app/database"
	"userblock/pkg/utils"
)

var (
	ErrUserExists = errors.New("user exists")
	ErrNotFound   = errors.New("user not found")
)

// Info carries the outcome of a login attempt.
type Info struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserService struct {
	db          *gorm.DB
	tokenSecret string
}

func NewService(db *gorm.DB, tokenSecret string) *UserService {
	return &UserService{db: db, tokenSecret: tokenSecret}
}

// CreateInput is the parameter set for account creation. Anything not
// listed here is system-generated.
type CreateInput struct {
	Username       string
	Firstname      *string
	Lastname       *string
	Email          string
	Phone          *string
	PhoneSecondary *string
	Password       string
	Roles          []string
	Actor          string
}

// Create adds a new account. The email is stored lower-cased and checked
// for an existing account first; the unique index on the email column is
// what actually breaks the tie between concurrent signups.
func (s *UserService) Create(input CreateInput) (*database.User, error) {
	email := strings.ToLower(input.Email)
	if input.Roles == nil {
		input.Roles = []string{}
	}

	var existing database.User
	result := s.db.First(&existing, "email = ?", email)
	if result.Error == nil {
		return nil, fmt.Errorf("user exists for email %s: %w", email, ErrUserExists)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	return s.createNext(input, email)
}

// createNext finalizes creation: username defaults to the email, the salt
// is generated, the password hash and api token are computed, then the
// record is persisted.
func (s *UserService) createNext(input CreateInput, email string) (*database.User, error) {
	username := input.Username
	if username == "" {
		username = email
	}

	salt := utils.GenerateSalt()

	apiToken, err := auth.IssueAPIToken(username, s.tokenSecret)
	if err != nil {
		return nil, err
	}

	user := database.User{
		Username:       username,
		Firstname:      input.Firstname,
		Lastname:       input.Lastname,
		Email:          email,
		Phone:          input.Phone,
		PhoneSecondary: input.PhoneSecondary,
		Salt:           salt,
		PasswordHash:   utils.Hash(input.Password + salt),
		APIToken:       apiToken,
		Roles:          input.Roles,
		Status:         database.StatusActive,
		CreateBy:       input.Actor,
		EditBy:         input.Actor,
	}

	if result := s.db.Create(&user); result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// Login verifies the credentials against the stored hash. An unknown email
// fails silently: nil user, no error, Success false.
func (s *UserService) Login(email, password string) (*database.User, Info, error) {
	email = strings.ToLower(email)

	var user database.User
	result := s.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, Info{Success: false}, nil
		}
		return nil, Info{Success: false}, result.Error
	}

	if utils.VerifyHash(password+user.Salt, user.PasswordHash) {
		return &user, Info{Success: true, Message: email + " passes login"}, nil
	}
	return &user, Info{Success: false, Message: email + " fails login"}, nil
}

func (s *UserService) GetByID(id string) (*database.User, error) {
	var user database.User

	result := s.db.First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*database.User, error) {
	var user database.User

	result := s.db.First(&user, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) FindByUsername(username string) (*database.User, error) {
	var user database.User

	result := s.db.First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// queryFields are the columns a /data/user/get condition may touch.
var queryFields = map[string]bool{
	"id":       true,
	"username": true,
	"email":    true,
	"status":   true,
}

// Query fetches users matching the given condition. Unknown condition
// keys are ignored.
func (s *UserService) Query(condition map[string]any) ([]database.User, error) {
	filtered := map[string]any{}
	for k, v := range condition {
		if queryFields[k] {
			filtered[k] = v
		}
	}

	var users []database.User
	result := s.db.Where(filtered).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// UpdatePassword re-hashes the new password with the user's existing salt.
// The salt is never rotated here.
func (s *UserService) UpdatePassword(id, password, actor string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	result := s.db.Model(user).Updates(map[string]any{
		"password":  utils.Hash(password + user.Salt),
		"edit_by":   actor,
		"edit_date": time.Now(),
	})
	return result.Error
}

// ProfileInput is the editable field set for a profile update. Nil
// pointers leave the stored value untouched.
type ProfileInput struct {
	Username       *string
	Firstname      *string
	Lastname       *string
	Phone          *string
	PhoneSecondary *string
}

func (s *UserService) UpdateProfile(user *database.User, input ProfileInput, actor string) error {
	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
	}
	if input.Firstname != nil {
		user.Firstname = input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = input.Lastname
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.PhoneSecondary != nil {
		user.PhoneSecondary = input.PhoneSecondary
	}
	user.EditBy = actor
	user.EditDate = time.Now()

	result := s.db.Save(user)
	return result.Error
}
