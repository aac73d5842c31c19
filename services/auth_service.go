package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUsernameLen = 30

var usernameJunk = regexp.MustCompile(`[^a-z0-9_]+`)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks a username/password pair. It does not reject inactive
// accounts; the login handler reports those separately with a 403.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

// BuildUniqueUsername derives a login handle from the email's local part:
// lowercased, runs of anything outside [a-z0-9_] collapsed to a single
// underscore, capped at 30 chars, suffixed _1, _2, ... on collision. After
// 999 collisions it gives up and takes a random handle.
func (s *AuthService) BuildUniqueUsername(email string) (string, error) {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	base := usernameJunk.ReplaceAllString(strings.ToLower(strings.TrimSpace(local)), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "student"
	}

	candidate := truncate(base, maxUsernameLen)
	for suffix := 1; ; suffix++ {
		taken, err := s.usernameTaken(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if suffix > 999 {
			candidate = "user_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
			taken, err := s.usernameTaken(candidate)
			if err != nil {
				return "", err
			}
			if !taken {
				return candidate, nil
			}
			continue
		}
		trailer := fmt.Sprintf("_%d", suffix)
		keep := maxUsernameLen - len(trailer)
		if keep < 1 {
			keep = 1
		}
		candidate = truncate(base, keep) + trailer
	}
}

// ProvisionStudent creates a fresh student account for a first-time email
// login. Single insert; the caller owns response semantics.
func (s *AuthService) ProvisionStudent(username, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) usernameTaken(username string) (bool, error) {
	var n int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
