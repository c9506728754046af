package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"
	"github.com/Akhilus26/firebased-quickbite/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login and JWT issuance.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterIn struct {
	Email           string
	Password        string
	DisplayName     string
	Phone           string
	UserType        string // student | teacher
	AdmissionNumber string
	TeacherID       string
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:           email,
		Password:        string(hashed),
		DisplayName:     strings.TrimSpace(in.DisplayName),
		Phone:           strings.TrimSpace(in.Phone),
		Role:            "user",
		UserType:        in.UserType,
		AdmissionNumber: strings.TrimSpace(in.AdmissionNumber),
		TeacherID:       strings.TrimSpace(in.TeacherID),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.New("user not found")
	}
	return u, nil
}
