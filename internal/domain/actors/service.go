package actors

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("actor not found")
	ErrOutOfRange         = errors.New("outstanding turns out of range")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnderage           = errors.New("patient must be at least 18 years old")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const MinPatientAge = 18

// PasswordCost es variable para que los tests usen bcrypt.MinCost.
var PasswordCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Document    string
	DateOfBirth time.Time
	Contact     string
	Role        Role
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Actor, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	document := strings.TrimSpace(in.Document)
	contact := strings.TrimSpace(in.Contact)

	if email == "" || in.Password == "" || name == "" || document == "" || contact == "" || in.DateOfBirth.IsZero() {
		return Actor{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Actor{}, ErrInvalidInput
	}
	if !in.Role.Valid() {
		return Actor{}, ErrInvalidInput
	}

	now := s.now()

	// Edad por diferencia de años (no se mira mes/día).
	if in.Role == RolePatient && now.Year()-in.DateOfBirth.Year() < MinPatientAge {
		return Actor{}, ErrUnderage
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Actor{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Actor{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return Actor{}, err
	}

	a := Actor{
		ID:           string(in.Role) + "-" + uuid.NewString(),
		Role:         in.Role,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Document:     document,
		DateOfBirth:  in.DateOfBirth,
		Contact:      contact,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Actor{}, err
	}
	return a, nil
}

// Authenticate es el login por búsqueda: email + password contra el directorio.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Actor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Actor{}, ErrInvalidInput
	}

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Actor{}, ErrInvalidCredentials
		}
		return Actor{}, err
	}
	if !CheckPassword(a.PasswordHash, password) {
		return Actor{}, ErrInvalidCredentials
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Actor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Actor{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// RoleOf expone el rol de un actor para el middleware (evita que middleware importe este paquete).
func (s *Service) RoleOf(ctx context.Context, actorID string) (string, error) {
	a, err := s.GetByID(ctx, actorID)
	if err != nil {
		return "", err
	}
	return string(a.Role), nil
}
