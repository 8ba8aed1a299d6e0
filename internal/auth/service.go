package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

const (
	bcryptCost = 12
	sessionTTL = 7 * 24 * time.Hour
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	passwordHash []byte
}

type session struct {
	userID    int
	expiresAt time.Time
}

// Service provides session-based login. Users and sessions are held in
// memory; this is a thin wrapper, not an account system.
type Service struct {
	mu       sync.Mutex
	users    map[int]*User
	byEmail  map[string]int
	byPhone  map[string]int
	sessions map[string]session
	nextID   int
}

func NewService() *Service {
	return &Service{
		users:    make(map[int]*User),
		byEmail:  make(map[string]int),
		byPhone:  make(map[string]int),
		sessions: make(map[string]session),
		nextID:   1,
	}
}

func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return nil, ErrUserExists
	}
	if phone != "" {
		if _, taken := s.byPhone[phone]; taken {
			return nil, ErrUserExists
		}
	}

	user := &User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		passwordHash: hash,
	}
	s.nextID++
	s.users[user.ID] = user
	s.byEmail[email] = user.ID
	if phone != "" {
		s.byPhone[phone] = user.ID
	}

	return user, nil
}

// Login accepts an email or phone number as identifier and returns a
// session token on success.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, *User, error) {
	s.mu.Lock()
	var id int
	var found bool
	if strings.Contains(identifier, "@") {
		id, found = s.byEmail[identifier]
	} else {
		id, found = s.byPhone[identifier]
	}
	var user *User
	if found {
		user = s.users[id]
	}
	s.mu.Unlock()

	if user == nil {
		// burn a compare anyway so lookup misses cost the same as mismatches
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$invalidinvalidinvalidinvalidinvalidinvalidinvalidinvali"), []byte(password))
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{userID: user.ID, expiresAt: time.Now().Add(sessionTTL)}
	s.mu.Unlock()

	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// UserForToken resolves a session token to its user, expiring stale sessions
// on access.
func (s *Service) UserForToken(ctx context.Context, token string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[token]
	if !exists {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}
	return s.users[sess.userID], nil
}
