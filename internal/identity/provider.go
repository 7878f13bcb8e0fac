package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
	"bid-market/internal/repository"
	"bid-market/utils"
)

// Token is the credential handed to a client after a successful login
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

// Provider issues and verifies credentials. The rest of the system only ever
// sees the typed Identity it produces.
type Provider struct {
	db       repository.MarketDB
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewProvider creates a new Provider instance
func NewProvider(db repository.MarketDB, secret string, tokenTTL time.Duration) *Provider {
	return &Provider{
		db:       db,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a user with a bcrypt credential hash
func (p *Provider) Register(username, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, fmt.Errorf("identity: %w - missing username or password", aucerrors.ErrAuthFailure)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("identity: failed to hash password: %w", err)
	}

	user := model.User{
		UserID:       utils.GenerateID(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := p.db.CreateUser(user); err != nil {
		return model.User{}, fmt.Errorf("identity: register %s: %w", username, err)
	}
	return user, nil
}

// Login verifies a username/password pair and issues a signed bearer token
func (p *Provider) Login(username, password string) (Token, error) {
	user, err := p.db.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, aucerrors.ErrUserNotFound) {
			return Token{}, fmt.Errorf("identity: %w", aucerrors.ErrAuthFailure)
		}
		return Token{}, fmt.Errorf("identity: login %s: %w", username, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Token{}, fmt.Errorf("identity: %w", aucerrors.ErrAuthFailure)
	}

	claims := jwt.MapClaims{
		"sub": user.Username,
		"id":  user.UserID,
		"exp": p.now().Add(p.tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return Token{}, fmt.Errorf("identity: failed to sign token: %w", err)
	}

	return Token{
		AccessToken: signed,
		TokenType:   "bearer",
		UserID:      user.UserID,
		Username:    user.Username,
	}, nil
}

// Authenticate maps a credential token to the stable identity of its holder
func (p *Provider) Authenticate(tokenString string) (model.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !token.Valid {
		return model.Identity{}, fmt.Errorf("identity: %w", aucerrors.ErrAuthFailure)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, fmt.Errorf("identity: %w", aucerrors.ErrAuthFailure)
	}
	username, _ := claims["sub"].(string)
	userID, _ := claims["id"].(string)
	if username == "" || userID == "" {
		return model.Identity{}, fmt.Errorf("identity: %w", aucerrors.ErrAuthFailure)
	}

	return model.Identity{UserID: userID, Username: username}, nil
}
