// Package session owns the authenticated-session lifecycle: the token
// store with durable persistence, and the state machine that presentation
// collaborators consult for login, registration, logout and the current
// user profile.
package session

import (
	"context"
	"fmt"

	"github.com/mediapp/client-go/internal/client/repositories/metadata"
)

// Fixed storage keys for the persisted token pair.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Tokens is the current token pair. Empty strings mean absent.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// TokenStore caches the token pair in memory and persists it through the
// metadata repository. Reads are read-through: an empty cache rehydrates
// from storage first, so tokens survive process restarts.
//
// Not safe for concurrent use; callers run on a single goroutine and last
// write wins.
type TokenStore struct {
	repo   metadata.Repository
	tokens Tokens
}

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Set overwrites the in-memory pair and persists it. An empty refresh
// token removes any previously persisted refresh token rather than keeping
// a stale one around.
func (s *TokenStore) Set(ctx context.Context, access, refresh string) error {
	s.tokens = Tokens{AccessToken: access, RefreshToken: refresh}

	if err := s.repo.Set(ctx, accessTokenKey, []byte(access)); err != nil {
		return fmt.Errorf("persisting access token: %w", err)
	}
	if refresh == "" {
		if err := s.repo.Delete(ctx, refreshTokenKey); err != nil {
			return fmt.Errorf("removing refresh token: %w", err)
		}
		return nil
	}
	if err := s.repo.Set(ctx, refreshTokenKey, []byte(refresh)); err != nil {
		return fmt.Errorf("persisting refresh token: %w", err)
	}
	return nil
}

// Get returns the current pair, rehydrating from storage when no access
// token is cached.
func (s *TokenStore) Get(ctx context.Context) (Tokens, error) {
	if s.tokens.AccessToken != "" {
		return s.tokens, nil
	}

	access, err := s.repo.Get(ctx, accessTokenKey)
	if err != nil {
		return Tokens{}, fmt.Errorf("loading access token: %w", err)
	}
	refresh, err := s.repo.Get(ctx, refreshTokenKey)
	if err != nil {
		return Tokens{}, fmt.Errorf("loading refresh token: %w", err)
	}

	s.tokens = Tokens{AccessToken: string(access), RefreshToken: string(refresh)}
	return s.tokens, nil
}

// Clear wipes the pair from memory and storage.
func (s *TokenStore) Clear(ctx context.Context) error {
	s.tokens = Tokens{}
	if err := s.repo.Delete(ctx, accessTokenKey); err != nil {
		return fmt.Errorf("removing access token: %w", err)
	}
	if err := s.repo.Delete(ctx, refreshTokenKey); err != nil {
		return fmt.Errorf("removing refresh token: %w", err)
	}
	return nil
}

// AccessToken satisfies api.TokenSource. Storage errors yield an anonymous
// request rather than failing the call.
func (s *TokenStore) AccessToken(ctx context.Context) string {
	tokens, err := s.Get(ctx)
	if err != nil {
		return ""
	}
	return tokens.AccessToken
}
