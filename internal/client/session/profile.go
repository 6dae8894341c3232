package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/socialecho/internal/client/storage"
	"github.com/dmitrijs2005/socialecho/internal/common"
	"github.com/dmitrijs2005/socialecho/internal/cryptox"
)

// ErrCorruptProfile is returned by ProfileStore.Load when the stored record
// cannot be opened or decoded.
var ErrCorruptProfile = errors.New("corrupt profile")

// User is the signed-in user's public profile as returned by the API.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Profile is the persisted session record.
type Profile struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// HasTokens reports whether both tokens are present.
func (p *Profile) HasTokens() bool {
	return p != nil && p.AccessToken != "" && p.RefreshToken != ""
}

// ProfileStore reads and writes the Profile under common.ProfileStorageKey.
// When constructed with a sealing key the JSON is encrypted at rest.
type ProfileStore struct {
	repo storage.Repository
	key  []byte
}

func NewProfileStore(repo storage.Repository) *ProfileStore {
	return &ProfileStore{repo: repo}
}

// NewSealedProfileStore derives the sealing key from secret and a per-database
// salt, creating and persisting the salt on first use.
func NewSealedProfileStore(ctx context.Context, repo storage.Repository, secret []byte) (*ProfileStore, error) {
	salt, err := repo.Get(ctx, common.ProfileSaltStorageKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		if err := repo.Set(ctx, common.ProfileSaltStorageKey, salt); err != nil {
			return nil, err
		}
	}
	return &ProfileStore{repo: repo, key: cryptox.DeriveKey(secret, salt)}, nil
}

// Load returns the stored profile, or (nil, nil) when there is none.
func (s *ProfileStore) Load(ctx context.Context) (*Profile, error) {
	raw, err := s.repo.Get(ctx, common.ProfileStorageKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	if s.key != nil {
		raw, err = cryptox.Open(raw, s.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
		}
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
	}
	return &p, nil
}

func (s *ProfileStore) Save(ctx context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if s.key != nil {
		if raw, err = cryptox.Seal(raw, s.key); err != nil {
			return err
		}
	}
	return s.repo.Set(ctx, common.ProfileStorageKey, raw)
}

func (s *ProfileStore) Delete(ctx context.Context) error {
	return s.repo.Delete(ctx, common.ProfileStorageKey)
}
