package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/socialecho/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileStore_RoundTripAndWireFormat(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	ps := NewProfileStore(repo)

	p := &Profile{AccessToken: "a", RefreshToken: "r", User: &User{ID: "64f0", Name: "Ann", Email: "ann@example.org", Role: "user"}}
	require.NoError(t, ps.Save(ctx, p))

	raw := repo.data[common.ProfileStorageKey]
	assert.JSONEq(t,
		`{"accessToken":"a","refreshToken":"r","user":{"_id":"64f0","name":"Ann","email":"ann@example.org","role":"user"}}`,
		string(raw))

	got, err := ps.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	require.NoError(t, ps.Delete(ctx))
	got, err = ps.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileStore_PartialRecord(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.data[common.ProfileStorageKey] = []byte(`{"accessToken":"a"}`)

	got, err := NewProfileStore(repo).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.HasTokens())
	assert.Nil(t, got.User)
}

func TestProfileStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.data[common.ProfileStorageKey] = []byte(`{not json`)

	_, err := NewProfileStore(repo).Load(ctx)
	require.ErrorIs(t, err, ErrCorruptProfile)
}

func TestProfileStore_RepoError(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("disk gone")

	_, err := NewProfileStore(repo).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorruptProfile)
}

func TestSealedProfileStore(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	ps, err := NewSealedProfileStore(ctx, repo, []byte("secret"))
	require.NoError(t, err)
	salt := repo.data[common.ProfileSaltStorageKey]
	require.NotEmpty(t, salt)

	p := &Profile{AccessToken: "a", RefreshToken: "r"}
	require.NoError(t, ps.Save(ctx, p))
	assert.NotContains(t, string(repo.data[common.ProfileStorageKey]), "accessToken")

	// a second store over the same database reuses the salt
	again, err := NewSealedProfileStore(ctx, repo, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, salt, repo.data[common.ProfileSaltStorageKey])

	got, err := again.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	wrong, err := NewSealedProfileStore(ctx, repo, []byte("other"))
	require.NoError(t, err)
	_, err = wrong.Load(ctx)
	require.ErrorIs(t, err, ErrCorruptProfile)
}

func TestProfile_HasTokens(t *testing.T) {
	var nilProfile *Profile
	assert.False(t, nilProfile.HasTokens())
	assert.False(t, (&Profile{RefreshToken: "r"}).HasTokens())
	assert.True(t, (&Profile{AccessToken: "a", RefreshToken: "r"}).HasTokens())
}
