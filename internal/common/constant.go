// Package common contains shared constants and sentinel errors used across
// the socialecho client and admin components.
package common

// ProfileStorageKey is the persistent storage key holding the serialized
// session record ({accessToken, refreshToken, user}).
const ProfileStorageKey = "profile"

// ProfileSaltStorageKey holds the salt used to derive the profile sealing key.
const ProfileSaltStorageKey = "profile_salt"

// RoleModerator is the user role eligible for community moderation.
const RoleModerator = "moderator"
