package services

import "errors"

var (
	ErrCommunityNotFound = errors.New("community does not exist")
	ErrAlreadyModerator  = errors.New("user is already a moderator of the community")
)
