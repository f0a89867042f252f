package service

import "errors"

var (
	ErrInternal = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailOrUsernameTaken = errors.New("email or username is already taken")
	ErrUserNotFound = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrPostNotFound = errors.New("post not found")
	ErrTextIsRequired = errors.New("text is required")
	ErrNotPostAuthor = errors.New("only the author can edit the post")
	ErrCannotFollowSelf = errors.New("you cannot follow yourself")
)
