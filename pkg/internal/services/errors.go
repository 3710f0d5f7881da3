package services

import "errors"

var (
	ErrAccountNotFound      = errors.New("no account matches the given identifier")
	ErrAuthenticationFailed = errors.New("invalid login credentials")
	ErrOptionNotInPoll      = errors.New("this option is not present in the question's option set")
	ErrAlreadyVoted         = errors.New("this voter has already voted on the question")
)
