package models

import "errors"

var (
	ErrElectionClosed = errors.New("election is closed")
	ErrNoActiveRound  = errors.New("election has no active round")
)
