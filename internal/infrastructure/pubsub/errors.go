package pubsub

import "errors"

var (
	// ErrMissingTopic ...
	ErrMissingTopic = errors.New("missing topic")
	// ErrUnknownTopic ...
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrInvalidEndpoint ...
	ErrInvalidEndpoint = errors.New("invalid webhook endpoint, must be a valid http(s) URI")
	// ErrMissingHandler ...
	ErrMissingHandler = errors.New("missing handler")
	// ErrSubscriptionNotFound ...
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
