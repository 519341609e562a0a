package intent

import "errors"

var (
	ErrIntentNotFound  = errors.New("intent not found")
	ErrDuplicateTag    = errors.New("tag already exists")
	ErrTagRequired     = errors.New("tag is required")
	ErrNoResponses     = errors.New("at least one response is required")
	ErrTopicRequired   = errors.New("topic is required")
	ErrDetailsRequired = errors.New("details are required")
)
