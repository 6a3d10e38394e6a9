package schema

import "errors"

var (
	// ErrDuplicatePanel reports a panel id declared more than once.
	ErrDuplicatePanel = errors.New("schema: duplicate panel")
	// ErrDuplicateKey reports a field key declared twice in one panel.
	ErrDuplicateKey = errors.New("schema: duplicate field key")
)
