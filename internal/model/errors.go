package model

import "errors"

// ErrInvalid is wrapped by every validation failure of the model.
var ErrInvalid = errors.New("invalid enum model")
