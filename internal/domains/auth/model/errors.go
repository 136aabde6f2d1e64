package model

import "errors"

const ErrCodeInvalidCredentials = "AUTH001"

var ErrInvalidCredentials = errors.New("invalid email or password")
