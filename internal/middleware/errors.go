package middleware

import "errors"

var errMissingToken = errors.New("token is required")
