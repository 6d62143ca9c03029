package handler

import "errors"

var (
	errNotAuthorized = errors.New("user is not authorized")
	errNoAccess      = errors.New("no access")
	errUnknownSlice  = errors.New("unknown state slice")
	errLogoutFailed  = errors.New("failed to forget the stored session")
	errInvalidID     = errors.New("invalid ID")
	errNoImage       = errors.New("image is required")
)
