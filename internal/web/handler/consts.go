package handler

import "errors"

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// IDPath is the single item path of a route group.
	IDPath = "/:id"

	// APIPrefix is the prefix of the public API.
	APIPrefix = "/api"

	// AdminPrefix is the prefix of the token protected API.
	AdminPrefix = "/api/admin"
)

// ErrNilACD is returned by Init if app, cfg or db is nil.
var ErrNilACD = errors.New("app, cfg or db is nil")
