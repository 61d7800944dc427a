//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
// This is used when the cgo_sqlite build tag is set.
//
// Build with: CGO_ENABLED=1 go build -tags cgo_sqlite
package sqlite

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverName    = "sqlite3"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)
