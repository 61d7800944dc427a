// Package sqlite selects the SQLite driver for the cache backend. The default
// build uses the pure Go modernc.org/sqlite driver; building with
// -tags cgo_sqlite (and CGO enabled) switches to mattn/go-sqlite3.
//
// Use Open instead of sql.Open so the registered driver name matches the
// compiled-in implementation.
package sqlite

import "database/sql"

// DriverName returns the registered SQL driver name for this build.
func DriverName() string {
	return driverName
}

// DriverType identifies the implementation: "purego" or "cgo".
func DriverType() string {
	return driverType
}

// IsCGO reports whether the CGO driver is compiled in.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens a SQLite database with the compiled-in driver.
func Open(dataSourceName string) (*sql.DB, error) {
	return sql.Open(driverName, dataSourceName)
}

// Info describes the driver configuration of this build.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns the driver configuration of this build.
func GetInfo() Info {
	return Info{
		DriverName: DriverName(),
		DriverType: DriverType(),
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}
