// Package db carries the postgres schema applied at startup.
package db

import _ "embed"

//go:embed migrations/001_init.sql
var Schema string
