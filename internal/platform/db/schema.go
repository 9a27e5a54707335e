package db

import _ "embed"

// Schema is the DDL of the hospital tables the repositories query. The server
// never applies it; it documents the contract and seeds test databases.
//
//go:embed schema.sql
var Schema string
