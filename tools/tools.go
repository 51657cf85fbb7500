//go:build tools

package tools

// This file tracks tool dependencies for reproducible builds.
// oapi-codegen regenerates internal/api from api/openapi.yaml (go generate ./internal/api).
// The goose CLI applies internal/adapters/postgres/migrations by hand:
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir internal/adapters/postgres/migrations postgres "$DATABASE_URL" status

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
