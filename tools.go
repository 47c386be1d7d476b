//go:build tools

package tools

// Code generation used by this module:
//
//   - github.com/matryer/moq writes the *_mock_test.go files in
//     internal/service/* (see the go:generate lines in each service_test.go).
//   - github.com/pressly/goose/v3/cmd/goose is pinned with the tool
//     directive in go.mod: go tool goose -dir migrations postgres "$DATABASE_DSN" status
