// Package mocks holds generated gomock doubles for the internal/core ports.
//
// Regenerate after interface changes with:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=process_repository_mock.go github.com/offertrack/track-ui-api/internal/core ProcessRepository
