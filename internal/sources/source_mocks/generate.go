package source_mocks

//go:generate mockgen -source=../interfaces.go -destination=source_mocks.go -package=source_mocks

// This file contains the go:generate directive to generate mocks for data source interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/sources/source_mocks
