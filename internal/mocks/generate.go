// Package mocks holds the mockery output for the domain and usecase interfaces.
// The interface list lives in .mockery.yaml at the module root.
package mocks

//go:generate mockery --config ../../.mockery.yaml
