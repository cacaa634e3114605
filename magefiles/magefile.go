//go:build mage

// Package main provides build targets for the databeans project using Mage.
//
// Usage:
//
//	mage build          Compile the beans binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the race detector or cache busting
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install beans to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main
