// Package mocks holds mocks of the esconfig service client built on
// https://godoc.org/github.com/stretchr/testify/mock.
package mocks
