// Package errors defines the closed failure taxonomy shared by HTTP
// services: a tagged application error type with one constructor per
// variant, and the field-level validation aggregate carried by validation
// failures. The problem package maps these values onto RFC 7807 responses.
package errors
