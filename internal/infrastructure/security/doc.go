// Package security implements password hashing with bcrypt and signed
// admin access tokens with JWT.
package security
