// Package auth owns the user identity model and the credential verification
// boundary consumed by the session package.
//
// The Authenticator contract is deliberately narrow: a username/password
// pair either maps to a user or it does not. Unknown users and wrong
// passwords are indistinguishable in the return value so that the response
// shape cannot be used for account enumeration.
//
// Two implementations are provided: a Postgres-backed authenticator that
// verifies bcrypt hashes stored alongside the user record, and an in-memory
// authenticator for tests and local development.
package auth
