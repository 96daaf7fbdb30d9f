// SPDX-License-Identifier: MIT

package user

import "strings"

// ID uniquely identifies a user. It is a distinct type over int64 so user
// identifiers cannot be accidentally mixed with other integer-typed fields;
// it carries no behavior beyond construction and equality.
type ID int64

// User represents a user in the system.
//
// All fields are unexported and set once by New; the value is immutable
// thereafter. There is deliberately NO validation: empty names and
// malformed email addresses are accepted, matching the permissive contract
// of the record (constraints belong to the callers that need them).
type User struct {
	id        ID     // unique identifier
	firstName string // user's first name
	lastName  string // user's last name
	email     string // user's email address
}

// New constructs a User with every field set once. Never fails: no field
// validation is performed (see the type comment).
func New(id ID, firstName, lastName, email string) User {
	return User{id: id, firstName: firstName, lastName: lastName, email: email}
}

// ID returns the user's identifier.
func (u User) ID() ID { return u.id }

// FirstName returns the user's first name.
func (u User) FirstName() string { return u.firstName }

// LastName returns the user's last name.
func (u User) LastName() string { return u.lastName }

// Email returns the user's email address.
func (u User) Email() string { return u.email }

// FullName combines the first and last name into a single string, with any
// leading/trailing whitespace of the combined result removed (so an empty
// first or last name does not leave a stray space).
func (u User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}
