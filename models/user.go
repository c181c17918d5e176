// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that owns courses and authenticates with HTTP
// Basic credentials (email address as the username).
//
// Password holds the bcrypt hash and is never serialized. Timestamps kept by
// the database are not part of this model on purpose: no representation
// returned to clients contains them.
type User struct {
	// ID is the database-generated identifier of the account.
	ID int64 `json:"id"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`

	// Password is the one-way hash of the account secret.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// WithoutPassword returns a copy of u with the password hash cleared.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// UserRegistration is the payload accepted by the user-create endpoint.
// Unlike [User] it carries the plaintext password on input.
type UserRegistration struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// ToUser converts the registration payload into a [User] whose Password
// field still holds whatever the client sent.
func (r UserRegistration) ToUser() User {
	return User{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		EmailAddress: r.EmailAddress,
		Password:     r.Password,
	}
}

// IsEmpty reports whether no field of the payload was provided.
func (r UserRegistration) IsEmpty() bool {
	return r == UserRegistration{}
}
