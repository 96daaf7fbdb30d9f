// SPDX-License-Identifier: MIT
// Package user_test contains unit tests for the immutable User record.
package user_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typedlabs/typedstart/user"
)

func TestNew_Getters(t *testing.T) {
	u := user.New(user.ID(1), "Ada", "Lovelace", "ada@example.com")

	require.Equal(t, user.ID(1), u.ID())
	require.Equal(t, "Ada", u.FirstName())
	require.Equal(t, "Lovelace", u.LastName())
	require.Equal(t, "ada@example.com", u.Email())
}

func TestNew_NoValidation(t *testing.T) {
	// Empty names and a malformed email are accepted on purpose; the record
	// is permissive and constraints belong to callers.
	u := user.New(user.ID(0), "", "", "not-an-email")

	require.Equal(t, "", u.FirstName())
	require.Equal(t, "not-an-email", u.Email())
}

func TestFullName(t *testing.T) {
	for _, tc := range []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both names", "Ada", "Lovelace", "Ada Lovelace"},
		{"empty last", "Ada", "", "Ada"},
		{"empty first", "", "Lovelace", "Lovelace"},
		{"both empty", "", "", ""},
		{"outer whitespace trimmed", "Ada", "Lovelace ", "Ada Lovelace"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			u := user.New(user.ID(7), tc.first, tc.last, "x@example.com")
			require.Equal(t, tc.want, u.FullName())
		})
	}
}

func TestID_Equality(t *testing.T) {
	// The newtype carries equality and nothing else.
	a := user.New(user.ID(42), "A", "B", "")
	b := user.New(user.ID(42), "A", "B", "")
	require.Equal(t, a.ID(), b.ID())
	require.NotEqual(t, user.ID(42), user.ID(43))

	// Value semantics: equal fields make equal records.
	require.Equal(t, a, b)
}
