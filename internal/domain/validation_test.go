package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	t.Parallel()

	withPassword := func(name string) *User {
		u := &User{Username: name}
		require.NoError(t, u.SetPassword("pw"))
		return u
	}

	tests := []struct {
		name  string
		user  *User
		field string
	}{
		{name: "valid", user: withPassword("abc")},
		{name: "empty username", user: withPassword(""), field: "username"},
		{name: "whitespace username", user: withPassword(" \t\n"), field: "username"},
		{name: "no password", user: &User{Username: "abc"}, field: "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUser(tc.user)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateRecipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recipe Recipe
		field  string
	}{
		{
			name:   "instructions at boundary",
			recipe: Recipe{Title: "Ham", Instructions: strings.Repeat("x", 50), UserID: 1},
		},
		{
			name:   "instructions one short",
			recipe: Recipe{Title: "Ham", Instructions: strings.Repeat("x", 49), UserID: 1},
			field:  "instructions",
		},
		{
			name:   "multibyte instructions counted as characters",
			recipe: Recipe{Title: "Ham", Instructions: strings.Repeat("é", 50), UserID: 1},
		},
		{
			name:   "blank title",
			recipe: Recipe{Title: "   ", Instructions: strings.Repeat("x", 60), UserID: 1},
			field:  "title",
		},
		{
			name:   "empty title",
			recipe: Recipe{Instructions: strings.Repeat("x", 60), UserID: 1},
			field:  "title",
		},
		{
			name:   "no owner",
			recipe: Recipe{Title: "Ham", Instructions: strings.Repeat("x", 60)},
			field:  "user_id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRecipe(&tc.recipe)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRecipeResponseEmbedsPublicUser(t *testing.T) {
	t.Parallel()

	minutes := 60
	owner := &User{ID: 7, Username: "ChefHam", ImageURL: "http://img", Bio: "ham"}
	require.NoError(t, owner.SetPassword("secret"))
	r := Recipe{ID: 3, Title: "Delicious Shed Ham", Instructions: "x", MinutesToComplete: &minutes, UserID: 7, User: owner}

	resp := r.Response()
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, 60, *resp.MinutesToComplete)
	assert.Equal(t, PublicUser{ID: 7, Username: "ChefHam", ImageURL: "http://img", Bio: "ham"}, resp.User)
}
