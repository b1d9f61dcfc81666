package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"user", " Admin ", "root", "user"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())
}

func TestMealRequestStatus_IsValid(t *testing.T) {
	assert.True(t, MealRequestPending.IsValid())
	assert.True(t, MealRequestCancelled.IsValid())
	assert.False(t, MealRequestStatus("lost").IsValid())
}

func TestUser_HasBadge(t *testing.T) {
	empty := ""
	gold := "Gold"

	assert.False(t, (&User{}).HasBadge())
	assert.False(t, (&User{Badge: &empty}).HasBadge())
	assert.True(t, (&User{Badge: &gold}).HasBadge())
}
