package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeForPackage(t *testing.T) {
	cases := []struct {
		packageName string
		want        Badge
	}{
		{"Silver", BadgeSilver},
		{"Gold", BadgeGold},
		{"Platinum", BadgePlatinum},
		{"Unknown", BadgeBronze},
		{"gold", BadgeBronze}, // exact match only
		{"", BadgeBronze},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BadgeForPackage(tc.packageName), "package %q", tc.packageName)
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: "member"}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())

	var missing *User
	assert.False(t, missing.IsAdmin())
}
