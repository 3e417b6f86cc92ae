package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedTarget(t *testing.T) {
	assert.True(t, AllowedTarget("feedback", "user_id"))
	assert.True(t, AllowedTarget("content", "uploader_id"))
	assert.False(t, AllowedTarget("users", "user_id"))
	assert.False(t, AllowedTarget("feedback", "id"))
	assert.False(t, AllowedTarget("feedback; DROP TABLE users", "user_id"))
	assert.False(t, AllowedTarget("", ""))
}

func TestDeletionTargetsAreAllAllowListed(t *testing.T) {
	for _, target := range DeletionTargets {
		assert.True(t, AllowedTarget(target.Table, target.Column),
			"deletion target %s.%s must be allow-listed", target.Table, target.Column)
	}
}

func TestDeletionTargetsExcludeUsersTable(t *testing.T) {
	for _, target := range DeletionTargets {
		assert.NotEqual(t, "users", target.Table)
	}
}
