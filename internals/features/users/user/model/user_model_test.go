package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, m any, field string) string {
	t.Helper()
	f, ok := reflect.TypeOf(m).FieldByName(field)
	require.True(t, ok, "field %s", field)
	return f.Tag.Get("gorm")
}

func TestMembershipRowsCascade(t *testing.T) {
	assert.Contains(t, gormTag(t, UserGroupModel{}, "User"), "OnDelete:CASCADE")
	assert.Contains(t, gormTag(t, UserGroupModel{}, "Group"), "OnDelete:CASCADE")
}
