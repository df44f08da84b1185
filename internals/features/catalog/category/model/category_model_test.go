package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcategoriesFollowParentDeletes(t *testing.T) {
	f, ok := reflect.TypeOf(CategoryModel{}).FieldByName("Parent")
	require.True(t, ok)
	assert.Contains(t, f.Tag.Get("gorm"), "OnDelete:CASCADE")
}
