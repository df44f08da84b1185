package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonsFollowCourseDeletes(t *testing.T) {
	f, ok := reflect.TypeOf(LessonModel{}).FieldByName("Course")
	require.True(t, ok)
	assert.Contains(t, f.Tag.Get("gorm"), "OnDelete:CASCADE")
}
