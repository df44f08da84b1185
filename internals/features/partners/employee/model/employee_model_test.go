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

func TestEmployeeRowsFollowUserAndPartnerDeletes(t *testing.T) {
	assert.Contains(t, gormTag(t, EmployeeModel{}, "User"), "OnDelete:CASCADE")
	assert.Contains(t, gormTag(t, EmployeeModel{}, "Partner"), "OnDelete:CASCADE")
}

func TestEmployeeJoinRowsCascade(t *testing.T) {
	assert.Contains(t, gormTag(t, EmployeeBranchModel{}, "Employee"), "OnDelete:CASCADE")
	assert.Contains(t, gormTag(t, EmployeeBranchModel{}, "Branch"), "OnDelete:CASCADE")
	assert.Contains(t, gormTag(t, EmployeeCourseModel{}, "Employee"), "OnDelete:CASCADE")
	assert.Contains(t, gormTag(t, EmployeeCourseModel{}, "Course"), "OnDelete:CASCADE")
}
