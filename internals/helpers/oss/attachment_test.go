package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanFileChange(t *testing.T) {
	t.Run("omitted payload retains stored blob", func(t *testing.T) {
		change, old := PlanFileChange("https://b/a.webp", "", false)
		assert.Equal(t, FileUnchanged, change)
		assert.Empty(t, old)
	})

	t.Run("first upload stores", func(t *testing.T) {
		change, old := PlanFileChange("", "https://b/a.webp", true)
		assert.Equal(t, FileStored, change)
		assert.Empty(t, old)
	})

	t.Run("new upload replaces and schedules old delete", func(t *testing.T) {
		change, old := PlanFileChange("https://b/a.webp", "https://b/b.webp", true)
		assert.Equal(t, FileReplaced, change)
		assert.Equal(t, "https://b/a.webp", old)
	})

	t.Run("re-uploading same url is a no-op", func(t *testing.T) {
		change, old := PlanFileChange("https://b/a.webp", "https://b/a.webp", true)
		assert.Equal(t, FileUnchanged, change)
		assert.Empty(t, old)
	})

	t.Run("no blob and no upload", func(t *testing.T) {
		change, old := PlanFileChange("", "", false)
		assert.Equal(t, FileUnchanged, change)
		assert.Empty(t, old)
	})
}

func TestKeyFromPublicURL(t *testing.T) {
	key, err := KeyFromPublicURL("https://bucket.oss-region.example.com/user_images/a-1b2c3d.webp")
	assert.NoError(t, err)
	assert.Equal(t, "user_images/a-1b2c3d.webp", key)

	_, err = KeyFromPublicURL("https://bucket.oss-region.example.com/")
	assert.Error(t, err)
}
