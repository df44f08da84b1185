package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedPresentationExt(t *testing.T) {
	assert.True(t, AllowedPresentationExt("deck.pptx"))
	assert.True(t, AllowedPresentationExt("handout.pdf"))
	assert.True(t, AllowedPresentationExt("DECK.PPTX"))

	assert.False(t, AllowedPresentationExt("archive.zip"))
	assert.False(t, AllowedPresentationExt("old-deck.ppt"))
	assert.False(t, AllowedPresentationExt("noext"))
	assert.False(t, AllowedPresentationExt("deck.pptx.exe"))
}

func TestAllowedAdditionalExt(t *testing.T) {
	assert.True(t, AllowedAdditionalExt("materials.zip"))
	assert.True(t, AllowedAdditionalExt("worksheet.pdf"))

	assert.False(t, AllowedAdditionalExt("deck.pptx"))
	assert.False(t, AllowedAdditionalExt("script.sh"))
	assert.False(t, AllowedAdditionalExt(""))
}
