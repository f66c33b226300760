package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCMSTypeName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"discussion", "Discussions"},
		{"event", "Events"},
		{"qa_question", "Q&A"},
		{"discussion-type-id", "Discussions"},
		{"my-event-feed", "Events"},
		{"custom", "Custom"},
		{"", "Content"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveCMSTypeName(tt.id), "id %q", tt.id)
	}
}

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Discussions", "discussions"},
		{"Q&A", "q-a"},
		{"Knowledge Base", "knowledge-base"},
		{"  --Weird   input!! ", "weird-input"},
		{"///", "space"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeSlug(tt.in), "input %q", tt.in)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("general"))
	assert.True(t, ValidSlug("q-a"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("Has Caps"))
	assert.False(t, ValidSlug("double--dash"))
	assert.False(t, ValidSlug("-leading"))
}
