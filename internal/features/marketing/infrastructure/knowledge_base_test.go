package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKnowledgeBase(t *testing.T) {
	kb := NewKnowledgeBase()

	require.NotNil(t, kb)
	assert.Len(t, kb.AudienceSegments, 6)
	assert.Len(t, kb.MarketingChannels, 8)
	assert.Equal(t, []string{"Fantasy conventions", "Gaming communities", "Cosplay groups"}, kb.GenreMarketing["Fantasy"])
	assert.Empty(t, kb.GenreMarketing["Western"])
}

func TestMergeGenreChannels(t *testing.T) {
	kb := NewKnowledgeBase()

	MergeGenreChannels(kb, map[string][]string{
		"Fantasy": {"LARP meetups"},
		"Western": {"Rodeo circuits"},
	})

	assert.Equal(t, []string{"Fantasy conventions", "Gaming communities", "Cosplay groups", "LARP meetups"}, kb.GenreMarketing["Fantasy"])
	assert.Equal(t, []string{"Rodeo circuits"}, kb.GenreMarketing["Western"])
}
