package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"  hello   world  ", "hello world"},
		{"non breaking", "non breaking"},
		{"line\nbreaks\tand tabs", "line breaks and tabs"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, CleanText(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Location: New York, NY", "New York, NY"},
		{"New York, NY, NY", "New York, NY"},
		{"  Brooklyn ,  NY , United States ", "Brooklyn, NY, United States"},
		{"", ""},
		{",,", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, NormalizeLocation(tt.in), "input %q", tt.in)
	}
}

func TestSplitLocation(t *testing.T) {
	city, state, country := SplitLocation("Brooklyn, NY, United States")
	assert.Equal(t, "Brooklyn", city)
	assert.Equal(t, "NY", state)
	assert.Equal(t, "United States", country)

	city, state, country = SplitLocation("Remote")
	assert.Equal(t, "Remote", city)
	assert.Empty(t, state)
	assert.Empty(t, country)
}

func TestLooksRemote(t *testing.T) {
	assert.True(t, LooksRemote("Senior Engineer (Remote)"))
	assert.True(t, LooksRemote("NYC office", "fully remote ok"))
	assert.False(t, LooksRemote("New York, NY", "hybrid"))
}

func TestLooksLikeJunkTitle(t *testing.T) {
	assert.True(t, LooksLikeJunkTitle("View job"))
	assert.True(t, LooksLikeJunkTitle("Apply now"))
	assert.False(t, LooksLikeJunkTitle("CRM Manager"))
}
