package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetInfo(t *testing.T) {
	// Save original values
	origUse := rootCmd.Use
	origShort := rootCmd.Short
	origLong := rootCmd.Long
	defer func() {
		rootCmd.Use = origUse
		rootCmd.Short = origShort
		rootCmd.Long = origLong
	}()

	SetInfo("test-app", "Test Short", "Test Long Description")

	assert.Equal(t, "test-app", rootCmd.Use)
	assert.Equal(t, "Test Short", rootCmd.Short)
	assert.Equal(t, "Test Long Description", rootCmd.Long)
}

func TestGetRoot(t *testing.T) {
	assert.Same(t, rootCmd, GetRoot())
	assert.True(t, GetRoot().SilenceUsage)
}
