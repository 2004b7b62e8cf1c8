package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Metadata(t *testing.T) {
	assert.Equal(t, "sgc", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotNil(t, rootCmd.RunE)
}

func TestRootCmd_Flags(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, rootCmd.Flags().Lookup("debug"))
	require.NotNil(t, rootCmd.Flags().Lookup("export-path"))
}

func TestSetVersion(t *testing.T) {
	orig := rootCmd.Version
	defer func() { rootCmd.Version = orig }()

	SetVersion("1.2.3 (commit: abc, built: today)")
	assert.Equal(t, "1.2.3 (commit: abc, built: today)", rootCmd.Version)
}
