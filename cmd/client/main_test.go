package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_Levels(t *testing.T) {
	l, err := newLogger(false)
	require.NoError(t, err)
	// стартовая строка helper'а пишется на Info и должна быть видна без --debug
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel), "fetch details only with --debug")

	dl, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, dl.Core().Enabled(zap.DebugLevel))
}
