package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil transcript service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTranscriptService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Transcript: &mockTranscriptService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil transcript service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingTranscriptService)
	})

	t.Run("transcript service is valid", func(t *testing.T) {
		ports := &Ports{
			Transcript: &mockTranscriptService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
