package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pstuifzand/op.nvim/internal/config"
	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/internal/mock"
	"github.com/pstuifzand/op.nvim/models"
)

func TestResolveVault(t *testing.T) {
	vaults := []models.Vault{
		{ID: "v1", Name: "Personal"},
		{ID: "v2", Name: "Work"},
	}

	tests := []struct {
		name     string
		nameOrID string
		expected string
		wantErr  bool
	}{
		{name: "by id", nameOrID: "v2", expected: "v2"},
		{name: "by name", nameOrID: "Personal", expected: "v1"},
		{name: "by name case-insensitive", nameOrID: "work", expected: "v2"},
		{name: "unknown", nameOrID: "Shared", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mock.NewMockItemGateway(ctrl)
			gw.EXPECT().ListVaults(gomock.Any()).Return(vaults, nil)

			id, err := resolveVault(context.Background(), gw, tt.nameOrID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestResolveVault_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockItemGateway(ctrl)
	gw.EXPECT().ListVaults(gomock.Any()).Return(nil, assert.AnError)

	_, err := resolveVault(context.Background(), gw, "Personal")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewGateway_ModeDispatch(t *testing.T) {
	log := logger.Nop()

	cli, err := newGateway(&config.ClientConfig{
		Gateway: config.ClientGateway{Mode: config.GatewayModeCLI, BinaryPath: "op"},
	}, log)
	require.NoError(t, err)
	assert.NotNil(t, cli)

	connect, err := newGateway(&config.ClientConfig{
		Gateway: config.ClientGateway{
			Mode:           config.GatewayModeConnect,
			ConnectHost:    "http://localhost:8080",
			ConnectToken:   "secret",
			RequestTimeout: 15 * time.Second,
		},
	}, log)
	require.NoError(t, err)
	assert.NotNil(t, connect)

	_, err = newGateway(&config.ClientConfig{
		Gateway: config.ClientGateway{Mode: "smoke-signals"},
	}, log)
	assert.Error(t, err)
}
