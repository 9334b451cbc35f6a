package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookpin/internal/domain"
	portsmocks "github.com/renato0307/hookpin/internal/ports/mocks"
)

func TestHistoryService_List(t *testing.T) {
	store := portsmocks.NewMockStore(t)
	filter := domain.RunFilter{HookID: "black", Limit: 10, Status: domain.StatusFailed}
	store.EXPECT().ListRuns(mock.Anything, filter).Return([]domain.HookRun{{HookID: "black"}}, nil)

	runs, err := NewHistoryService(store).List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestHistoryService_List_InvalidFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.RunFilter
	}{
		{"unknown status", domain.RunFilter{Status: "exploded"}},
		{"negative limit", domain.RunFilter{Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHistoryService(portsmocks.NewMockStore(t)).List(context.Background(), tt.filter)

			assert.Error(t, err)
		})
	}
}
