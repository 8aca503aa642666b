package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: model.ErrStoreUnavailable},
		{name: "client disconnected", err: mongo.ErrClientDisconnected, want: model.ErrStoreUnavailable},
		{
			name: "network label",
			err:  mongo.CommandError{Code: 91, Message: "shutting down", Labels: []string{"NetworkError"}},
			want: model.ErrStoreUnavailable,
		},
		{
			name: "unknown stage",
			err:  mongo.CommandError{Code: 40324, Message: "Unrecognized pipeline stage name: '$lookupp'"},
			want: model.ErrQueryFailed,
		},
		{name: "anything else", err: errors.New("decode"), want: model.ErrQueryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorContains(t, got, tt.err.Error())
		})
	}

	assert.NoError(t, classify(nil))
}
