package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docgen/internal/model"
	"docgen/internal/repository"
	repoMocks "docgen/internal/repository/mocks"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func TestTemplateCache_FindByID(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute
	tmpl := &model.Template{ID: "T1", Name: "Default", HTML: "<h1>{{.invoice_number}}</h1>"}
	cached, err := json.Marshal(tmpl)
	require.NoError(t, err)

	tests := []struct {
		name       string
		setupMocks func(c *mockClient, repo *repoMocks.MockTemplateRepository)
		wantErr    error
		wantHTML   string
	}{
		{
			name: "cache hit skips the store",
			setupMocks: func(c *mockClient, repo *repoMocks.MockTemplateRepository) {
				c.On("Get", ctx, "docgen:template:T1").Return(redis.NewStringResult(string(cached), nil))
			},
			wantHTML: tmpl.HTML,
		},
		{
			name: "cache miss loads and stores",
			setupMocks: func(c *mockClient, repo *repoMocks.MockTemplateRepository) {
				c.On("Get", ctx, "docgen:template:T1").Return(redis.NewStringResult("", redis.Nil))
				repo.On("FindByID", ctx, "T1").Return(tmpl, nil)
				c.On("Set", ctx, "docgen:template:T1", cached, ttl).Return(redis.NewStatusResult("OK", nil))
			},
			wantHTML: tmpl.HTML,
		},
		{
			name: "redis unavailable falls back to the store",
			setupMocks: func(c *mockClient, repo *repoMocks.MockTemplateRepository) {
				c.On("Get", ctx, "docgen:template:T1").Return(redis.NewStringResult("", errors.New("dial tcp: refused")))
				repo.On("FindByID", ctx, "T1").Return(tmpl, nil)
				c.On("Set", ctx, "docgen:template:T1", mock.Anything, ttl).Return(redis.NewStatusResult("", errors.New("dial tcp: refused")))
			},
			wantHTML: tmpl.HTML,
		},
		{
			name: "corrupt entry is reloaded",
			setupMocks: func(c *mockClient, repo *repoMocks.MockTemplateRepository) {
				c.On("Get", ctx, "docgen:template:T1").Return(redis.NewStringResult("{not json", nil))
				repo.On("FindByID", ctx, "T1").Return(tmpl, nil)
				c.On("Set", ctx, "docgen:template:T1", cached, ttl).Return(redis.NewStatusResult("OK", nil))
			},
			wantHTML: tmpl.HTML,
		},
		{
			name: "not found is not cached",
			setupMocks: func(c *mockClient, repo *repoMocks.MockTemplateRepository) {
				c.On("Get", ctx, "docgen:template:T1").Return(redis.NewStringResult("", redis.Nil))
				repo.On("FindByID", ctx, "T1").Return(nil, repository.ErrNotFound)
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := new(mockClient)
			repo := new(repoMocks.MockTemplateRepository)
			tt.setupMocks(c, repo)

			got, err := NewTemplateCache(repo, c, ttl).FindByID(ctx, "T1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantHTML, got.HTML)
			}
			c.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}
