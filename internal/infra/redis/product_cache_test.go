package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront-service/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCache_GetProduct(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewProductCache(db, time.Minute)
	ctx := context.Background()

	product := domain.Product{ID: 3, Name: "Widget", Brand: "Acme", Price: 9.99, Category: "tools", Features: []string{"durable"}}
	data, err := json.Marshal(product)
	require.NoError(t, err)

	mock.ExpectGet("product:3").SetVal(string(data))
	mock.ExpectGet("product:4").RedisNil()
	mock.ExpectGet("product:5").SetErr(errors.New("connection refused"))

	got, err := cache.GetProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, &product, got)

	got, err = cache.GetProduct(ctx, 4)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = cache.GetProduct(ctx, 5)
	assert.EqualError(t, err, "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCache_SetProduct(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewProductCache(db, 30*time.Second)

	product := &domain.Product{ID: 8, Name: "Lamp", Brand: "Lumo", Price: 20, Category: "home"}
	data, err := json.Marshal(product)
	require.NoError(t, err)

	mock.ExpectSet("product:8", data, 30*time.Second).SetVal("OK")

	assert.NoError(t, cache.SetProduct(context.Background(), product))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCache_InvalidateProduct(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewProductCache(db, time.Minute)

	mock.ExpectDel("product:8").SetVal(1)

	assert.NoError(t, cache.InvalidateProduct(context.Background(), 8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCache_FlushProducts(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewProductCache(db, time.Minute)

	mock.ExpectScan(0, "product:*", 100).SetVal([]string{"product:1", "product:2"}, 17)
	mock.ExpectDel("product:1", "product:2").SetVal(2)
	mock.ExpectScan(17, "product:*", 100).SetVal([]string{}, 0)

	assert.NoError(t, cache.FlushProducts(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
