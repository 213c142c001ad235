package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklisting-backend/internal/config"
	"booklisting-backend/internal/domains/listing/model"
	"booklisting-backend/internal/infrastructure/kv/kvtest"
	"booklisting-backend/pkg/datauri"
)

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Environment: "development", Port: "0"},
		Store: config.StoreConfig{Driver: config.StoreDriverBadger},
		Auth:  config.AuthConfig{AdminSecret: "s3cret"},
	}
}

func TestBuild_WiresEveryLayer(t *testing.T) {
	c := Build(testConfig(), kvtest.NewStore(t))

	require.NotNil(t, c.ListingHandler)
	require.NotNil(t, c.Gate)
	assert.True(t, c.Gate.IsAdmin("s3cret"))

	ctx := context.Background()
	res, err := c.ListingService.CreateListing(ctx, model.ListingRequest{
		Title:  "T",
		Author: "A",
		Price:  model.NewPrice("5"),
		Image:  datauri.Encode("image/gif", []byte("gif")),
	})
	require.NoError(t, err)

	reg, err := c.SellerRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Code, reg["UNKNOWN"].Code)
}

func TestOpenStore_Badger(t *testing.T) {
	cfg := testConfig()
	cfg.Badger.Path = filepath.Join(t.TempDir(), "listings")

	store, err := OpenStore(cfg)
	require.NoError(t, err)

	c := Build(cfg, store)
	require.NoError(t, c.Store.Ping(context.Background()))
	c.Cleanup()
	assert.Error(t, store.Ping(context.Background()))
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Driver = "etcd"

	_, err := OpenStore(cfg)
	assert.Error(t, err)
}

func TestCleanup_NilStore(t *testing.T) {
	(&Container{}).Cleanup()
}
