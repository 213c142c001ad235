package service

import (
	"context"
	"testing"

	"booklisting-backend/internal/domains/seller/model"
	"booklisting-backend/internal/domains/seller/repository"
	"booklisting-backend/internal/infrastructure/kv/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCodes(codes ...string) model.CodeGenerator {
	i := 0
	return func() (string, error) {
		c := codes[i%len(codes)]
		i++
		return c, nil
	}
}

func newTestService(t *testing.T, gen model.CodeGenerator) (ServiceInterface, repository.RepositoryInterface) {
	t.Helper()
	repo := repository.NewRepository(kvtest.NewStore(t))
	return NewService(repo, gen), repo
}

func TestResolveOrCreate_ReusesCodeForSameNormalizedContact(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, fixedCodes("KXQP", "ZZZZ"))

	code, isNew, err := svc.ResolveOrCreate(ctx, "+27 82-555-0101", "Thandi")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "KXQP", code)

	code, isNew, err = svc.ResolveOrCreate(ctx, "27825550101", "Thandi M")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "KXQP", code)

	reg, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reg, 1)
	assert.Equal(t, &model.SellerEntry{Code: "KXQP", Name: "Thandi M", Contact: "27825550101", Count: 2}, reg["27825550101"])
}

func TestResolveOrCreate_FormattingIgnored(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, fixedCodes("AAAA", "BBBB"))

	first, _, err := svc.ResolveOrCreate(ctx, "0825550101", "A")
	require.NoError(t, err)
	second, isNew, err := svc.ResolveOrCreate(ctx, "082 555 0101", "A")
	require.NoError(t, err)

	assert.False(t, isNew)
	assert.Equal(t, first, second)
}

func TestResolveOrCreate_NoContactUsesUnknown(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, nil)

	code, _, err := svc.ResolveOrCreate(ctx, "", "Anon")
	require.NoError(t, err)
	assert.True(t, model.IsValidCode(code))

	reg, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, reg, model.UnknownContact)
	assert.Equal(t, code, reg[model.UnknownContact].Code)
}

func TestResolve_DoesNotCountExistingSeller(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, fixedCodes("AAAA", "BBBB"))

	_, _, err := svc.ResolveOrCreate(ctx, "111", "One")
	require.NoError(t, err)

	code, isNew, err := svc.Resolve(ctx, "111", "Renamed")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "AAAA", code)

	code, isNew, err = svc.Resolve(ctx, "222", "Two")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "BBBB", code)

	reg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reg["111"].Count)
	assert.Equal(t, "One", reg["111"].Name)
	assert.Equal(t, 1, reg["222"].Count)
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, fixedCodes("NEWA", "NEWB"))

	_, _, err := svc.ResolveOrCreate(ctx, "999", "Stale")
	require.NoError(t, err)

	reg, codes, err := svc.Replace(ctx, []model.Attribution{
		{ListingID: "book:1", Contact: "111", Seller: "One"},
		{ListingID: "book:2", Contact: "1-1-1", Seller: "One again"},
	})
	require.NoError(t, err)

	assert.Len(t, reg, 1)
	assert.Equal(t, map[string]string{"book:1": "NEWB", "book:2": "NEWB"}, codes)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg, stored)
	assert.NotContains(t, stored, "999")
}
