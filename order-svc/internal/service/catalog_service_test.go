package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eatplus/order-svc/internal/domain"
	"eatplus/order-svc/internal/mocks"
	"eatplus/order-svc/internal/service"
)

var media = service.BaseURLResolver{BaseURL: "https://cdn.example.com/media"}

func TestCatalogService_ListRestaurants(t *testing.T) {
	listed := []domain.Restaurant{{ID: 2, Name: "Noodles", ImageURL: "r/2.jpg", Verified: true, Available: true}}

	tests := []struct {
		name  string
		setup func(*mocks.CatalogRepository, *mocks.CatalogCache)
	}{
		{
			name: "cache hit",
			setup: func(_ *mocks.CatalogRepository, cache *mocks.CatalogCache) {
				cache.On("GetRestaurants", mock.Anything).Return(listed, true, nil).Once()
			},
		},
		{
			name: "cache miss fills cache",
			setup: func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache) {
				cache.On("GetRestaurants", mock.Anything).Return(nil, false, nil).Once()
				repo.On("ListRestaurants", mock.Anything).Return(listed, nil).Once()
				cache.On("SetRestaurants", mock.Anything, listed).Return(nil).Once()
			},
		},
		{
			name: "cache errors are ignored",
			setup: func(repo *mocks.CatalogRepository, cache *mocks.CatalogCache) {
				cache.On("GetRestaurants", mock.Anything).Return(nil, false, errors.New("redis: nil")).Once()
				repo.On("ListRestaurants", mock.Anything).Return(listed, nil).Once()
				cache.On("SetRestaurants", mock.Anything, listed).Return(errors.New("redis: timeout")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			cache := mocks.NewCatalogCache(t)
			testCase.setup(repo, cache)
			svc := service.NewCatalogService(repo, cache, media, discardLogger())

			got, err := svc.ListRestaurants(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "https://cdn.example.com/media/r/2.jpg", got[0].ImageURL)
			assert.Equal(t, "r/2.jpg", listed[0].ImageURL)
		})
	}
}

func TestCatalogService_ListRestaurants_RepoError(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	repo.On("ListRestaurants", mock.Anything).Return(nil, errors.New("db down")).Once()
	svc := service.NewCatalogService(repo, nil, media, discardLogger())

	_, err := svc.ListRestaurants(context.Background())
	assert.Error(t, err)
}

func TestCatalogService_HidesUnlistedRestaurants(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	repo.On("GetRestaurant", mock.Anything, int64(3)).Return(&domain.Restaurant{ID: 3, Verified: false, Available: true}, nil)
	svc := service.NewCatalogService(repo, nil, media, discardLogger())

	_, err := svc.GetRestaurant(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListMenuSections(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListItems(context.Background(), 3, domain.Delivery)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_ListItems(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	repo.On("GetRestaurant", mock.Anything, int64(7)).Return(restaurant, nil).Once()
	repo.On("ListItems", mock.Anything, int64(7), domain.Delivery).
		Return([]domain.Item{{ID: 1, Name: "Burger", ImageURL: "i/1.png"}, {ID: 2, Name: "Fries"}}, nil).Once()
	svc := service.NewCatalogService(repo, nil, media, discardLogger())

	items, err := svc.ListItems(context.Background(), 7, domain.Delivery)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://cdn.example.com/media/i/1.png", items[0].ImageURL)
	assert.Empty(t, items[1].ImageURL)
}

func TestCatalogService_ListChoices(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	repo.On("GetItem", mock.Anything, int64(1)).Return(burger, nil).Once()
	repo.On("ListOptions", mock.Anything, int64(1)).Return(options, nil).Once()
	svc := service.NewCatalogService(repo, nil, media, discardLogger())

	choices, err := svc.ListChoices(context.Background(), 1)
	require.NoError(t, err)
	ids := make([]int64, 0, len(choices))
	for _, c := range choices {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{100, 110, 111}, ids)
}

func TestCatalogService_ListOptions_UnknownItem(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	repo.On("GetItem", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound).Once()
	svc := service.NewCatalogService(repo, nil, media, discardLogger())

	_, err := svc.ListOptions(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "https://eatplus.example.com"}
	assert.Equal(t, "https://eatplus.example.com/orders/42", gen.Link(42))

	png, err := gen.Generate(42)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestBaseURLResolver(t *testing.T) {
	assert.Equal(t, "", media.URL(""))
	assert.Equal(t, "https://img.example.org/a.png", media.URL("https://img.example.org/a.png"))
	assert.Equal(t, "https://cdn.example.com/media/a.png", media.URL("a.png"))
}
