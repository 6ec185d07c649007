package tests

import (
	"testing"

	"damone-orders/internal/catalog"
	"damone-orders/internal/domain"
	"damone-orders/internal/mocks"
	"damone-orders/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_FullMenu(t *testing.T) {
	mockRepo := new(mocks.MenuRepository)
	mockRepo.On("ListMenuItems").Return([]domain.MenuItem{
		{ID: "samosa", Name: "Samosa", Price: 5.50, Category: "appetizers"},
	}, nil).Once()

	svc := service.NewMenuService(catalog.Load(), mockRepo)
	menu, err := svc.FullMenu()
	require.NoError(t, err)

	require.Contains(t, menu, "appetizers")
	require.Contains(t, menu, "mainCourse")
	require.Contains(t, menu, "desserts")
	require.Contains(t, menu, "beverages")

	// Catalog items come first, admin-created rows are appended.
	appetizers := menu["appetizers"]
	assert.Equal(t, "kebab", appetizers[0].ID)
	assert.Equal(t, "samosa", appetizers[len(appetizers)-1].ID)
}

func TestMenuService_Category(t *testing.T) {
	mockRepo := new(mocks.MenuRepository)
	mockRepo.On("ListMenuItems").Return(nil, nil)

	svc := service.NewMenuService(catalog.Load(), mockRepo)

	items, err := svc.Category("desserts")
	require.NoError(t, err)
	assert.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "desserts", item.Category)
	}

	_, err = svc.Category("breakfast")
	assert.ErrorIs(t, err, service.ErrUnknownCategory)
}

func TestMenuService_Find(t *testing.T) {
	mockRepo := new(mocks.MenuRepository)
	svc := service.NewMenuService(catalog.Load(), mockRepo)

	item, err := svc.Find("pilau")
	require.NoError(t, err)
	assert.Equal(t, "Pilau", item.Name)
	assert.InDelta(t, 22.99, item.Price.Float64(), 0.001)
	assert.Equal(t, "mainCourse", item.Category)

	mockRepo.On("GetMenuItem", "samosa").Return(&domain.MenuItem{ID: "samosa", Name: "Samosa"}, nil).Once()
	item, err = svc.Find("samosa")
	require.NoError(t, err)
	assert.Equal(t, "Samosa", item.Name)

	mockRepo.On("GetMenuItem", "ghost").Return(nil, assert.AnError).Once()
	_, err = svc.Find("ghost")
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name    string
		item    *domain.MenuItem
		wantErr error
	}{
		{name: "valid item", item: &domain.MenuItem{ID: "samosa", Name: "Samosa", Price: 5.50}},
		{name: "missing id", item: &domain.MenuItem{Name: "Samosa", Price: 5.50}, wantErr: service.ErrInvalidItem},
		{name: "missing name", item: &domain.MenuItem{ID: "samosa", Price: 5.50}, wantErr: service.ErrInvalidItem},
		{name: "non-positive price", item: &domain.MenuItem{ID: "samosa", Name: "Samosa", Price: 0}, wantErr: service.ErrInvalidItem},
		{name: "catalog id collision", item: &domain.MenuItem{ID: "kebab", Name: "Kebab", Price: 7}, wantErr: service.ErrItemExists},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.MenuRepository)
			if testCase.wantErr == nil {
				mockRepo.On("CreateMenuItem", testCase.item).Return(nil).Once()
			}

			svc := service.NewMenuService(catalog.Load(), mockRepo)
			err := svc.Create(testCase.item)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_UpdateAndDelete(t *testing.T) {
	mockRepo := new(mocks.MenuRepository)
	svc := service.NewMenuService(catalog.Load(), mockRepo)

	item := &domain.MenuItem{ID: "samosa", Name: "Samosa", Price: 6}
	mockRepo.On("UpdateMenuItem", item).Return(int64(1), nil).Once()
	assert.NoError(t, svc.Update(item))

	missing := &domain.MenuItem{ID: "ghost", Name: "Ghost", Price: 1}
	mockRepo.On("UpdateMenuItem", missing).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.Update(missing), service.ErrItemNotFound)

	mockRepo.On("DeleteMenuItem", "samosa").Return(int64(1), nil).Once()
	assert.NoError(t, svc.Delete("samosa"))

	mockRepo.On("DeleteMenuItem", "ghost").Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.Delete("ghost"), service.ErrItemNotFound)
}

func TestCatalog_NormalizesStringPrices(t *testing.T) {
	cat := catalog.Load()

	kebab, ok := cat.Find("kebab")
	require.True(t, ok)
	assert.InDelta(t, 7.00, kebab.Price.Float64(), 0.001)

	for _, category := range cat.Categories() {
		for _, item := range cat.Items(category) {
			assert.Greater(t, item.Price.Float64(), 0.0, "item %s", item.ID)
			assert.Equal(t, category, item.Category)
		}
	}
}
