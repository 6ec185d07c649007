package service

import (
	"errors"

	"damone-orders/internal/catalog"
	"damone-orders/internal/domain"
)

var (
	ErrUnknownCategory = errors.New("unknown menu category")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemExists      = errors.New("menu item id already in use")
	ErrInvalidItem     = errors.New("menu item needs id, name and a positive price")
)

// MenuService merges the built-in catalog with the admin-managed items in
// the database. The catalog is read-only; admin edits only touch rows.
type MenuService struct {
	catalog *catalog.Catalog
	repo    MenuRepository
}

func NewMenuService(cat *catalog.Catalog, repo MenuRepository) *MenuService {
	return &MenuService{catalog: cat, repo: repo}
}

// FullMenu returns every category in storefront order, catalog items first,
// admin-created items appended to their category.
func (s *MenuService) FullMenu() (map[string][]domain.MenuItem, error) {
	menu := make(map[string][]domain.MenuItem)
	for _, category := range s.catalog.Categories() {
		menu[category] = append([]domain.MenuItem(nil), s.catalog.Items(category)...)
	}

	stored, err := s.repo.ListMenuItems()
	if err != nil {
		return nil, err
	}
	for _, item := range stored {
		menu[item.Category] = append(menu[item.Category], item)
	}
	return menu, nil
}

func (s *MenuService) Category(name string) ([]domain.MenuItem, error) {
	menu, err := s.FullMenu()
	if err != nil {
		return nil, err
	}
	items, ok := menu[name]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return items, nil
}

// Find looks the item up in the catalog first, then among admin-created
// rows.
func (s *MenuService) Find(id string) (*domain.MenuItem, error) {
	if item, ok := s.catalog.Find(id); ok {
		return &item, nil
	}
	item, err := s.repo.GetMenuItem(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if item.ID == "" || item.Name == "" || item.Price <= 0 {
		return ErrInvalidItem
	}
	if _, ok := s.catalog.Find(item.ID); ok {
		return ErrItemExists
	}
	return s.repo.CreateMenuItem(item)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if item.ID == "" || item.Name == "" || item.Price <= 0 {
		return ErrInvalidItem
	}
	rows, err := s.repo.UpdateMenuItem(item)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *MenuService) Delete(id string) error {
	rows, err := s.repo.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}
