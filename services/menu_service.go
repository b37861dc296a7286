package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/sirupsen/logrus"
)

type MenuService struct {
	State  *store.Store
	API    MenuAPI
	Logger logrus.FieldLogger
}

func NewMenuService(st *store.Store, menu MenuAPI) *MenuService {
	return &MenuService{State: st, API: menu, Logger: utils.InfoLogger}
}

// LoadAvailable loads what customers can order.
func (s *MenuService) LoadAvailable(ctx context.Context) ([]models.MenuItem, error) {
	return s.load(ctx, s.API.ListAvailableMenuItems)
}

// LoadAll includes unavailable items, for curation.
func (s *MenuService) LoadAll(ctx context.Context) ([]models.MenuItem, error) {
	return s.load(ctx, s.API.ListMenuItems)
}

func (s *MenuService) load(ctx context.Context, list func(context.Context) ([]models.MenuItem, error)) ([]models.MenuItem, error) {
	s.State.Dispatch(store.MenuRequested{})
	items, err := list(ctx)
	if err != nil {
		s.State.Dispatch(store.MenuFailed{Error: api.Message(err, "Failed to load menu")})
		return nil, fmt.Errorf("load menu: %w", err)
	}
	s.State.Dispatch(store.MenuLoaded{Items: items})

	categories, err := s.API.ListCategories(ctx)
	if err != nil {
		s.Logger.WithError(err).Warn("could not load menu categories")
	} else {
		s.State.Dispatch(store.CategoriesLoaded{Categories: categories})
	}
	return items, nil
}

func ValidateMenuItem(req models.MenuItemRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	case req.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidMenuItem)
	case req.CategoryID == 0:
		return fmt.Errorf("%w: category is required", ErrInvalidMenuItem)
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	if err := ValidateMenuItem(req); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	item, err := s.API.CreateMenuItem(ctx, req)
	if err != nil {
		s.State.Dispatch(store.MenuFailed{Error: api.Message(err, "Failed to create menu item")})
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	s.State.Dispatch(store.MenuItemSaved{Item: *item})
	s.Logger.WithField("menu_item_id", item.ID).Info("menu item created")
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, req models.MenuItemRequest) (*models.MenuItem, error) {
	if err := ValidateMenuItem(req); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	item, err := s.API.UpdateMenuItem(ctx, id, req)
	if err != nil {
		s.State.Dispatch(store.MenuFailed{Error: api.Message(err, "Failed to update menu item")})
		return nil, fmt.Errorf("update menu item %d: %w", id, err)
	}
	s.State.Dispatch(store.MenuItemSaved{Item: *item})
	return item, nil
}

// SetAvailability toggles whether customers can order an item.
func (s *MenuService) SetAvailability(ctx context.Context, id uint, available bool) (*models.MenuItem, error) {
	current, err := s.API.GetMenuItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load menu item %d: %w", id, err)
	}
	return s.Update(ctx, id, models.MenuItemRequest{
		Name:        current.Name,
		Description: current.Description,
		Price:       current.Price,
		CategoryID:  current.CategoryID,
		Available:   available,
		ImageURL:    current.ImageURL,
	})
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if err := s.API.DeleteMenuItem(ctx, id); err != nil {
		s.State.Dispatch(store.MenuFailed{Error: api.Message(err, "Failed to delete menu item")})
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	s.State.Dispatch(store.MenuItemDeleted{ID: id})
	s.Logger.WithField("menu_item_id", id).Info("menu item deleted")
	return nil
}
