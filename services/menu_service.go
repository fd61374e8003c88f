package services

import (
	"context"
	"sort"
	"strings"

	"github.com/tastehaven/menu_backend/models"
	"github.com/tastehaven/menu_backend/utils"
)

// MenuStore is the store contract the aggregation pipeline consumes. Any
// error coming back from it is treated opaquely as a store failure.
type MenuStore interface {
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	ListOrdered(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error)
	Update(ctx context.Context, id string, req models.MenuItemRequest) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// MenuService is the menu aggregation pipeline: it turns the flat store
// rows into a category-oriented grouping and applies the two narrowing
// operations. Mutations go through a single store call followed by a full
// re-fetch; there is no optimistic local state and no retry.
type MenuService struct {
	store MenuStore
}

func NewMenuService(store MenuStore) *MenuService {
	return &MenuService{store: store}
}

// ListAll returns the ungrouped item list, newest first.
func (s *MenuService) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.MenuItem, len(items))
	for i, item := range items {
		out[i] = withPriceDisplay(item)
	}
	return out, nil
}

// FetchGrouped fetches all items and groups them by category. Items with
// an empty category land under the "Uncategorized" bucket; each bucket is
// sorted by name ascending. The grouping is built fresh on every call.
func (s *MenuService) FetchGrouped(ctx context.Context) (models.CategoryGrouping, error) {
	items, err := s.store.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}

// GroupByCategory builds a CategoryGrouping from a flat item collection.
func GroupByCategory(items []models.MenuItem) models.CategoryGrouping {
	grouping := make(models.CategoryGrouping)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = models.UncategorizedKey
		}
		grouping[category] = append(grouping[category], withPriceDisplay(item))
	}
	for category := range grouping {
		bucket := grouping[category]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Name < bucket[j].Name })
	}
	return grouping
}

// FilterBySearchTerm keeps only items whose name contains term as a
// case-insensitive substring. Categories left with no matches are omitted
// entirely. An empty or whitespace-only term is the identity.
func FilterBySearchTerm(grouping models.CategoryGrouping, term string) models.CategoryGrouping {
	term = strings.TrimSpace(term)
	if term == "" {
		return grouping
	}
	needle := strings.ToLower(term)

	filtered := make(models.CategoryGrouping)
	for category, items := range grouping {
		var matches []models.MenuItem
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				matches = append(matches, item)
			}
		}
		if len(matches) > 0 {
			filtered[category] = matches
		}
	}
	return filtered
}

// FilterByCategory narrows the grouping to a single category. The empty
// string is the "all categories" sentinel and returns the grouping
// unchanged; an unknown category yields an empty grouping.
func FilterByCategory(grouping models.CategoryGrouping, category string) models.CategoryGrouping {
	if category == "" {
		return grouping
	}
	filtered := make(models.CategoryGrouping)
	if items, ok := grouping[category]; ok {
		filtered[category] = items
	}
	return filtered
}

// withPriceDisplay stamps the formatted EGP price onto a served copy.
func withPriceDisplay(item models.MenuItem) models.MenuItem {
	item.PriceDisplay = utils.FormatEGP(item.Price, utils.EGPOptions{})
	return item
}

// NormalizeImageURL prefixes the secure scheme when the reference carries
// no recognized one. Normalizing an already-prefixed reference is a no-op.
func NormalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// AddItem normalizes the draft, inserts it, and on success returns the
// refreshed grouping so the caller reflects only store-confirmed state.
func (s *MenuService) AddItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, models.CategoryGrouping, error) {
	req.ImageURL = NormalizeImageURL(req.ImageURL)

	item, err := s.store.Insert(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	served := withPriceDisplay(*item)

	grouping, err := s.FetchGrouped(ctx)
	if err != nil {
		return &served, nil, err
	}
	return &served, grouping, nil
}

// UpdateItem applies a single update to the store then re-fetches.
func (s *MenuService) UpdateItem(ctx context.Context, id string, req models.MenuItemRequest) (*models.MenuItem, models.CategoryGrouping, error) {
	req.ImageURL = NormalizeImageURL(req.ImageURL)

	item, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, nil, err
	}
	served := withPriceDisplay(*item)

	grouping, err := s.FetchGrouped(ctx)
	if err != nil {
		return &served, nil, err
	}
	return &served, grouping, nil
}

// DeleteItem removes an item then re-fetches.
func (s *MenuService) DeleteItem(ctx context.Context, id string) (models.CategoryGrouping, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.FetchGrouped(ctx)
}
