package cache

import (
	"context"

	"github.com/umalmyha/customers/internal/model"
)

type noopCustomerCache struct{}

// NewNoopCustomerCache builds cache which never stores anything, used when redis is not configured
func NewNoopCustomerCache() CustomerCache {
	return noopCustomerCache{}
}

func (noopCustomerCache) FindByID(context.Context, int64) (*model.Customer, error) {
	return nil, nil
}

func (noopCustomerCache) Cache(context.Context, *model.Customer) error {
	return nil
}

func (noopCustomerCache) EvictByID(context.Context, int64) error {
	return nil
}
