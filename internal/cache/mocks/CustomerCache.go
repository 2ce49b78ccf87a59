package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/umalmyha/customers/internal/model"
)

// CustomerCache is mock type for cache.CustomerCache
type CustomerCache struct {
	mock.Mock
}

func (m *CustomerCache) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	ret := m.Called(ctx, id)

	var c *model.Customer
	if v := ret.Get(0); v != nil {
		c = v.(*model.Customer)
	}
	return c, ret.Error(1)
}

func (m *CustomerCache) Cache(ctx context.Context, c *model.Customer) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (m *CustomerCache) EvictByID(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

type mockConstructorTestingTNewCustomerCache interface {
	mock.TestingT
	Cleanup(func())
}

// NewCustomerCache creates new instance of CustomerCache and registers expectations assertion on cleanup
func NewCustomerCache(t mockConstructorTestingTNewCustomerCache) *CustomerCache {
	m := &CustomerCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
