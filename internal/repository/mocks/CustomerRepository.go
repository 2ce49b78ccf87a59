package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/umalmyha/customers/internal/model"
)

// CustomerRepository is mock type for repository.CustomerRepository
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	ret := m.Called(ctx, id)

	var c *model.Customer
	if v := ret.Get(0); v != nil {
		c = v.(*model.Customer)
	}
	return c, ret.Error(1)
}

func (m *CustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	ret := m.Called(ctx)

	var customers []*model.Customer
	if v := ret.Get(0); v != nil {
		customers = v.([]*model.Customer)
	}
	return customers, ret.Error(1)
}

func (m *CustomerRepository) Create(ctx context.Context, c *model.Customer) (bool, error) {
	ret := m.Called(ctx, c)
	return ret.Bool(0), ret.Error(1)
}

func (m *CustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	ret := m.Called(ctx, c)
	return ret.Bool(0), ret.Error(1)
}

func (m *CustomerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

type mockConstructorTestingTNewCustomerRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewCustomerRepository creates new instance of CustomerRepository and registers expectations assertion on cleanup
func NewCustomerRepository(t mockConstructorTestingTNewCustomerRepository) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
