package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/umalmyha/customers/internal/model"
	"github.com/umalmyha/customers/internal/service"
)

// CustomerService is mock type for service.CustomerService
type CustomerService struct {
	mock.Mock
}

func (m *CustomerService) Create(ctx context.Context, in model.CustomerInput) (*service.Result, error) {
	ret := m.Called(ctx, in)
	return result(ret)
}

func (m *CustomerService) List(ctx context.Context) (*service.Result, error) {
	ret := m.Called(ctx)
	return result(ret)
}

func (m *CustomerService) GetByID(ctx context.Context, id model.IDParam) (*service.Result, error) {
	ret := m.Called(ctx, id)
	return result(ret)
}

func (m *CustomerService) Update(ctx context.Context, in model.CustomerInput, id model.IDParam) (*service.Result, error) {
	ret := m.Called(ctx, in, id)
	return result(ret)
}

func (m *CustomerService) Delete(ctx context.Context, id model.IDParam) (*service.Result, error) {
	ret := m.Called(ctx, id)
	return result(ret)
}

func result(ret mock.Arguments) (*service.Result, error) {
	var r *service.Result
	if v := ret.Get(0); v != nil {
		r = v.(*service.Result)
	}
	return r, ret.Error(1)
}

type mockConstructorTestingTNewCustomerService interface {
	mock.TestingT
	Cleanup(func())
}

// NewCustomerService creates new instance of CustomerService and registers expectations assertion on cleanup
func NewCustomerService(t mockConstructorTestingTNewCustomerService) *CustomerService {
	m := &CustomerService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
