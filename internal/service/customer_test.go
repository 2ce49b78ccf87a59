package service

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/customers/internal/cache/mocks"
	"github.com/umalmyha/customers/internal/errors"
	"github.com/umalmyha/customers/internal/model"
	rpsMocks "github.com/umalmyha/customers/internal/repository/mocks"
	"github.com/umalmyha/customers/internal/validation"
)

type customerTestData struct {
	ctx      context.Context
	customer *model.Customer
	input    model.CustomerInput
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc       CustomerService
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCache
	validator         *validation.CustomerValidator
	testData          *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	trans, err := validation.EnglishTranslator()
	s.Require().NoError(err, "failed to build translator")

	s.validator, err = validation.New(validator.New(), trans)
	s.Require().NoError(err, "failed to build validator")

	s.testData = &customerTestData{
		ctx: context.Background(),
		customer: &model.Customer{
			ID:    7,
			Name:  "John Walls",
			Email: "john.walls@somemail.com",
			Phone: "+1 555 0100",
		},
		input: model.CustomerInput{
			Name:  "  John Walls ",
			Email: " john.walls@somemail.com",
			Phone: "+1 555 0100  ",
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCache(t)
	s.customerSvc = NewCustomerService(s.customerRpsMock, s.customerCacheMock, s.validator, CustomerCfg{DeleteReportsMissing: true})
}

func (s *customerServiceTestSuite) assertErr(err error, kind errors.Kind, msg string) {
	s.Require().Error(err, "error must be raised")

	e, ok := errors.As(err)
	s.Require().True(ok, "error must be customer operation error")
	s.Assert().Equal(kind, e.Kind(), "unexpected error kind")
	s.Assert().Equal(msg, e.Message(), "unexpected error message")
}

func (s *customerServiceTestSuite) matchesTrimmed(id int64) any {
	expected := s.testData.customer
	return mock.MatchedBy(func(c *model.Customer) bool {
		return c.ID == id && c.Name == expected.Name && c.Email == expected.Email && c.Phone == expected.Phone
	})
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Create", ctx, s.matchesTrimmed(0)).Return(true, nil).Once()

	s.T().Log("customer must be created with trimmed values")
	{
		res, err := s.customerSvc.Create(ctx, s.testData.input)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusCreated, res.Status)
		s.Assert().Equal(MsgCreated, res.Message)
		s.Assert().Nil(res.Data, "new id must not be returned")
	}
}

func (s *customerServiceTestSuite) TestCreateValidation() {
	ctx := s.testData.ctx

	tests := []struct {
		input model.CustomerInput
		msg   string
	}{
		{input: model.CustomerInput{Name: "   ", Email: "", Phone: ""}, msg: "Enter your name"},
		{input: model.CustomerInput{Name: "John", Email: " \t", Phone: ""}, msg: "Enter your email"},
		{input: model.CustomerInput{Name: "John", Email: "john@somemail.com", Phone: "  "}, msg: "Enter your phone"},
	}

	for _, tt := range tests {
		s.T().Logf("invalid input must be rejected with %q", tt.msg)
		{
			_, err := s.customerSvc.Create(ctx, tt.input)
			s.assertErr(err, errors.KindValidation, tt.msg)
		}
	}

	s.customerRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *customerServiceTestSuite) TestCreateNothingInserted() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(false, nil).Once()

	_, err := s.customerSvc.Create(ctx, s.testData.input)
	s.assertErr(err, errors.KindInternal, MsgInsertFailed)
}

func (s *customerServiceTestSuite) TestCreateStoreFailure() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(false, stderrors.New("connection refused")).Once()

	s.T().Log("store error must not be leaked")
	{
		_, err := s.customerSvc.Create(ctx, s.testData.input)
		s.assertErr(err, errors.KindInternal, MsgInternal)
		s.Assert().ErrorContains(err, "connection refused", "cause must be kept for logs")
	}
}

func (s *customerServiceTestSuite) TestListSuccessfully() {
	ctx := s.testData.ctx
	customers := []*model.Customer{s.testData.customer, {ID: 8, Name: "Albert", Email: "albert@somemail.com", Phone: "1"}}

	s.customerRpsMock.On("FindAll", ctx).Return(customers, nil).Once()

	res, err := s.customerSvc.List(ctx)
	s.Require().NoError(err, "no error must be raised")
	s.Assert().Equal(http.StatusOK, res.Status)
	s.Assert().Equal(MsgListFetched, res.Message)
	s.Assert().Len(res.Data, len(customers))
}

func (s *customerServiceTestSuite) TestListEmpty() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("FindAll", ctx).Return([]*model.Customer{}, nil).Once()

	_, err := s.customerSvc.List(ctx)
	s.assertErr(err, errors.KindNotFound, MsgNoRecords)
}

func (s *customerServiceTestSuite) TestListFailure() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("FindAll", ctx).Return(nil, stderrors.New("db err")).Once()

	_, err := s.customerSvc.List(ctx)
	s.assertErr(err, errors.KindInternal, MsgInternal)
}

func (s *customerServiceTestSuite) TestGetByIDValidation() {
	ctx := s.testData.ctx

	for _, p := range []model.IDParam{{}, {Value: "", Present: true}, {Value: "  ", Present: true}} {
		_, err := s.customerSvc.GetByID(ctx, p)
		s.assertErr(err, errors.KindValidation, MsgIDRequired)
	}
}

func (s *customerServiceTestSuite) TestGetByIDNotNumeric() {
	_, err := s.customerSvc.GetByID(s.testData.ctx, model.IDParam{Value: "abc", Present: true})
	s.assertErr(err, errors.KindNotFound, MsgNoCustomer)
}

func (s *customerServiceTestSuite) TestGetByIDFromCache() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("customer must be found in cache")
	{
		res, err := s.customerSvc.GetByID(ctx, model.IDParam{Value: " 7 ", Present: true})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, res.Data)
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestGetByIDCached() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Cache", ctx, customer).Return(nil).Once()

	s.T().Log("customer is not in cache, found in primary datasource and cached")
	{
		res, err := s.customerSvc.GetByID(ctx, model.IDParam{Value: "7", Present: true})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, res.Status)
		s.Assert().Equal(MsgFetched, res.Message)
		s.Assert().Equal(customer, res.Data)
	}
}

func (s *customerServiceTestSuite) TestGetByIDCacheFailureFallsBack() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, stderrors.New("cache err")).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Cache", ctx, customer).Return(stderrors.New("cache err")).Once()

	res, err := s.customerSvc.GetByID(ctx, model.IDParam{Value: "7", Present: true})
	s.Require().NoError(err, "cache failures must not fail request")
	s.Assert().Equal(customer, res.Data)
}

func (s *customerServiceTestSuite) TestGetByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		_, err := s.customerSvc.GetByID(ctx, model.IDParam{Value: "7", Present: true})
		s.assertErr(err, errors.KindNotFound, MsgNoCustomer)
		s.customerCacheMock.AssertNotCalled(s.T(), "Cache", mock.Anything, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestUpdateIDValidation() {
	ctx := s.testData.ctx

	_, err := s.customerSvc.Update(ctx, s.testData.input, model.IDParam{})
	s.assertErr(err, errors.KindValidation, MsgIDNotInURL)

	_, err = s.customerSvc.Update(ctx, s.testData.input, model.IDParam{Value: " ", Present: true})
	s.assertErr(err, errors.KindValidation, MsgEnterID)
}

func (s *customerServiceTestSuite) TestUpdateFieldValidation() {
	_, err := s.customerSvc.Update(s.testData.ctx, model.CustomerInput{Name: "John", Email: "john@somemail.com"}, model.IDParam{Value: "7", Present: true})
	s.assertErr(err, errors.KindValidation, "Enter your phone")
	s.customerRpsMock.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *customerServiceTestSuite) TestUpdateSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("EvictByID", ctx, customer.ID).Return(nil).Twice()
	s.customerRpsMock.On("Update", ctx, s.matchesTrimmed(customer.ID)).Return(true, nil).Once()

	res, err := s.customerSvc.Update(ctx, s.testData.input, model.IDParam{Value: "7", Present: true})
	s.Require().NoError(err, "no error must be raised")
	s.Assert().Equal(http.StatusOK, res.Status)
	s.Assert().Equal(MsgUpdated, res.Message)
}

func (s *customerServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx

	s.customerCacheMock.On("EvictByID", ctx, int64(404)).Return(nil).Once()
	s.customerRpsMock.On("Update", ctx, s.matchesTrimmed(404)).Return(false, nil).Once()

	_, err := s.customerSvc.Update(ctx, s.testData.input, model.IDParam{Value: "404", Present: true})
	s.assertErr(err, errors.KindNotFound, MsgCustomerNotFound)
}

func (s *customerServiceTestSuite) TestUpdateNotNumericID() {
	_, err := s.customerSvc.Update(s.testData.ctx, s.testData.input, model.IDParam{Value: "1 OR 1=1", Present: true})
	s.assertErr(err, errors.KindNotFound, MsgCustomerNotFound)
	s.customerRpsMock.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *customerServiceTestSuite) TestDeleteIDValidation() {
	ctx := s.testData.ctx

	_, err := s.customerSvc.Delete(ctx, model.IDParam{})
	s.assertErr(err, errors.KindValidation, MsgIDNotInURL)

	_, err = s.customerSvc.Delete(ctx, model.IDParam{Present: true})
	s.assertErr(err, errors.KindValidation, MsgEnterID)
}

func (s *customerServiceTestSuite) TestDeleteSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("EvictByID", ctx, customer.ID).Return(nil).Twice()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()

	res, err := s.customerSvc.Delete(ctx, model.IDParam{Value: "7", Present: true})
	s.Require().NoError(err, "no error must be raised")
	s.Assert().Equal(http.StatusOK, res.Status)
	s.Assert().Equal(MsgDeleted, res.Message)
}

func (s *customerServiceTestSuite) TestDeleteCacheFailed() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("EvictByID", ctx, customer.ID).Return(stderrors.New("cache err")).Once()

	s.T().Log("delete customer from cache failed")
	{
		_, err := s.customerSvc.Delete(ctx, model.IDParam{Value: "7", Present: true})
		s.assertErr(err, errors.KindInternal, MsgInternal)
		s.customerRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestDeleteMissingReported() {
	ctx := s.testData.ctx

	s.customerCacheMock.On("EvictByID", ctx, int64(404)).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, int64(404)).Return(false, nil).Once()

	_, err := s.customerSvc.Delete(ctx, model.IDParam{Value: "404", Present: true})
	s.assertErr(err, errors.KindNotFound, MsgCustomerNotFound)
}

func (s *customerServiceTestSuite) TestDeleteMissingCompatible() {
	ctx := s.testData.ctx
	svc := NewCustomerService(s.customerRpsMock, s.customerCacheMock, s.validator, CustomerCfg{DeleteReportsMissing: false})

	s.customerCacheMock.On("EvictByID", ctx, int64(404)).Return(nil).Twice()
	s.customerRpsMock.On("DeleteByID", ctx, int64(404)).Return(false, nil).Twice()

	s.T().Log("repeated delete of missing customer keeps reporting success")
	for i := 0; i < 2; i++ {
		res, err := svc.Delete(ctx, model.IDParam{Value: "404", Present: true})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, res.Status)
	}
}

func (s *customerServiceTestSuite) TestDeleteFailure() {
	ctx := s.testData.ctx

	s.customerCacheMock.On("EvictByID", ctx, int64(7)).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, int64(7)).Return(false, stderrors.New("db err")).Once()

	_, err := s.customerSvc.Delete(ctx, model.IDParam{Value: "7", Present: true})
	s.assertErr(err, errors.KindInternal, MsgInternal)
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
