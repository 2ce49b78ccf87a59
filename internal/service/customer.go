package service

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers/internal/cache"
	"github.com/umalmyha/customers/internal/errors"
	"github.com/umalmyha/customers/internal/model"
	"github.com/umalmyha/customers/internal/repository"
	"github.com/umalmyha/customers/internal/validation"
)

// Messages returned to client
const (
	MsgCreated          = "Customer created successfully"
	MsgListFetched      = "Customer List Fetched Successfully"
	MsgFetched          = "Customer Fetched Successfully"
	MsgUpdated          = "Customer updated successfully"
	MsgDeleted          = "Customer Deleted successfully"
	MsgNoRecords        = "No Record Found!"
	MsgNoCustomer       = "No Customer Found"
	MsgCustomerNotFound = "Customer not found"
	MsgIDRequired       = "Customer ID is required"
	MsgIDNotInURL       = "Customer ID not found in URL"
	MsgEnterID          = "Enter your Customer ID"
	MsgInsertFailed     = "Internal server error: Insert failed"
	MsgInternal         = "Internal Server Error"
)

// Result is successful operation outcome
type Result struct {
	Status  int
	Message string
	Data    any
}

// CustomerCfg tunes customer service behavior
type CustomerCfg struct {
	// DeleteReportsMissing makes delete of unknown id end with not found instead of success
	DeleteReportsMissing bool
}

// CustomerService is customer business logic, every failure is returned as *errors.Error
type CustomerService interface {
	Create(context.Context, model.CustomerInput) (*Result, error)
	List(context.Context) (*Result, error)
	GetByID(context.Context, model.IDParam) (*Result, error)
	Update(context.Context, model.CustomerInput, model.IDParam) (*Result, error)
	Delete(context.Context, model.IDParam) (*Result, error)
}

// Validator validates customer input
type Validator interface {
	Validate(any) error
}

type customerService struct {
	customerRps   repository.CustomerRepository
	customerCache cache.CustomerCache
	validator     Validator
	cfg           CustomerCfg
}

// NewCustomerService builds customer service
func NewCustomerService(
	customerRps repository.CustomerRepository,
	customerCache cache.CustomerCache,
	validator Validator,
	cfg CustomerCfg,
) CustomerService {
	return &customerService{
		customerRps:   customerRps,
		customerCache: customerCache,
		validator:     validator,
		cfg:           cfg,
	}
}

func (s *customerService) Create(ctx context.Context, in model.CustomerInput) (*Result, error) {
	c, err := s.validCustomer(in)
	if err != nil {
		return nil, err
	}

	created, err := s.customerRps.Create(ctx, c)
	if err != nil {
		return nil, s.internal("create", nil, err)
	}

	if !created {
		return nil, errors.NewInternalErr(MsgInsertFailed, nil)
	}

	logrus.WithField("id", c.ID).Debug("customer created")
	return result(http.StatusCreated, MsgCreated, nil), nil
}

func (s *customerService) List(ctx context.Context) (*Result, error) {
	customers, err := s.customerRps.FindAll(ctx)
	if err != nil {
		return nil, s.internal("list", nil, err)
	}

	if len(customers) == 0 {
		return nil, errors.NewNotFoundErr(MsgNoRecords)
	}
	return result(http.StatusOK, MsgListFetched, customers), nil
}

func (s *customerService) GetByID(ctx context.Context, param model.IDParam) (*Result, error) {
	raw := strings.TrimSpace(param.Value)
	if !param.Present || raw == "" {
		return nil, errors.NewValidationErr(MsgIDRequired)
	}

	id, ok := parseID(raw)
	if !ok {
		return nil, errors.NewNotFoundErr(MsgNoCustomer)
	}

	cached, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to read customer from cache")
	}

	if cached != nil {
		return result(http.StatusOK, MsgFetched, cached), nil
	}

	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, s.internal("get", &id, err)
	}

	if c == nil {
		return nil, errors.NewNotFoundErr(MsgNoCustomer)
	}

	if err := s.customerCache.Cache(ctx, c); err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to cache customer")
	}

	return result(http.StatusOK, MsgFetched, c), nil
}

func (s *customerService) Update(ctx context.Context, in model.CustomerInput, param model.IDParam) (*Result, error) {
	raw, err := requiredURLID(param)
	if err != nil {
		return nil, err
	}

	c, err := s.validCustomer(in)
	if err != nil {
		return nil, err
	}

	id, ok := parseID(raw)
	if !ok {
		return nil, errors.NewNotFoundErr(MsgCustomerNotFound)
	}
	c.ID = id

	if err := s.customerCache.EvictByID(ctx, id); err != nil {
		return nil, s.internal("update", &id, err)
	}

	updated, err := s.customerRps.Update(ctx, c)
	if err != nil {
		return nil, s.internal("update", &id, err)
	}

	if !updated {
		return nil, errors.NewNotFoundErr(MsgCustomerNotFound)
	}

	s.evictWritten(ctx, "update", id)
	return result(http.StatusOK, MsgUpdated, nil), nil
}

func (s *customerService) Delete(ctx context.Context, param model.IDParam) (*Result, error) {
	raw, err := requiredURLID(param)
	if err != nil {
		return nil, err
	}

	id, ok := parseID(raw)
	if !ok {
		return s.missingOnDelete()
	}

	if err := s.customerCache.EvictByID(ctx, id); err != nil {
		return nil, s.internal("delete", &id, err)
	}

	deleted, err := s.customerRps.DeleteByID(ctx, id)
	if err != nil {
		return nil, s.internal("delete", &id, err)
	}

	if !deleted {
		return s.missingOnDelete()
	}

	s.evictWritten(ctx, "delete", id)
	return result(http.StatusOK, MsgDeleted, nil), nil
}

// evictWritten drops entry a concurrent GetByID could have cached between first eviction and the write
func (s *customerService) evictWritten(ctx context.Context, op string, id int64) {
	if err := s.customerCache.EvictByID(ctx, id); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"operation": op, "id": id}).Error("failed to evict customer from cache after write")
	}
}

func (s *customerService) missingOnDelete() (*Result, error) {
	if s.cfg.DeleteReportsMissing {
		return nil, errors.NewNotFoundErr(MsgCustomerNotFound)
	}
	return result(http.StatusOK, MsgDeleted, nil), nil
}

func (s *customerService) validCustomer(in model.CustomerInput) (*model.Customer, error) {
	trimmed := model.CustomerInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}

	if err := s.validator.Validate(&trimmed); err != nil {
		var pldErr *validation.PayloadError
		if stderrors.As(err, &pldErr) {
			return nil, errors.NewValidationErr(pldErr.First())
		}
		return nil, s.internal("validate", nil, err)
	}

	return &model.Customer{
		Name:  trimmed.Name,
		Email: trimmed.Email,
		Phone: trimmed.Phone,
	}, nil
}

func (s *customerService) internal(op string, id *int64, err error) error {
	entry := logrus.WithError(err).WithField("operation", op)
	if id != nil {
		entry = entry.WithField("id", *id)
	}
	entry.Error("customer operation failed")

	return errors.NewInternalErr(MsgInternal, err)
}

func requiredURLID(param model.IDParam) (string, error) {
	if !param.Present {
		return "", errors.NewValidationErr(MsgIDNotInURL)
	}

	raw := strings.TrimSpace(param.Value)
	if raw == "" {
		return "", errors.NewValidationErr(MsgEnterID)
	}
	return raw, nil
}

// parseID reports false for values no stored customer can have
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func result(status int, msg string, data any) *Result {
	return &Result{Status: status, Message: msg, Data: data}
}
