package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers/internal/model"
	"github.com/umalmyha/customers/internal/service"
)

const (
	msgInvalidPayload   = "Invalid request payload"
	msgMethodNotAllowed = "Method Not Allowed"
	msgHealthy          = "OK"
)

// routes serving customers with id taken from query
const (
	CustomersPath    = "/customers"
	APICustomersPath = "/api/customers"
)

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
	binder      echo.DefaultBinder
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Dispatch routes request by method, customer id is taken from query
func (h *CustomerHTTPHandler) Dispatch(c echo.Context) error {
	id := queryID(c)

	switch c.Request().Method {
	case http.MethodGet:
		if !id.Present {
			return h.GetAll(c)
		}
		return h.get(c, id)
	case http.MethodPost:
		return h.Post(c)
	case http.MethodPut, http.MethodPatch:
		return h.update(c, id)
	case http.MethodDelete:
		return h.delete(c, id)
	default:
		return echo.NewHTTPError(http.StatusMethodNotAllowed, []string{c.Request().Method, msgMethodNotAllowed})
	}
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers
// @Tags        customers
// @Produce     json
// @Param       id  query    string false "Customer id, single customer is returned if provided"
// @Success     200 {object} envelope{data=[]model.Customer}
// @Failure     404 {object} envelope
// @Failure     500 {object} envelope
// @Router      /api/customers [get]
// @Router      /customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	res, err := h.customerSvc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, res)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id  path     int true "Customer id"
// @Success     200 {object} envelope{data=model.Customer}
// @Failure     404 {object} envelope
// @Failure     422 {object} envelope
// @Failure     500 {object} envelope
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	return h.get(c, pathID(c))
}

func (h *CustomerHTTPHandler) get(c echo.Context, id model.IDParam) error {
	res, err := h.customerSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, res)
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer, id of created customer is not returned
// @Tags        customers
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       customer body     model.CustomerInput true "Data for new customer"
// @Success     201      {object} envelope
// @Failure     400      {object} envelope
// @Failure     422      {object} envelope
// @Failure     500      {object} envelope
// @Router      /api/customers [post]
// @Router      /customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}

	res, err := h.customerSvc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, res)
}

// Put updates customer
// @Summary     Update Customer
// @Description Replaces name, email and phone of existing customer
// @Tags        customers
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       id       path     int                 true "Customer id"
// @Param       customer body     model.CustomerInput true "Customer data"
// @Success     200      {object} envelope
// @Failure     400      {object} envelope
// @Failure     404      {object} envelope
// @Failure     422      {object} envelope
// @Failure     500      {object} envelope
// @Router      /api/customers/{id} [put]
// @Router      /api/customers/{id} [patch]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	return h.update(c, pathID(c))
}

func (h *CustomerHTTPHandler) update(c echo.Context, id model.IDParam) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}

	res, err := h.customerSvc.Update(c.Request().Context(), in, id)
	if err != nil {
		return err
	}
	return respond(c, res)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id  path     int true "Customer id"
// @Success     200 {object} envelope
// @Failure     404 {object} envelope
// @Failure     422 {object} envelope
// @Failure     500 {object} envelope
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	return h.delete(c, pathID(c))
}

func (h *CustomerHTTPHandler) delete(c echo.Context, id model.IDParam) error {
	res, err := h.customerSvc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, res)
}

// bind reads json or form body into customer data
func (h *CustomerHTTPHandler) bind(c echo.Context) (model.CustomerInput, error) {
	var in model.CustomerInput
	if err := h.binder.BindBody(c, &in); err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload).SetInternal(err)
	}
	return in, nil
}

func queryID(c echo.Context) model.IDParam {
	values, ok := c.QueryParams()["id"]
	if !ok {
		return model.IDParam{}
	}

	var v string
	if len(values) > 0 {
		v = values[0]
	}
	return model.IDParam{Value: v, Present: true}
}

func pathID(c echo.Context) model.IDParam {
	return model.IDParam{Value: c.Param("id"), Present: true}
}

// HealthHTTPHandler reports whether customers store is reachable
type HealthHTTPHandler struct {
	ping func(context.Context) error
}

// NewHealthHTTPHandler builds new HealthHTTPHandler
func NewHealthHTTPHandler(ping func(context.Context) error) *HealthHTTPHandler {
	return &HealthHTTPHandler{ping: ping}
}

// Check pings store
// @Summary     Health check
// @Description Pings configured customers store
// @Tags        health
// @Produce     json
// @Success     200 {object} envelope
// @Failure     503 {object} envelope
// @Router      /health [get]
func (h *HealthHTTPHandler) Check(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		logrus.WithError(err).Warn("customers store didn't respond to ping")
		return echo.NewHTTPError(http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)).SetInternal(err)
	}
	return c.JSON(http.StatusOK, &envelope{Status: http.StatusOK, Message: msgHealthy})
}
