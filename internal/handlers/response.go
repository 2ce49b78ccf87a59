package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers/internal/errors"
	"github.com/umalmyha/customers/internal/service"
)

// envelope is the only response shape of the api, message is an array for 405 on query endpoints
type envelope struct {
	Status  int `json:"status"`
	Message any `json:"message"`
	Data    any `json:"data,omitempty"`
}

func respond(c echo.Context, res *service.Result) error {
	return c.JSON(res.Status, &envelope{
		Status:  res.Status,
		Message: res.Message,
		Data:    res.Data,
	})
}

func respondError(c echo.Context, err error) error {
	if e, ok := errors.As(err); ok {
		return c.JSON(e.Status(), e)
	}

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		msg := httpErr.Message
		if httpErr.Code >= http.StatusInternalServerError && httpErr.Code != http.StatusServiceUnavailable {
			msg = http.StatusText(http.StatusInternalServerError)
		}
		return c.JSON(httpErr.Code, &envelope{Status: httpErr.Code, Message: msg})
	}

	return c.JSON(http.StatusInternalServerError, &envelope{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	})
}

// HTTPErrorHandler renders any error returned by handlers or middleware into envelope
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	err = queryRouteMethodErr(err, c)

	entry := logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request().Method,
		"uri":    c.Request().RequestURI,
	})

	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = respondError(c, err)
	}

	if err != nil {
		logrus.WithError(err).Error("failed to write error response")
	}
}

// queryRouteMethodErr gives router 405 on query id routes the same array message Dispatch returns
func queryRouteMethodErr(err error, c echo.Context) error {
	if !stderrors.Is(err, echo.ErrMethodNotAllowed) {
		return err
	}

	switch c.Path() {
	case CustomersPath, APICustomersPath:
		return echo.NewHTTPError(http.StatusMethodNotAllowed, []string{c.Request().Method, msgMethodNotAllowed})
	default:
		return err
	}
}

func statusOf(err error) int {
	if e, ok := errors.As(err); ok {
		return e.Status()
	}

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
