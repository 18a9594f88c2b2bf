package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftlister/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the data of a failed response caused by a classified error
type ErrorBody struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidation:           http.StatusBadRequest,
	domain.KindUnsupportedChain:     http.StatusBadRequest,
	domain.KindUnsupportedOperation: http.StatusUnprocessableEntity,
	domain.KindConfig:               http.StatusServiceUnavailable,
	domain.KindFetch:                http.StatusBadGateway,
	domain.KindApproval:             http.StatusBadGateway,
	domain.KindListing:              http.StatusBadGateway,
	domain.KindBurn:                 http.StatusBadGateway,
}

// StatusOf maps an error to the http status it is rendered with
func StatusOf(err error) int {
	if kind, ok := domain.KindOf(err); ok {
		if status, ok := kindStatus[kind]; ok {
			return status
		}
	}
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// MakeErrorResp renders err with the status of its kind
func MakeErrorResp(c echo.Context, err error) error {
	return MakeJsonResp(c, StatusOf(err), err)
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		if kind, ok := domain.KindOf(err); ok {
			data = ErrorBody{Kind: kind, Message: domain.MessageOf(err)}
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
