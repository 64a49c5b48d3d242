package httpapi

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"storefront/commerce"
)

var wire = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonSerializer replaces echo's encoding/json serializer.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := wire.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := wire.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body: "+err.Error()).SetInternal(err)
	}
	return nil
}

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type dataBody struct {
	Data interface{} `json:"data"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, dataBody{Data: data})
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorBody{Code: code, Message: message})
}

// statusFor maps an error to its HTTP status and error code.
func statusFor(err error) (int, string, string) {
	if cmdErr, isCmd := commerce.AsCommandError(err); isCmd {
		switch cmdErr.Code {
		case commerce.StatusInvalidArgument:
			return http.StatusBadRequest, cmdErr.Code.String(), cmdErr.Message
		case commerce.StatusFailedPrecondition:
			return http.StatusConflict, cmdErr.Code.String(), cmdErr.Message
		case commerce.StatusNotFound:
			return http.StatusNotFound, cmdErr.Code.String(), cmdErr.Message
		}
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, isStr := he.Message.(string); isStr {
			msg = s
		}
		code := "INTERNAL"
		switch he.Code {
		case http.StatusBadRequest:
			code = "INVALID_ARGUMENT"
		case http.StatusNotFound:
			code = "NOT_FOUND"
		case http.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case http.StatusUnsupportedMediaType:
			code = "UNSUPPORTED_MEDIA_TYPE"
		}
		return he.Code, code, msg
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}

func fromError(c echo.Context, err error) error {
	status, code, message := statusFor(err)
	return fail(c, status, code, message)
}
