package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hotbray.GO/core/apperror"
)

// Fail writes err as {"error": msg} with the status of its kind. Server-side
// causes are logged and never sent to the client.
func Fail(c echo.Context, op string, err error) error {
	return FailWithMessage(c, op, err, "")
}

// FailWithMessage is Fail with a route-specific text for 5xx responses.
func FailWithMessage(c echo.Context, op string, err error, serverMsg string) error {
	status := apperror.HTTPStatus(err)
	msg := apperror.PublicMessage(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s error: %v", op, err)
		if serverMsg != "" {
			msg = serverMsg
		}
	}
	return c.JSON(status, echo.Map{"error": msg})
}

// BindMap decodes a JSON object body without a fixed schema.
func BindMap(c echo.Context) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := c.Bind(&body); err != nil {
		return nil, apperror.Validation("Invalid JSON body")
	}
	return body, nil
}

// QueryInt parses name as a positive integer, falling back to def.
func QueryInt(c echo.Context, name string, def int) int {
	if v, err := strconv.Atoi(c.QueryParam(name)); err == nil && v > 0 {
		return v
	}
	return def
}

// StringField returns body[key] when it is a string, else "".
func StringField(body map[string]interface{}, key string) string {
	if s, ok := body[key].(string); ok {
		return s
	}
	return ""
}
