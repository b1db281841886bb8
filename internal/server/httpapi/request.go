package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vkurdin/study-organizer/internal/validate"
)

// requestValues collects path params and the decoded JSON body for
// validation. Numbers are kept as json.Number so numeric strings and
// JSON numbers validate the same way. An absent body is fine.
func requestValues(c echo.Context) (*validate.Values, error) {
	params := map[string]string{}
	for i, name := range c.ParamNames() {
		params[name] = c.ParamValues()[i]
	}

	body := map[string]any{}
	if r := c.Request().Body; r != nil {
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	return validate.NewValues(params, body), nil
}

// checkRequest parses request values and runs the endpoint's rules.
// On any failure it writes the response itself and returns ok=false.
func (s *Server) checkRequest(c echo.Context, rules ...validate.Rule) (v *validate.Values, ok bool, err error) {
	v, err = requestValues(c)
	if err != nil {
		return nil, false, c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if fieldErrs := validate.Check(v, rules...); len(fieldErrs) > 0 {
		return nil, false, c.JSON(http.StatusForbidden, echo.Map{"errors": fieldErrs})
	}
	return v, true, nil
}

// badRequest reports a business or persistence failure with its raw message.
func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}
