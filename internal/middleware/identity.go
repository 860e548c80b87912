package middleware

import "github.com/labstack/echo/v4"

// requestID returns the id assigned by echo's RequestID middleware, which
// writes it to the response header, falling back to the inbound header.
func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
