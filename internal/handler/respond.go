package handler

import "github.com/labstack/echo/v4"

// errorBody is the JSON shape of every API error.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func jsonError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, errorBody{Error: code, Message: message})
}
