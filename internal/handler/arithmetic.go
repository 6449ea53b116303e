package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/heightconv/internal/conversion"
)

// arithResponse is the JSON body of GET /v1/arith/:op.
type arithResponse struct {
	Op     string `json:"op"`
	A      int    `json:"a"`
	B      int    `json:"b"`
	Result int    `json:"result"`
}

var binaryOps = map[string]func(a, b int) (int, error){
	"sum":      func(a, b int) (int, error) { return conversion.Sum(a, b), nil },
	"diff":     func(a, b int) (int, error) { return conversion.Diff(a, b), nil },
	"product":  func(a, b int) (int, error) { return conversion.Product(a, b), nil },
	"quotient": conversion.Quotient,
}

// Arithmetic exposes the integer helpers: GET /v1/arith/:op?a=10&b=2.
func Arithmetic(c echo.Context) error {
	name := c.Param("op")
	op, ok := binaryOps[name]
	if !ok {
		return jsonError(c, http.StatusNotFound, "unknown_operation", "supported operations: sum, diff, product, quotient")
	}

	a, err := strconv.Atoi(c.QueryParam("a"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_operand", "a must be an integer")
	}
	b, err := strconv.Atoi(c.QueryParam("b"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_operand", "b must be an integer")
	}

	result, err := op(a, b)
	if errors.Is(err, conversion.ErrDivisionByZero) {
		return jsonError(c, http.StatusBadRequest, "division_by_zero", err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, arithResponse{Op: name, A: a, B: b, Result: result})
}
