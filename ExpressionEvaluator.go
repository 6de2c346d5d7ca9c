package main

import (
	"fmt"
	"math"
	"regexp"
	"sheetCalc/contracts"
	"strconv"
	"strings"
)

const ExpressionPrefix = "="

var numberRegex = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

type ExpressionEvaluator struct {
}

func NewExpressionEvaluator() *ExpressionEvaluator {
	return &ExpressionEvaluator{}
}

func (e *ExpressionEvaluator) IsExpression(raw string) bool {
	return strings.HasPrefix(raw, ExpressionPrefix)
}

func (e *ExpressionEvaluator) EvaluateTopLevel(raw string, sheet contracts.Sheet) (string, error) {
	// literal
	if !e.IsExpression(raw) {
		return raw, nil
	}

	return e.EvaluateExpression(strings.TrimPrefix(raw, ExpressionPrefix), sheet)
}

func (e *ExpressionEvaluator) EvaluateExpression(expression string, sheet contracts.Sheet) (string, error) {
	switch {
	case IsCellIndex(expression):
		return sheet.Get(expression)

	case IsFormula(expression):
		formula, err := ParseFormula(expression)
		if err != nil {
			return "", err
		}

		value, err := formula.Evaluate(sheet, e)
		if err != nil {
			return "", err
		}
		return FormatNumber(value), nil

	case numberRegex.MatchString(expression):
		// out of range literals become ±Inf, which is what ParseFloat returns along with the error
		value, _ := strconv.ParseFloat(expression, 64)
		return FormatNumber(value), nil
	}

	return "", fmt.Errorf("%w: '%s'", contracts.InvalidExpressionError, expression)
}

// FormatNumber prints integral values without a decimal point and everything
// else with exactly two decimals.
func FormatNumber(value float64) string {
	if math.Mod(value, 1) == 0 {
		// collapses -0 into 0
		if value == 0 {
			value = 0
		}
		return strconv.FormatFloat(value, 'f', 0, 64)
	}

	return strconv.FormatFloat(value, 'f', 2, 64)
}
