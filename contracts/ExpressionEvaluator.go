package contracts

import "errors"

type ExpressionEvaluator interface {
	EvaluateTopLevel(raw string, sheet Sheet) (string, error)
	EvaluateExpression(expression string, sheet Sheet) (string, error)
}

var InvalidExpressionError = errors.New("invalid expression")

var UnknownFunctionError = errors.New("unknown function")

var ArityError = errors.New("wrong number of arguments")

var ReferenceDepthError = errors.New("too deeply nested cell references")
