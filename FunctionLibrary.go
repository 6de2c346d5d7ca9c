package main

import (
	"fmt"
	"github.com/expr-lang/expr/vm/runtime"
	"math"
	"regexp"
	"sheetCalc/contracts"
	"strconv"
	"strings"
)

type FunctionName string

const (
	FunctionAdd      FunctionName = "ADD"
	FunctionSubtract FunctionName = "SUBTRACT"
	FunctionMultiply FunctionName = "MULTIPLY"
	FunctionDivide   FunctionName = "DIVIDE"
	FunctionMod      FunctionName = "MOD"
)

// Function is a left fold over the evaluated arguments.
type Function struct {
	Name     FunctionName
	Arity    int
	Variadic bool
	reduce   func(accumulator float64, value float64) float64
}

// The runtime helpers return float64 for two float64 operands.
var functionLibrary = map[FunctionName]*Function{
	FunctionAdd: {
		Name: FunctionAdd, Arity: 2, Variadic: true,
		reduce: func(a, b float64) float64 { return runtime.Add(a, b).(float64) },
	},
	FunctionSubtract: {
		Name: FunctionSubtract, Arity: 2,
		reduce: func(a, b float64) float64 { return runtime.Subtract(a, b).(float64) },
	},
	FunctionMultiply: {
		Name: FunctionMultiply, Arity: 2, Variadic: true,
		reduce: func(a, b float64) float64 { return runtime.Multiply(a, b).(float64) },
	},
	FunctionDivide: {
		Name: FunctionDivide, Arity: 2,
		reduce: func(a, b float64) float64 { return runtime.Divide(a, b) },
	},
	FunctionMod: {
		Name: FunctionMod, Arity: 2,
		reduce: flooredModulo,
	},
}

// ArgumentsCountError is returned when a function is called with a wrong number of arguments.
type ArgumentsCountError struct {
	Function FunctionName
	Expected int
	AtLeast  bool
	Actual   int
}

func (e *ArgumentsCountError) Error() string {
	expected := strconv.Itoa(e.Expected)
	if e.AtLeast {
		expected = "at least " + expected
	}

	return fmt.Sprintf("%s for '%s': expected %s, got %d", contracts.ArityError, e.Function, expected, e.Actual)
}

func (e *ArgumentsCountError) Unwrap() error {
	return contracts.ArityError
}

func LookupFunction(name string) (*Function, error) {
	function, ok := functionLibrary[FunctionName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", contracts.UnknownFunctionError, name)
	}

	return function, nil
}

func (f *Function) Call(arguments []string, sheet contracts.Sheet, evaluator contracts.ExpressionEvaluator) (float64, error) {
	if err := f.checkArity(len(arguments)); err != nil {
		return 0, err
	}

	values := make([]float64, len(arguments))
	for index, argument := range arguments {
		result, err := evaluator.EvaluateExpression(argument, sheet)
		if err != nil {
			return 0, err
		}
		values[index] = toFloat(result)
	}

	accumulator := values[0]
	for _, value := range values[1:] {
		accumulator = f.reduce(accumulator, value)
	}

	return accumulator, nil
}

func (f *Function) checkArity(actual int) error {
	if actual == f.Arity || (f.Variadic && actual > f.Arity) {
		return nil
	}

	return &ArgumentsCountError{
		Function: f.Name,
		Expected: f.Arity,
		AtLeast:  f.Variadic,
		Actual:   actual,
	}
}

// flooredModulo keeps the sign of the divisor: MOD(-7, 3) = 2.
func flooredModulo(a, b float64) float64 {
	remainder := math.Mod(a, b)
	if remainder != 0 && (remainder < 0) != (b < 0) {
		remainder += b
	}

	return remainder
}

var leadingNumberRegex = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]+)?|\.[0-9]+)([eE][+-]?[0-9]+)?`)

// toFloat reads the leading number of a value; text without one counts as 0,
// so a reference to a free-text cell contributes nothing.
func toFloat(value string) float64 {
	number := leadingNumberRegex.FindString(strings.TrimSpace(value))
	if number == "" {
		return 0
	}

	result, _ := strconv.ParseFloat(number, 64)
	return result
}
