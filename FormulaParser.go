package main

import (
	"fmt"
	"regexp"
	"sheetCalc/contracts"
	"strings"
)

// Arguments are not allowed to contain parentheses, so nested calls like
// ADD(1, ADD(2, 3)) are not formulas. Nesting goes through cell references.
var formulaRegex = regexp.MustCompile(`^([A-Z]+)\(([^)]*)\)$`)

const argumentsDelimiter = ","

type Formula struct {
	Name      string
	Arguments []string
}

func IsFormula(s string) bool {
	return formulaRegex.MatchString(s)
}

func ParseFormula(s string) (*Formula, error) {
	matches := formulaRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("%w: '%s'", contracts.InvalidExpressionError, s)
	}

	formula := &Formula{
		Name:      matches[1],
		Arguments: make([]string, 0),
	}

	if strings.TrimSpace(matches[2]) == "" {
		return formula, nil
	}

	for _, argument := range strings.Split(matches[2], argumentsDelimiter) {
		formula.Arguments = append(formula.Arguments, strings.TrimSpace(argument))
	}

	// trailing empty arguments are dropped: ADD(1,2,) is ADD(1,2)
	for len(formula.Arguments) > 0 && formula.Arguments[len(formula.Arguments)-1] == "" {
		formula.Arguments = formula.Arguments[:len(formula.Arguments)-1]
	}

	return formula, nil
}

func (f *Formula) Evaluate(sheet contracts.Sheet, evaluator contracts.ExpressionEvaluator) (float64, error) {
	function, err := LookupFunction(f.Name)
	if err != nil {
		return 0, err
	}

	return function.Call(f.Arguments, sheet, evaluator)
}
