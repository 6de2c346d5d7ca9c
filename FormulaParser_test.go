package main

import (
	"github.com/stretchr/testify/assert"
	"sheetCalc/contracts"
	"testing"
)

func TestIsFormula(t *testing.T) {
	formulas := map[string]bool{
		"ADD(1,2)":         true,
		"ADD()":            true,
		"MOD(A1, 2)":       true,
		"FOO(x)":           true,
		"add(1,2)":         false,
		"ADD(1,2":          false,
		"ADD 1,2":          false,
		"A1":               false,
		"ADD(1)(2)":        false,
		"ADD(1, ADD(2,3))": false,
		" ADD(1,2)":        false,
	}

	for formula, expected := range formulas {
		assert.Equal(t, expected, IsFormula(formula), formula)
	}
}

func TestParseFormula(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		formula, err := ParseFormula("ADD(1, 2 ,  A3)")

		assert.NoError(t, err)
		assert.Equal(t, "ADD", formula.Name)
		assert.Equal(t, []string{"1", "2", "A3"}, formula.Arguments)
	})

	t.Run("no_arguments", func(t *testing.T) {
		for _, s := range []string{"ADD()", "ADD(   )"} {
			formula, err := ParseFormula(s)

			assert.NoError(t, err)
			assert.Empty(t, formula.Arguments)
		}
	})

	t.Run("empty_argument", func(t *testing.T) {
		formula, err := ParseFormula("ADD(1,,2)")

		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "", "2"}, formula.Arguments)

		formula, err = ParseFormula("ADD(,1)")

		assert.NoError(t, err)
		assert.Equal(t, []string{"", "1"}, formula.Arguments)
	})

	t.Run("trailing_empty_arguments", func(t *testing.T) {
		expectedArguments := map[string][]string{
			"ADD(1,2,)":    {"1", "2"},
			"ADD(1, 2 , )": {"1", "2"},
			"ADD(1,,)":     {"1"},
			"ADD(1,)":      {"1"},
			"ADD( , )":     {},
		}

		for s, expected := range expectedArguments {
			formula, err := ParseFormula(s)

			assert.NoError(t, err, s)
			assert.Equal(t, expected, formula.Arguments, s)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		formula, err := ParseFormula("ADD(1")

		assert.Nil(t, formula)
		assert.ErrorIs(t, err, contracts.InvalidExpressionError)
		assert.EqualError(t, err, "invalid expression: 'ADD(1'")
	})
}

func TestFormula_Evaluate(t *testing.T) {
	evaluator := NewExpressionEvaluator()

	t.Run("known_function", func(t *testing.T) {
		formula := &Formula{Name: "MULTIPLY", Arguments: []string{"2", "3.5"}}

		value, err := formula.Evaluate(nil, evaluator)
		assert.NoError(t, err)
		assert.Equal(t, 7.0, value)
	})

	t.Run("unknown_function", func(t *testing.T) {
		formula := &Formula{Name: "FOO", Arguments: []string{"1", "2"}}

		_, err := formula.Evaluate(nil, evaluator)
		assert.ErrorIs(t, err, contracts.UnknownFunctionError)
		assert.EqualError(t, err, "unknown function: 'FOO'")
	})
}
