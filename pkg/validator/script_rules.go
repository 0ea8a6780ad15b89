package validator

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ScriptCheck builds a cross-field check from a boolean expression over the
// named operand fields, e.g. "price * quantity >= 10000".
//
// The check is skipped when any operand is nil, so absent values are left to
// field rules. When the expression is false the rule is rejected with its
// name as code and the operand values, in order, as arguments.
func ScriptCheck(expression string, operands ...string) (CrossFieldCheck, error) {
	if len(operands) == 0 {
		return nil, fmt.Errorf("%w: %q declares no operands", ErrInvalidExpression, expression)
	}

	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	return func(target Target, rule Rule, report *Report) error {
		return runScript(program, operands, target, rule, report)
	}, nil
}

func runScript(program *vm.Program, operands []string, target Target, rule Rule, report *Report) error {
	env := make(map[string]any, len(operands))
	args := make([]any, 0, len(operands))
	for _, name := range operands {
		f, ok := lookupField(target, name)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, target.ObjectName(), name)
		}
		if f.Value == nil {
			return nil
		}
		env[name] = f.Value
		args = append(args, f.Value)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return fmt.Errorf("%w: result is %T", ErrInvalidExpression, out)
	}
	if !ok {
		report.Reject(rule.Name, args...)
	}
	return nil
}
