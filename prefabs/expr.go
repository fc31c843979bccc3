package prefabs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Env holds the variables visible to Number expressions.
type Env struct {
	ViewportW float64
	ViewportH float64
}

const exprPrelude = "math := import(\"math\")\n__out := "

// EvalNumber evaluates a Number expression. Plain literals skip the script
// engine; anything else runs as a tengo expression with viewport_w,
// viewport_h and the math module in scope.
func EvalNumber(expr string, env Env) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return v, nil
	}

	script := tengo.NewScript([]byte(exprPrelude + expr))
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("viewport_w", env.ViewportW); err != nil {
		return 0, err
	}
	if err := script.Add("viewport_h", env.ViewportH); err != nil {
		return 0, err
	}

	compiled, err := script.Run()
	if err != nil {
		return 0, fmt.Errorf("prefabs: eval %q: %w", expr, err)
	}
	out := compiled.Get("__out")
	switch out.ValueType() {
	case "int", "float":
		return out.Float(), nil
	}
	return 0, fmt.Errorf("prefabs: eval %q: result is %s, not a number", expr, out.ValueType())
}

func (n Number) Eval(env Env) (float64, error) {
	return EvalNumber(n.Expr, env)
}
