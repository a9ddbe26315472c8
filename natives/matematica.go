/*
File    : Tupa/natives/matematica.go
*/
package natives

import (
	"math"
	"math/rand"
	"time"

	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Matematica builds the `matematica` module's export table: trig,
// rounding, power, and random functions under their Portuguese names.
func Matematica() map[string]values.Value {
	return map[string]values.Value{
		"pi": &values.Real{Value: math.Pi},
		"e":  &values.Real{Value: math.E},

		"seno":     &values.Native{Name: "seno", Fn: unaryMath("seno", math.Sin)},
		"cosseno":  &values.Native{Name: "cosseno", Fn: unaryMath("cosseno", math.Cos)},
		"tangente": &values.Native{Name: "tangente", Fn: unaryMath("tangente", math.Tan)},
		"raiz":     &values.Native{Name: "raiz", Fn: raizBuiltin},
		"absoluto": &values.Native{Name: "absoluto", Fn: absoluto},
		"teto":     &values.Native{Name: "teto", Fn: unaryMath("teto", math.Ceil)},
		"piso":     &values.Native{Name: "piso", Fn: unaryMath("piso", math.Floor)},

		"potencia":        &values.Native{Name: "potencia", Fn: potencia},
		"aleatorio":       &values.Native{Name: "aleatorio", Fn: aleatorio},
		"aleatorio_entre": &values.Native{Name: "aleatorio_entre", Fn: aleatorioEntre},
	}
}

func unaryMath(name string, fn func(float64) float64) values.NativeFunc {
	return func(_ values.Runtime, args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, argError(name, 1, len(args))
		}
		f, ok := asFloat(args[0])
		if !ok {
			return nil, tupaerr.NewTypeError(0, 0, "%s: argumento deve ser numérico", name)
		}
		return &values.Real{Value: fn(f)}, nil
	}
}

// absoluto keeps the argument's own numeric type (integer stays integer,
// unlike the trig/rounding functions, which always yield a real).
func absoluto(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("absoluto", 1, len(args))
	}
	switch n := args[0].(type) {
	case *values.Integer:
		if n.Value < 0 {
			return &values.Integer{Value: -n.Value}, nil
		}
		return &values.Integer{Value: n.Value}, nil
	case *values.Real:
		return &values.Real{Value: math.Abs(n.Value)}, nil
	default:
		return nil, tupaerr.NewTypeError(0, 0, "absoluto: argumento deve ser numérico")
	}
}

func potencia(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, argError("potencia", 2, len(args))
	}
	a, aok := asFloat(args[0])
	b, bok := asFloat(args[1])
	if !aok || !bok {
		return nil, tupaerr.NewTypeError(0, 0, "potencia: argumentos devem ser numéricos")
	}
	_, aIsInt := args[0].(*values.Integer)
	_, bIsInt := args[1].(*values.Integer)
	result := math.Pow(a, b)
	if aIsInt && bIsInt && b >= 0 {
		return &values.Integer{Value: int64(result)}, nil
	}
	return &values.Real{Value: result}, nil
}

func aleatorio(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 0 {
		return nil, argError("aleatorio", 0, len(args))
	}
	return &values.Real{Value: rand.Float64()}, nil
}

func aleatorioEntre(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, argError("aleatorio_entre", 2, len(args))
	}
	lo, loOk := args[0].(*values.Integer)
	hi, hiOk := args[1].(*values.Integer)
	if !loOk || !hiOk {
		return nil, tupaerr.NewTypeError(0, 0, "aleatorio_entre: argumentos devem ser inteiros")
	}
	if hi.Value < lo.Value {
		return nil, tupaerr.NewValueError(0, 0, "aleatorio_entre: intervalo inválido")
	}
	return &values.Integer{Value: lo.Value + rand.Int63n(hi.Value-lo.Value+1)}, nil
}
