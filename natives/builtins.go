/*
File    : Tupa/natives/builtins.go
*/

// Package natives implements Tupã's fixed built-in registry: the six
// functions bound into the global scope at construction time, plus the
// module table `usar` splices from (natives/matematica.go,
// natives/registry.go).
package natives

import (
	"math"
	"strconv"
	"strings"

	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// Builtins returns the six always-available functions, ready to
// `Define` into the global scope.
func Builtins() map[string]*values.Native {
	return map[string]*values.Native{
		"tamanho":     {Name: "tamanho", Fn: tamanho},
		"tipo":        {Name: "tipo", Fn: tipo},
		"para_texto":  {Name: "para_texto", Fn: paraTexto},
		"para_numero": {Name: "para_numero", Fn: paraNumero},
		"para_lista":  {Name: "para_lista", Fn: paraLista},
		"raiz":        {Name: "raiz", Fn: raizBuiltin},
	}
}

func argError(name string, want, got int) error {
	return tupaerr.NewTypeError(0, 0, "%s espera %d argumento(s), recebeu %d", name, want, got)
}

// tamanho returns the length of a string, list, or dict.
func tamanho(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("tamanho", 1, len(args))
	}
	switch v := args[0].(type) {
	case *values.String:
		return &values.Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *values.List:
		return &values.Integer{Value: int64(len(v.Elements))}, nil
	case *values.Dict:
		return &values.Integer{Value: int64(len(v.Entries))}, nil
	default:
		return nil, tupaerr.NewTypeError(0, 0, "tamanho: tipo %s não tem tamanho", args[0].Type())
	}
}

// tipo returns the Type tag as a string.
func tipo(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("tipo", 1, len(args))
	}
	return &values.String{Value: string(args[0].Type())}, nil
}

// paraTexto returns a value's canonical text form.
func paraTexto(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("para_texto", 1, len(args))
	}
	return &values.String{Value: args[0].ToText()}, nil
}

// paraNumero parses a value's text into a number: integer if the text
// has no '.', else real; failure is a ValueError.
func paraNumero(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("para_numero", 1, len(args))
	}
	text := args[0].ToText()
	if !strings.Contains(text, ".") {
		if n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil {
			return &values.Integer{Value: n}, nil
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, tupaerr.NewValueError(0, 0, "para_numero: não é possível converter %q", text)
	}
	return &values.Real{Value: f}, nil
}

// paraLista converts an iterable (list, dict keys, or string characters)
// to a fresh list.
func paraLista(_ values.Runtime, args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("para_lista", 1, len(args))
	}
	switch v := args[0].(type) {
	case *values.List:
		out := make([]values.Value, len(v.Elements))
		copy(out, v.Elements)
		return &values.List{Elements: out}, nil
	case *values.Dict:
		out := make([]values.Value, len(v.Entries))
		for i, e := range v.Entries {
			out[i] = e.Key
		}
		return &values.List{Elements: out}, nil
	case *values.String:
		runes := []rune(v.Value)
		out := make([]values.Value, len(runes))
		for i, r := range runes {
			out[i] = &values.String{Value: string(r)}
		}
		return &values.List{Elements: out}, nil
	default:
		return nil, tupaerr.NewTypeError(0, 0, "para_lista: tipo %s não é iterável", args[0].Type())
	}
}

// raizBuiltin is the always-available square root, shared with the
// matematica module's export of the same name.
func raizBuiltin(_ values.Runtime, args []values.Value) (values.Value, error) {
	return raizOf(args)
}

func raizOf(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, argError("raiz", 1, len(args))
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, tupaerr.NewTypeError(0, 0, "raiz: argumento deve ser numérico")
	}
	return &values.Real{Value: math.Sqrt(f)}, nil
}

func asFloat(v values.Value) (float64, bool) {
	switch n := v.(type) {
	case *values.Integer:
		return float64(n.Value), true
	case *values.Real:
		return n.Value, true
	default:
		return 0, false
	}
}
