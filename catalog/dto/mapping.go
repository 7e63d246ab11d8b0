package dto

import "fmt"

// mapSlice projeta cada elemento mantendo a ordem. nil continua nil.
func mapSlice[S, D any](in []S, f func(S) D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// mapPtr projeta um valor opcional. nil continua nil.
func mapPtr[S, D any](in *S, f func(S) D) *D {
	if in == nil {
		return nil
	}
	out := f(*in)
	return &out
}

// mapVariant é o único ponto de conversão entre enums: a tabela precisa cobrir
// todas as variantes de origem. Variante sem entrada é erro de programação.
func mapVariant[S comparable, D any](table map[S]D) func(S) D {
	return func(v S) D {
		out, ok := table[v]
		if !ok {
			panic(fmt.Sprintf("dto: unmapped variant %v", v))
		}
		return out
	}
}
