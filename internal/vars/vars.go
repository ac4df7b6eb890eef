// Package vars expands asset variables into concrete value combinations and
// resolves {var} placeholders in paths.
package vars

import (
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

var (
	ErrMissingVariableConfig = errors.NewKind("variable %q is declared but has no configured values")
	ErrUnresolvedVariable    = errors.NewKind("template %q contains variable %q but no value was given for it")
)

// Combinations returns every assignment of configured values to vars. The
// last declared variable varies fastest. With no vars a single empty
// combination is returned; a variable configured with no values yields no
// combinations at all.
func Combinations(vars []string, values map[string][]string) ([]map[string]string, error) {
	if len(vars) == 0 {
		return []map[string]string{{}}, nil
	}
	domains := make([][]string, len(vars))
	total := 1
	for i, name := range vars {
		d, ok := values[name]
		if !ok {
			return nil, ErrMissingVariableConfig.New(name)
		}
		domains[i] = d
		total *= len(d)
	}
	o := make([]map[string]string, 0, total)
	for n := 0; n < total; n++ {
		c := make(map[string]string, len(vars))
		k := n
		for i := len(vars) - 1; i >= 0; i-- {
			d := domains[i]
			c[vars[i]] = d[k%len(d)]
			k /= len(d)
		}
		o = append(o, c)
	}
	return o, nil
}

// Resolve replaces {var} placeholders of declared vars in template.
func Resolve(template string, vars []string, values map[string]string) (string, error) {
	var pairs []string
	for _, name := range vars {
		p := "{" + name + "}"
		if !strings.Contains(template, p) {
			continue
		}
		v, ok := values[name]
		if !ok {
			return "", ErrUnresolvedVariable.New(template, name)
		}
		pairs = append(pairs, p, v)
	}
	if len(pairs) == 0 {
		return template, nil
	}
	return strings.NewReplacer(pairs...).Replace(template), nil
}
