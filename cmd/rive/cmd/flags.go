package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// flagSpec lists the flags a command accepts. Valued flags take the next
// argument or an inline "=value"; switches take none. Aliases such as -o
// map to their long name.
type flagSpec struct {
	valued   []string
	switches []string
	aliases  map[string]string
}

// parsedArgs holds the result of parse.
type parsedArgs struct {
	values     map[string]string
	set        map[string]bool
	positional []string
}

func (s flagSpec) parse(args []string) (*parsedArgs, error) {
	p := &parsedArgs{values: make(map[string]string), set: make(map[string]bool)}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			p.positional = append(p.positional, arg)
			continue
		}
		name, value, inline := strings.Cut(arg, "=")
		if long, ok := s.aliases[name]; ok {
			name = long
		}
		switch {
		case slices.Contains(s.switches, name):
			if inline {
				return nil, fmt.Errorf("%s does not take a value", name)
			}
			p.set[name] = true
		case slices.Contains(s.valued, name):
			if !inline {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("%s requires a value", name)
				}
				value = args[i+1]
				i++
			}
			p.values[name] = value
			p.set[name] = true
		default:
			return nil, fmt.Errorf("unknown flag: %s", arg)
		}
	}
	return p, nil
}

func (p *parsedArgs) str(name, def string) string {
	if v, ok := p.values[name]; ok {
		return v
	}
	return def
}

func (p *parsedArgs) int(name string, def int) (int, error) {
	v, ok := p.values[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, v)
	}
	return n, nil
}

func (p *parsedArgs) float(name string, def float64) (float64, error) {
	v, ok := p.values[name]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, v)
	}
	return f, nil
}

// file returns the single positional argument naming the input file.
func (p *parsedArgs) file(usage string) (string, error) {
	if len(p.positional) != 1 {
		return "", fmt.Errorf("expected one file argument\n\nUsage: %s", usage)
	}
	return p.positional[0], nil
}
