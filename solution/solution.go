// Package solution reads solver output: an optional status line, an optional
// reported objective, and "v" lines assigning values to variable tokens.
// Solver output is frequently truncated or noisy, so parsing is best-effort
// and never fails; malformed tokens are dropped.
package solution

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Assignment is a parsed solution. Missing map entries mean "unassigned".
type Assignment struct {
	Status      string
	ReportedObj *float64
	Values      map[string]float64
}

// Value looks up a variable token such as "b3" or "r1".
func (a *Assignment) Value(token string) (float64, bool) {
	v, ok := a.Values[token]
	return v, ok
}

// Parse consumes solver output. Later "v" entries for the same token
// overwrite earlier ones.
func Parse(r io.Reader) *Assignment {
	sol := &Assignment{Values: make(map[string]float64)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "s "):
			sol.Status = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "o "):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				break
			}
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				sol.ReportedObj = &v
			}
		case strings.HasPrefix(line, "v "):
			for _, tok := range strings.Fields(line)[1:] {
				name, val, found := strings.Cut(tok, "=")
				if !found {
					continue
				}
				v, err := strconv.ParseFloat(val, 64)
				if err != nil {
					continue
				}
				sol.Values[name] = v
			}
		}
	}
	return sol
}
