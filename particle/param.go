package particle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownParam is returned when a parameter name is not one of the fixed
// column names of a statistics file.
var ErrUnknownParam = errors.New("unknown parameter")

// Param identifies one column of a particle statistics file. The value of a
// Param is its column index.
type Param int
const (
	X Param = iota
	Y
	Z
	Vx
	Vy
	Vz
	VC // volume collision count
	SC // surface collision count

	ParamCount int = iota
)

var paramNames = [ParamCount]string{"X", "Y", "Z", "Vx", "Vy", "Vz", "VC", "SC"}

// Params returns every Param in column order.
func Params() []Param {
	ps := make([]Param, ParamCount)
	for i := range ps { ps[i] = Param(i) }
	return ps
}

// Column returns the index of the column that p is stored in.
func (p Param) Column() int { return int(p) }

func (p Param) Valid() bool { return p >= 0 && int(p) < ParamCount }

func (p Param) String() string {
	if !p.Valid() { return fmt.Sprintf("Param(%d)", int(p)) }
	return paramNames[p]
}

// ParseParam returns the Param with the given name. Names are case
// sensitive: "Vx" is a velocity, "vx" is an error.
func ParseParam(name string) (Param, error) {
	for i, s := range paramNames {
		if s == name { return Param(i), nil }
	}
	return -1, fmt.Errorf(
		"%w '%s': recognized names are %s",
		ErrUnknownParam, name, strings.Join(paramNames[:], " "),
	)
}

// ParseParams parses a space-separated list of parameter names. Runs of
// whitespace are treated as a single separator. The first unrecognized name
// causes an error.
func ParseParams(list string) ([]Param, error) {
	names := strings.Fields(list)
	ps := make([]Param, 0, len(names))
	for _, name := range names {
		p, err := ParseParam(name)
		if err != nil { return nil, err }
		ps = append(ps, p)
	}
	return ps, nil
}
