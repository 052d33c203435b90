package entity

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that decodes from a JSON number, a JSON string holding
// a number, or a bare form value.
type FlexInt int64

func (n FlexInt) Int64() int64 { return int64(n) }

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return n.UnmarshalText(b)
}

func (n *FlexInt) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("%q is not an integer", s)
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

// UnmarshalParam lets gin bind form and query values into FlexInt.
func (n *FlexInt) UnmarshalParam(param string) error {
	return n.UnmarshalText([]byte(param))
}
