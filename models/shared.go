package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleID accepts a positive integer id sent either as a number or a numeric
// string. Zero means the id was absent; negative ids are rejected.
type FlexibleID int

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(b), `"`)
	if string(raw) == "null" {
		raw = nil
	}
	return f.UnmarshalParam(string(raw))
}

// UnmarshalParam parses the id from a form value.
func (f *FlexibleID) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid id %q: must be a positive integer", param)
	}
	*f = FlexibleID(n)
	return nil
}
