package Models

import (
	"encoding/json"
	"log"
	"strconv"
)

// LooseUserID accepts the user-id shapes the document endpoints receive in
// the wild: a JSON number, a numeric string, a username string, or nothing.
// Numbers and numeric strings resolve to an int; anything else resolves to
// NULL rather than failing the request.
type LooseUserID struct {
	present bool
	num     *int
	raw     string
}

func (u *LooseUserID) UnmarshalJSON(b []byte) error {
	u.present = true
	if string(b) == "null" {
		u.present = false
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		v := int(n)
		u.num = &v
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if v, err := strconv.Atoi(s); err == nil {
		u.num = &v
		return nil
	}
	u.raw = s
	return nil
}

// Int resolves the value to a nullable user id, logging a warning when a
// non-numeric string was supplied.
func (u LooseUserID) Int() *int {
	if !u.present {
		return nil
	}
	if u.num != nil {
		return u.num
	}
	if u.raw != "" {
		log.Printf("Warning: Non-numeric user ID provided: %s", u.raw)
	}
	return nil
}
