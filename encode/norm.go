//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package encode

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Form specifies the Unicode normalization form applied to text
// before it is encoded.
type Form int

// Normalization forms.
const (
	None Form = iota
	NFC
	NFKC
)

var forms = map[Form]string{
	None: "none",
	NFC:  "nfc",
	NFKC: "nfkc",
}

func (f Form) String() string {
	name, ok := forms[f]
	if ok {
		return name
	}
	return fmt.Sprintf("{Form %d}", f)
}

// ParseForm parses the normalization form name.
func ParseForm(name string) (Form, error) {
	for k, v := range forms {
		if v == name {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown normalization form '%s'", name)
}

// Normalize returns s in the normalization form f. The form None
// returns s unmodified.
func Normalize(s string, f Form) string {
	switch f {
	case NFC:
		return norm.NFC.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	default:
		return s
	}
}
