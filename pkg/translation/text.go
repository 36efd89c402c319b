package translation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidText is returned when a value cannot be read as translatable text.
var ErrInvalidText = errors.New("invalid translatable text")

// Text is a localizable string as written in game data.
// In JSON it is either a plain string or an object:
//
//	{"str": "door", "str_pl": "doors", "ctxt": "furniture"}
//
// "str_sp" sets both singular and plural to the same value.
type Text struct {
	Str   string `json:"str"`
	StrPl string `json:"str_pl,omitempty"`
	Ctxt  string `json:"ctxt,omitempty"`
}

// IsEmpty reports whether there is nothing to translate
func (t Text) IsEmpty() bool {
	return t.Str == ""
}

// HasPlural reports whether a plural form was given
func (t Text) HasPlural() bool {
	return t.StrPl != ""
}

// ParseText reads a decoded JSON value (string or object) as Text.
func ParseText(v any) (Text, error) {
	switch val := v.(type) {
	case string:
		return Text{Str: val}, nil
	case map[string]any:
		return parseTextObject(val)
	default:
		return Text{}, fmt.Errorf("%w: unexpected %T", ErrInvalidText, v)
	}
}

func parseTextObject(obj map[string]any) (Text, error) {
	var t Text
	var err error

	if sp, ok := obj["str_sp"]; ok {
		if t.Str, err = stringField("str_sp", sp); err != nil {
			return Text{}, err
		}
		t.StrPl = t.Str
	} else {
		str, ok := obj["str"]
		if !ok {
			return Text{}, fmt.Errorf("%w: object has no \"str\"", ErrInvalidText)
		}
		if t.Str, err = stringField("str", str); err != nil {
			return Text{}, err
		}
		if pl, ok := obj["str_pl"]; ok {
			if t.StrPl, err = stringField("str_pl", pl); err != nil {
				return Text{}, err
			}
		}
	}

	if ctxt, ok := obj["ctxt"]; ok {
		if t.Ctxt, err = stringField("ctxt", ctxt); err != nil {
			return Text{}, err
		}
	}
	return t, nil
}

func stringField(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidText, name, v)
	}
	return s, nil
}

// UnmarshalJSON supports both the plain string and the object format
func (t *Text) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseText(v)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
