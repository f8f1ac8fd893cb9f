package answer

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NoAnswer is how an absent response is rendered for display.
const NoAnswer = "(no answer)"

// Response is a candidate's submitted value for one item: a single string,
// an ordered list of strings (multi-blank and multi-part items), or absent.
// The zero value is the absent response.
type Response struct {
	text  string
	parts []string
	list  bool
}

// Text returns a single-string response.
func Text(s string) Response {
	return Response{text: s}
}

// List returns an ordered multi-part response.
func List(parts ...string) Response {
	cp := make([]string, len(parts))
	copy(cp, parts)
	return Response{parts: cp, list: true}
}

// IsList reports whether the response was submitted as a list.
func (r Response) IsList() bool { return r.list }

// Text returns the submitted string. List and absent responses have no
// text and return "".
func (r Response) Text() string {
	if r.list {
		return ""
	}
	return r.text
}

// Parts returns a copy of the submitted list, or nil for a text response.
func (r Response) Parts() []string {
	if !r.list {
		return nil
	}
	cp := make([]string, len(r.parts))
	copy(cp, r.parts)
	return cp
}

// Blank reports whether the candidate left the item (or any of its
// blanks) empty.
func (r Response) Blank() bool {
	if !r.list {
		return strings.TrimSpace(r.text) == ""
	}
	if len(r.parts) == 0 {
		return true
	}
	for _, p := range r.parts {
		if strings.TrimSpace(p) == "" {
			return true
		}
	}
	return false
}

// Render returns a human-readable rendering of the submitted value.
// List parts are joined with " | ".
func (r Response) Render() string {
	if r.list {
		if len(r.parts) == 0 {
			return NoAnswer
		}
		return strings.Join(r.parts, " | ")
	}
	if strings.TrimSpace(r.text) == "" {
		return NoAnswer
	}
	return r.text
}

// UnmarshalJSON accepts a string, an array of strings, or null. Any other
// JSON value decodes to the absent response rather than failing, so one odd
// entry never rejects a whole submission.
func (r *Response) UnmarshalJSON(data []byte) error {
	*r = Response{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Text(s)
	case '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parts := make([]string, len(raw))
		for i, v := range raw {
			if s, ok := v.(string); ok {
				parts[i] = s
			}
		}
		*r = List(parts...)
	}
	return nil
}

// MarshalJSON writes the response back in the shape it was submitted.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.list {
		return json.Marshal(r.parts)
	}
	if r.text == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.text)
}
