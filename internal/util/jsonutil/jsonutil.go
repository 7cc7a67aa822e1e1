package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrNoJSON = errors.New("jsonutil: no JSON object found")

var reFence = regexp.MustCompile("```(?:json)?")

// StripFences removes markdown code-fence markers from s and trims
// surrounding whitespace. Models in freeform mode like to wrap JSON in
// ```json ... ``` even when told not to.
func StripFences(s string) string {
	return strings.TrimSpace(reFence.ReplaceAllString(s, ""))
}

// CarveObject returns the first balanced top-level JSON object embedded in
// s, or ErrNoJSON. Brace counting ignores braces inside string literals.
func CarveObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSON
}

// UnmarshalFlex tries to unmarshal raw into v with best effort:
// 1) direct unmarshal
// 2) after stripping markdown fences
// 3) after carving the first embedded JSON object
// The last parse error is returned when all attempts fail.
func UnmarshalFlex(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	err := json.Unmarshal(trimmed, v)
	if err == nil {
		return nil
	}
	stripped := StripFences(string(trimmed))
	if err2 := json.Unmarshal([]byte(stripped), v); err2 == nil {
		return nil
	}
	carved, cerr := CarveObject(stripped)
	if cerr != nil {
		return err
	}
	return json.Unmarshal([]byte(carved), v)
}

// MarshalNoEscape encodes v into JSON without escaping <, >, & into <
// and friends, which keeps prompts and logs readable.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
