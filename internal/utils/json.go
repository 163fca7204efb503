/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/josephgoksu/fitcoach/types"
)

// A block labeled "json" wins over an earlier unlabeled one.
var (
	jsonFenceRegex    = regexp.MustCompile("(?s)```(?:json|JSON)\\b[ \\t]*\\r?\\n?(.*?)\\r?\\n?[ \\t]*```")
	genericFenceRegex = regexp.MustCompile("(?s)```[ \\t]*\\r?\\n?(.*?)\\r?\\n?[ \\t]*```")
)

// excerptLen bounds how much raw text a parse error carries.
const excerptLen = 200

// ParseError reports a response that contained no decodable JSON.
type ParseError struct {
	RawLength int
	Excerpt   string
	Fenced    bool
	Err       error
}

func (e *ParseError) Error() string {
	where := "response"
	if e.Fenced {
		where = "fenced block"
	}
	return fmt.Sprintf("no valid JSON in %s (raw length %d, starts with %q): %v", where, e.RawLength, e.Excerpt, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractCandidate returns the interior of the first ```json block, else of
// the first fenced block of any kind, else the whole trimmed text. The second
// result reports whether a fence was found.
func ExtractCandidate(raw string) (string, bool) {
	for _, re := range []*regexp.Regexp{jsonFenceRegex, genericFenceRegex} {
		if m := re.FindStringSubmatch(raw); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return strings.TrimSpace(raw), false
}

// ExtractJSONPayload decodes the JSON embedded in a model response into a
// generic structure. Numbers are kept as json.Number. The candidate must hold
// exactly one JSON value; no repair is attempted.
func ExtractJSONPayload(raw string) (any, error) {
	candidate, fenced := ExtractCandidate(raw)

	var out any
	if err := decodeStrict(candidate, &out); err != nil {
		return nil, wrapParseError(raw, fenced, err)
	}
	return out, nil
}

// ExtractAndParseJSON extracts JSON from an LLM response and unmarshals it into T.
func ExtractAndParseJSON[T any](raw string) (T, error) {
	var result T
	candidate, fenced := ExtractCandidate(raw)
	if err := decodeStrict(candidate, &result); err != nil {
		return result, wrapParseError(raw, fenced, err)
	}
	return result, nil
}

func decodeStrict(candidate string, v any) error {
	if candidate == "" {
		return errors.New("empty input")
	}
	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return errors.New("unexpected data after JSON value")
		}
		return err
	}
	return nil
}

func wrapParseError(raw string, fenced bool, err error) error {
	pe := &ParseError{
		RawLength: len(raw),
		Excerpt:   Truncate(strings.TrimSpace(raw), excerptLen),
		Fenced:    fenced,
		Err:       err,
	}
	return types.NewPipelineError(types.KindParse, "failed to parse AI response", pe)
}
