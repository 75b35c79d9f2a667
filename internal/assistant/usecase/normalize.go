package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"student-id-card-generation/internal/assistant"
)

const (
	defaultNavigationMessage = "Navigation ready"
	unknownNavigationMessage = "Ready to navigate..."
	defaultOperationMessage  = "Action completed"
)

// responseShape tags the three reply layouts a workflow may produce.
type responseShape int

const (
	// shapeScalar is anything that is neither of the two shapes below.
	shapeScalar responseShape = iota
	// shapeObject is a bare JSON object.
	shapeObject
	// shapeList is an array whose first element is {"json": {...}}.
	shapeList
)

type workflowResponse struct {
	shape  responseShape
	fields map[string]json.RawMessage
	scalar json.RawMessage
}

func decodeResponse(raw json.RawMessage) workflowResponse {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return workflowResponse{shape: shapeScalar}
	}

	switch trimmed[0] {
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil {
			return workflowResponse{shape: shapeObject, fields: fields}
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil || len(items) == 0 {
			break
		}
		var first map[string]json.RawMessage
		if err := json.Unmarshal(items[0], &first); err == nil && first != nil {
			if inner, ok := first["json"]; ok {
				var fields map[string]json.RawMessage
				if err := json.Unmarshal(inner, &fields); err == nil && fields != nil {
					return workflowResponse{shape: shapeList, fields: fields}
				}
			}
		}
		return workflowResponse{shape: shapeScalar, scalar: items[0]}
	}
	return workflowResponse{shape: shapeScalar, scalar: trimmed}
}

// field returns the stringified member key. Absent and null members report false.
func (r workflowResponse) field(key string) (string, bool) {
	v, ok := r.fields[key]
	if !ok || isNull(v) {
		return "", false
	}
	return stringify(v), true
}

func (r workflowResponse) fieldOr(key, def string) string {
	if v, ok := r.field(key); ok {
		return v
	}
	return def
}

func normalizePageNavigation(r workflowResponse) assistant.Reply {
	if r.shape == shapeScalar {
		empty := ""
		return assistant.Reply{
			Message:     unknownNavigationMessage,
			RedirectURL: &empty,
			Action:      assistant.ActionMessage,
		}
	}

	redirect := r.fieldOr("redirect_url", "")
	return assistant.Reply{
		Message:     cleanMessage(r.fieldOr("message", defaultNavigationMessage)),
		RedirectURL: &redirect,
		Action:      r.fieldOr("action", assistant.ActionMessage),
	}
}

func normalizeOperation(r workflowResponse) assistant.Reply {
	var msg string
	if r.shape == shapeScalar {
		msg = stringify(r.scalar)
	} else {
		msg = defaultOperationMessage
		for _, key := range []string{"message", "MESSAGE"} {
			if v, ok := r.field(key); ok && v != "" {
				msg = v
				break
			}
		}
	}

	msg = cleanMessage(msg)
	msg = strings.NewReplacer("{", "", "}", "").Replace(msg)
	return assistant.Reply{Message: msg}
}

// cleanMessage trims, unescapes literal \n and \" sequences and strips one
// matching pair of outer quotes.
func cleanMessage(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}

// stringify renders a JSON value as text: strings verbatim, everything else compact.
func stringify(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
