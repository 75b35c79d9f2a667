package router

import (
	"context"
	"strings"
)

// Classify picks exactly one intent for message. The first matching rule wins:
// logout, close chat, back navigation (whole message), page navigation,
// department operation, batch operation, then the batch default.
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	out := classify(message)
	r.l.Debugf(ctx, "%s: Classified as %s (matched %q, workflow %s)", LogPrefixClassify, out.Intent, out.Matched, out.Workflow)
	return out
}

func classify(message string) RouterOutput {
	msg := strings.ToLower(strings.TrimSpace(message))

	if kw, ok := containsAny(msg, logoutKeywords); ok {
		return RouterOutput{Intent: IntentLogout, Matched: kw}
	}
	if kw, ok := containsAny(msg, closeChatKeywords); ok {
		return RouterOutput{Intent: IntentCloseChat, Matched: kw}
	}
	if kw, ok := equalsAny(msg, backPhrases); ok {
		return RouterOutput{Intent: IntentBackNavigation, Matched: kw}
	}
	if kw, ok := containsAny(msg, pageNavigationPatterns); ok {
		return RouterOutput{Intent: IntentPageNavigation, Workflow: WorkflowPageNavigation, Matched: kw}
	}

	// A department keyword shadows the batch rule even when no department
	// operation is present; such messages end up on the default.
	if _, ok := containsAny(msg, departmentKeywords); ok {
		if op, ok := containsAny(msg, departmentOperations); ok {
			return RouterOutput{Intent: IntentDepartment, Workflow: WorkflowDepartment, Matched: op}
		}
	} else if _, ok := containsAny(msg, batchKeywords); ok {
		if op, ok := containsAny(msg, batchOperations); ok {
			return RouterOutput{Intent: IntentBatch, Workflow: WorkflowBatch, Matched: op}
		}
	}

	return RouterOutput{Intent: RouterFallbackIntent, Workflow: WorkflowFor(RouterFallbackIntent)}
}

// WorkflowFor returns the workflow that serves intent. Short-circuit intents map to "".
func WorkflowFor(intent Intent) Workflow {
	switch intent {
	case IntentDepartment:
		return WorkflowDepartment
	case IntentPageNavigation:
		return WorkflowPageNavigation
	case IntentLogout, IntentCloseChat, IntentBackNavigation:
		return ""
	default:
		return WorkflowBatch
	}
}

func containsAny(s string, needles []string) (string, bool) {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return n, true
		}
	}
	return "", false
}

func equalsAny(s string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if s == c {
			return c, true
		}
	}
	return "", false
}
