package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"student-id-card-generation/internal/assistant"
	"student-id-card-generation/internal/router"
	"student-id-card-generation/pkg/workflow"
)

const (
	logoutMessage    = "👋 Goodbye Admin, logging out!"
	logoutRedirect   = "/logout"
	logoutDelay      = 7000
	closeChatMessage = "👋 See you next time!"
	closeChatDelay   = 3500
	backMessage      = "🔙 Returning to main admin page..."
	backRedirect     = "/admin"
)

func (uc *implUseCase) HandleMessage(ctx context.Context, input assistant.MessageInput) (assistant.MessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return assistant.MessageOutput{}, assistant.ErrEmptyMessage
	}

	out := uc.router.Classify(ctx, input.Message)
	uc.metrics.IncIntent(string(out.Intent))

	if reply, ok := shortCircuitReply(out.Intent); ok {
		return assistant.MessageOutput{Intent: out.Intent, Reply: reply}, nil
	}

	kind := workflow.Kind(out.Workflow)
	start := time.Now()
	raw, err := uc.workflow.Send(ctx, kind, input.Message)
	uc.metrics.ObserveWorkflow(string(kind), outcome(err), time.Since(start))

	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.HandleMessage workflow.Send(%s): %v", kind, err)
		if out.Intent == router.IntentPageNavigation {
			return assistant.MessageOutput{
				Intent: out.Intent,
				Reply:  assistant.Reply{Message: workflow.UserMessage(err), Action: assistant.ActionMessage},
			}, nil
		}
		return assistant.MessageOutput{Intent: out.Intent}, err
	}

	resp := decodeResponse(raw)
	var reply assistant.Reply
	if out.Intent == router.IntentPageNavigation {
		reply = normalizePageNavigation(resp)
	} else {
		reply = normalizeOperation(resp)
	}
	uc.l.Debugf(ctx, "assistant.usecase.HandleMessage intent=%s reply=%q", out.Intent, reply.Message)

	return assistant.MessageOutput{Intent: out.Intent, Reply: reply}, nil
}

func shortCircuitReply(intent router.Intent) (assistant.Reply, bool) {
	switch intent {
	case router.IntentLogout:
		return assistant.Reply{
			Message:     logoutMessage,
			RedirectURL: stringPtr(logoutRedirect),
			Action:      assistant.ActionLogout,
			Delay:       logoutDelay,
		}, true
	case router.IntentCloseChat:
		return assistant.Reply{
			Message: closeChatMessage,
			Action:  assistant.ActionCloseChat,
			Delay:   closeChatDelay,
		}, true
	case router.IntentBackNavigation:
		return assistant.Reply{
			Message:     backMessage,
			RedirectURL: stringPtr(backRedirect),
			Action:      assistant.ActionRedirect,
		}, true
	default:
		return assistant.Reply{}, false
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var wfErr *workflow.Error
	if errors.As(err, &wfErr) {
		return string(wfErr.Kind)
	}
	return string(workflow.ErrorKindInternal)
}

func stringPtr(s string) *string { return &s }
