package http

import "student-id-card-generation/internal/assistant"

type messageReq struct {
	Message string `json:"message"`
}

func (r messageReq) toInput() assistant.MessageInput {
	return assistant.MessageInput{Message: r.Message}
}

// messageResp is the chat widget contract. It is written bare, without the
// standard response envelope.
type messageResp struct {
	Message     string  `json:"message"`
	RedirectURL *string `json:"redirect_url,omitempty"`
	Action      string  `json:"action,omitempty"`
	Delay       int     `json:"delay,omitempty"`
}

func (h *handler) newMessageResp(out assistant.MessageOutput) messageResp {
	return messageResp{
		Message:     out.Reply.Message,
		RedirectURL: out.Reply.RedirectURL,
		Action:      out.Reply.Action,
		Delay:       out.Reply.Delay,
	}
}
