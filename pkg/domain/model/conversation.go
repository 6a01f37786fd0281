package model

import "github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"

// ConversationMessage is one turn in a chat or voice exchange. Ordering is
// insertion order and messages are never edited, only appended. All
// conversation continuity is caller-supplied; the server holds no session
// state across turns.
type ConversationMessage struct {
	Role    types.Role `json:"role"`
	Content string     `json:"content"`
}
