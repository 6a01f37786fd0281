// Package core implements the assistant's callable tools. Each tool is one
// struct bound to the requesting user's identity; persistence is best-effort
// and a missing identity never fails the tool, it only changes the message.
package core

import (
	"time"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
)

// New builds the tool set for one conversation turn. userID may be empty for
// guest conversations; now supplies the reference date for default event
// dates.
func New(repo interfaces.Repository, userID string, now func() time.Time) []tool.Tool {
	if now == nil {
		now = time.Now
	}
	return []tool.Tool{
		&saveDismissalInfoTool{repo: repo, userID: userID},
		&addTimelineEventTool{repo: repo, userID: userID},
		&calculateDeadlinesTool{},
		&navigateToPageTool{},
		&addEvidenceTool{repo: repo, userID: userID, now: now},
		&checkDiscriminationTool{},
		&setReminderTool{repo: repo, userID: userID},
	}
}

// signInNote is appended to tool messages when data could not be persisted
// because the conversation is anonymous.
const signInNote = "Let op: je gegevens zijn niet opgeslagen. Log in om je tijdlijn en deadlines te bewaren."

// saveFailedNote is appended when a persistence write failed. The failure is
// swallowed into the saved_to_db flag; the conversation continues.
const saveFailedNote = "Het opslaan is helaas niet gelukt, probeer het later opnieuw."

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
