package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/maintdesk/maintdesk/internal/client/models"
)

// Chat enters the assistant sub-loop: the history is printed once, then each
// line is sent as a prompt. '/clear' wipes the conversation, '/del <id>'
// removes one message, '/back' or an empty line returns to the main prompt.
func (a *App) Chat(ctx context.Context) error {
	if err := a.chat.Fetch(ctx); err != nil {
		return err
	}

	for _, m := range a.chat.Items() {
		a.printChatMessage(m)
	}
	fmt.Fprintln(a.out, dimStyle.Render("Type a message, '/clear' to wipe the conversation, '/back' to leave."))

	for {
		line, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			return nil
		}
		if id, ok := strings.CutPrefix(line, "/del "); ok {
			if err := a.chat.DeleteMessage(ctx, strings.TrimSpace(id)); err != nil {
				fmt.Fprintln(a.out, errStyle.Render(err.Error()))
				continue
			}
			fmt.Fprintln(a.out, okStyle.Render("Message deleted."))
			continue
		}
		switch line {
		case "", "/back":
			return nil
		case "/clear":
			if err := a.chat.Clear(ctx); err != nil {
				fmt.Fprintln(a.out, errStyle.Render(err.Error()))
				continue
			}
			fmt.Fprintln(a.out, okStyle.Render("Conversation cleared."))
		default:
			reply, err := a.chat.Send(ctx, line)
			if err != nil {
				fmt.Fprintln(a.out, errStyle.Render("send failed: "+err.Error()))
				continue
			}
			a.printChatMessage(*reply)
		}
	}
}

func (a *App) printChatMessage(m models.ChatMessage) {
	label := "assistant"
	if m.Role == models.ChatRoleUser {
		label = "you"
		if m.User != nil {
			label = m.User.Username
		}
	}
	fmt.Fprintf(a.out, "%s %s %s\n", dimStyle.Render(m.ID), headerStyle.Render(label+":"), m.Content)
}
