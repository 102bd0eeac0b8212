package cli

import (
	"fmt"
	"time"

	"github.com/orbitmsg/orbit/internal/client/controller"
	"github.com/orbitmsg/orbit/internal/client/ui"
)

// stdioRenderer печатает разрешённый вид поста в терминал.
// Реализует controller.PostRenderer и ui.Surface.
type stdioRenderer struct{}

var _ controller.PostRenderer = (*stdioRenderer)(nil)
var _ ui.Surface = (*stdioRenderer)(nil)

func (r *stdioRenderer) RenderPost(data controller.PostData, now time.Time) {
	fmt.Println()
	fmt.Printf("--- %s (@%s) · %s ---\n",
		data.Author.DisplayName, data.Author.Handle, formatAge(data.Post.PostedAt, now))
	fmt.Println(data.Post.Body)

	if len(data.Groups) > 0 {
		fmt.Print("Groups:")
		for _, g := range data.Groups {
			fmt.Printf(" #%s", g.Name)
		}
		fmt.Println()
	}

	if data.HasPreviousReplies {
		fmt.Println("  … older replies available (type 'prev' to load)")
	}
	for _, reply := range data.Replies {
		fmt.Printf("  %s: %s\n", reply.Author.DisplayName, reply.Reply.Body)
	}

	if data.Composer.Expanded {
		state := "draft"
		if data.Composer.Submitting {
			state = "sending…"
		}
		fmt.Printf("[composer %s] %s\n", state, data.Composer.Body)
	}
}

func (r *stdioRenderer) RenderError(message string) {
	fmt.Println(message)
}

// ApplyDirective применяет директивы ядра к терминалу.
// Скроллы в терминале не имеют смысла и игнорируются.
func (r *stdioRenderer) ApplyDirective(d ui.Directive) {
	if _, ok := d.(ui.RedirectToLogin); ok {
		fmt.Println("Session expired. Please run 'orbit login' again.")
	}
}

func (c *Cli) applyDirective(d ui.Directive) {
	(&stdioRenderer{}).ApplyDirective(d)
}

// formatAge форматирует возраст поста для терминала
func formatAge(postedAt, now time.Time) string {
	if postedAt.IsZero() {
		return "sometime"
	}
	age := now.Sub(postedAt)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return postedAt.Format("2006-01-02")
	}
}
