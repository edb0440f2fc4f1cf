package triage

import (
	"fmt"
	"strings"
	"time"

	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
)

const summaryExcerptLength = 300

const TriageSystemPrompt = `You triage product feedback. Priority is one of none, low, medium, high. ` +
	`Type is one of bug, tweak, feature. Answer with JSON only.`

const SummarySystemPrompt = `You summarize product feedback for the team that owns the product. ` +
	`Answer in concise markdown.`

const DigestSystemPrompt = `You digest public community discussion about a product for its team. ` +
	`Answer in concise markdown.`

// BulkTriagePrompt lists tickets in the order given, which callers keep stable.
func BulkTriagePrompt(org *organization.Organization, tickets []*ticket.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Classify each ticket submitted to %q.\n", org.Name())
	b.WriteString(`Return a JSON array with one object per ticket: {"id": "<ticket id>", "priority": "none|low|medium|high", "type": "bug|tweak|feature"}.` + "\n\n")
	for _, t := range tickets {
		fmt.Fprintf(&b, "id: %s\ntitle: %s\ncurrent type: %s\nvotes: %d\ndescription: %s\n\n",
			t.ID(), t.Title(), t.Tag(), t.Votes(), t.Description())
	}
	return b.String()
}

func SingleTriagePrompt(org *organization.Organization, t *ticket.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Classify this ticket submitted to %q.\n", org.Name())
	b.WriteString(`Return one JSON object: {"priority": "none|low|medium|high", "type": "bug|tweak|feature"}.` + "\n")
	if t.HasImage() {
		b.WriteString("A screenshot from the reporter is attached.\n")
	}
	fmt.Fprintf(&b, "\ntitle: %s\ncurrent type: %s\nvotes: %d\ndescription: %s\n",
		t.Title(), t.Tag(), t.Votes(), t.Description())
	return b.String()
}

func SummaryPrompt(org *organization.Organization, tickets []*ticket.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the %d feedback tickets for %q. Group recurring themes, call out the most voted and highest priority items, and end with suggested next steps.\n\n",
		len(tickets), org.Name())
	for i, t := range tickets {
		fmt.Fprintf(&b, "%d. [%s | priority %s | %s | %d votes] %s\n   %s\n",
			i+1, t.Tag(), t.Priority(), t.Status(), t.Votes(), t.Title(), excerpt(t.Description(), summaryExcerptLength))
	}
	return b.String()
}

func DigestPrompt(org *organization.Organization, posts []Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Digest these %d recent Reddit posts mentioning %q. Summarize sentiment, recurring complaints and requests, and list the posts worth replying to.\n\n",
		len(posts), org.Name())
	for i, p := range posts {
		fmt.Fprintf(&b, "%d. r/%s by u/%s, score %d, %d comments, %s\n   %s\n   %s\n   %s\n",
			i+1, p.Subreddit, p.Author, p.Score, p.Comments,
			time.Unix(p.CreatedAt, 0).UTC().Format(time.DateOnly),
			p.Title, excerpt(p.Body, summaryExcerptLength), p.URL)
	}
	return b.String()
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
