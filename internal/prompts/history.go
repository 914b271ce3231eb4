package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryPrompt handles the brief-history MCP prompt.
// It instructs the AI to read and compare previously saved briefs.
type HistoryPrompt struct{}

// NewHistoryPrompt creates a HistoryPrompt.
func NewHistoryPrompt() *HistoryPrompt {
	return &HistoryPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *HistoryPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("brief-history",
		mcp.WithPromptDescription(
			"Look back at saved briefs: risk trends, recurring red flags "+
				"and which clients still need an answer.",
		),
	)
}

// Handle processes the brief-history prompt request.
func (p *HistoryPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Saved brief history",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `brief_list` to see my saved briefs.\n\n" +
						"Then:\n" +
						"1. Show them in a table with title, date, project type and risk score\n" +
						"2. Point out the red flags that come up most often\n" +
						"3. Use `brief_get` on the riskiest brief and summarize what to clarify first\n" +
						"4. Suggest which briefs could be deleted with `brief_delete`",
				),
			},
		},
	}, nil
}
