// Package prompts implements MCP prompt handlers for brief analysis.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the brief-review MCP prompt.
// It guides the AI through analyzing a brief and preparing the client reply.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("brief-review",
		mcp.WithPromptDescription(
			"Review a client brief before quoting. Detects red flags, estimates effort "+
				"and drafts the questions and reply email for the client.",
		),
		mcp.WithArgument("brief",
			mcp.ArgumentDescription("The client's brief. If omitted, you will be asked to paste it."),
		),
		mcp.WithArgument("mode",
			mcp.ArgumentDescription("Analysis mode: 'quick' or 'deep'. Default: quick"),
		),
	)
}

// Handle processes the brief-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	brief := ""
	mode := "quick"
	if args := req.Params.Arguments; args != nil {
		brief = strings.TrimSpace(args["brief"])
		if m, ok := args["mode"]; ok && m != "" {
			mode = m
		}
	}

	var text string
	if brief == "" {
		text = "I received a project brief from a client and want to review it before quoting.\n\n" +
			"Please:\n" +
			"1. Ask me to paste the brief\n" +
			fmt.Sprintf("2. Run `brief_analyze` on it with mode='%s'\n", mode) +
			steps
	} else {
		text = "I received this project brief from a client and want to review it before quoting:\n\n" +
			"---\n" + brief + "\n---\n\n" +
			"Please:\n" +
			"1. Read the brief above\n" +
			fmt.Sprintf("2. Run `brief_analyze` with this brief and mode='%s'\n", mode) +
			steps
	}

	return &mcp.GetPromptResult{
		Description: "Review a client brief",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}

const steps = "3. Summarize the risk score and the most severe red flags in plain words\n" +
	"4. Tell me whether the estimate looks realistic for the risks found\n" +
	"5. Adapt the suggested questions and reply email to the client's tone\n" +
	"6. Offer to save the brief with `brief_save`"
