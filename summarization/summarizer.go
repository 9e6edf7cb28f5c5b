package summarization

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-measlesmonitor/types"
)

// Summarize asks OpenAI for a short plain-language recap of one
// outbreak scenario, suitable for the dashboard's education panel.
func Summarize(ctx context.Context, client *openai.Client, sc types.Scenario) (string, error) {
	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleSystem,
					Content: "You are an assistant that explains school measles outbreak projections " +
						"to parents and administrators in plain, non-alarmist language.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(sc),
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // keep the recap focused
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(sc types.Scenario) string {
	name := sc.SchoolName
	if name == "" {
		name = "this school"
	}
	out := sc.Outcome

	return fmt.Sprintf(
		"Summarize this measles outbreak projection in 2-3 sentences for a school newsletter. "+
			"School: %s. Enrollment: %d students, MMR coverage %.1f%%. "+
			"Projected outcome of a single introduction: %.0f susceptible students, "+
			"attack rate %.1f%%, %.0f infections, %.0f hospitalizations, %.1f deaths, "+
			"%.0f missed school days. Mention that the estimate assumes no extra "+
			"interventions.\n\nSummary:",
		name, sc.Enrollment, sc.ImmunizationRate*100,
		out.Susceptible, out.AttackRate*100, out.TotalCases,
		out.Hospitalizations, out.Deaths, out.MissedSchoolDays,
	)
}

// FallbackSummary builds a deterministic recap used when no OpenAI key
// is configured. Same information, no prose generation.
func FallbackSummary(sc types.Scenario) string {
	name := sc.SchoolName
	if name == "" {
		name = "This school"
	}
	out := sc.Outcome

	if out.AttackRate == 0 {
		return fmt.Sprintf(
			"%s (%d students, %.1f%% MMR coverage) sits below the outbreak threshold: "+
				"a single measles introduction is not expected to spread. "+
				"The %.0f susceptible students would still be quarantined, "+
				"missing about %.0f school days in total.",
			name, sc.Enrollment, sc.ImmunizationRate*100,
			out.Susceptible, out.MissedSchoolDays,
		)
	}

	return fmt.Sprintf(
		"%s (%d students, %.1f%% MMR coverage) is above the outbreak threshold: "+
			"a single measles introduction is projected to infect about %.0f students "+
			"(attack rate %.1f%%), with roughly %.0f hospitalizations and %.0f missed "+
			"school days. The estimate assumes no additional interventions.",
		name, sc.Enrollment, sc.ImmunizationRate*100,
		math.Round(out.TotalCases), out.AttackRate*100,
		math.Round(out.Hospitalizations), out.MissedSchoolDays,
	)
}
