package llm

import (
	"fmt"
	"moodmate/internal/model"
	"strings"

	"github.com/samber/lo"
)

const SystemInstruction = "You are an empathetic mental wellness coach."

const moodPromptTemplate = `
You are a mood coach. Analyze the following mood logs and give a gentle, helpful emotional summary in 3-4 sentences.

Moods:
%s
`

func formatMoodEntry(e model.MoodEntry, i int) string {
	return fmt.Sprintf("Entry %d: Emoji: %s, Note: %s", i+1, e.DisplayEmoji(), e.DisplayNote())
}

func BuildMoodPrompt(entries []model.MoodEntry) string {
	lines := lo.Map(entries, formatMoodEntry)
	return fmt.Sprintf(moodPromptTemplate, strings.Join(lines, "\n"))
}
