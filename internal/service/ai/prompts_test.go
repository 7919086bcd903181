package ai_test

import (
	"strings"
	"testing"

	"flashcards/backend/internal/service/ai"

	"github.com/stretchr/testify/require"
)

func TestGetExamplesPrompt(t *testing.T) {
	prompt := ai.GetExamplesPrompt("boarding pass", "a card allowing you to board", 3)
	require.Contains(t, prompt, "<headword>boarding pass</headword>")
	require.Contains(t, prompt, "<meaning>a card allowing you to board</meaning>")
	require.Contains(t, prompt, "<count>3</count>")
}

func TestGetExamplesPrompt_NoMeaning(t *testing.T) {
	prompt := ai.GetExamplesPrompt("stew", "", 5)
	require.Contains(t, prompt, "<headword>stew</headword>")
	require.NotContains(t, prompt, "<meaning>")
	require.Contains(t, prompt, "<count>5</count>")
}

func TestParseSentences(t *testing.T) {
	output := "The stew simmered all day.\n\nShe ordered a bowl of stew.\n"
	sentences := ai.ParseSentences(output)
	require.Equal(t, []string{
		"The stew simmered all day.",
		"She ordered a bowl of stew.",
	}, sentences)
}

func TestParseSentences_StripsMarkers(t *testing.T) {
	output := strings.Join([]string{
		"* The stew simmered all day.",
		"- She ordered a bowl of stew.",
		"1. He stirred the stew slowly.",
		"2) Grandma's stew is famous.",
		"• The stew needs more salt.",
	}, "\n")

	sentences := ai.ParseSentences(output)
	require.Equal(t, []string{
		"The stew simmered all day.",
		"She ordered a bowl of stew.",
		"He stirred the stew slowly.",
		"Grandma's stew is famous.",
		"The stew needs more salt.",
	}, sentences)
}

func TestParseSentences_KeepsYearPrefixedLines(t *testing.T) {
	// Digits not followed by a list marker are part of the sentence.
	sentences := ai.ParseSentences("2024 was the year she learned to cook stew.")
	require.Equal(t, []string{"2024 was the year she learned to cook stew."}, sentences)
}

func TestParseSentences_Empty(t *testing.T) {
	require.Empty(t, ai.ParseSentences(""))
	require.Empty(t, ai.ParseSentences("\n\n  \n"))
}
