package ai

import (
	"fmt"
	"strings"
)

// GetExamplesPrompt returns the system prompt for generating example
// sentences for a vocabulary entry.
func GetExamplesPrompt(headword string, meaning string, count int) string {
	meaningTag := ""
	if meaning != "" {
		meaningTag = fmt.Sprintf("\n<meaning>%s</meaning>", meaning)
	}

	return fmt.Sprintf(`You are an English teacher writing example sentences for vocabulary flashcards.

<context>
<headword>%s</headword>%s
<count>%d</count>
</context>

<instructions>
1. Write exactly the number of sentences given in <count>
2. Every sentence MUST contain the headword (inflected forms are fine)
3. Output plain text ONLY, one sentence per line
4. Use everyday situations a language learner would recognize
5. Keep each sentence under 20 words
6. NEVER use Markdown formatting or bullet symbols (no *, -, 1., 2.)
7. NEVER add introductions or conclusions
8. NO leading or trailing newlines
</instructions>`, headword, meaningTag, count)
}

// ParseSentences splits a model response into individual sentences, one per
// line. Bullet markers and list numbering are stripped in case the model
// ignores the formatting instructions.
func ParseSentences(output string) []string {
	var sentences []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*-• \t")
		line = stripListNumber(line)
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
	}
	return sentences
}

// stripListNumber removes a leading "1." / "2)" style marker.
func stripListNumber(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return line
	}
	if line[i] == '.' || line[i] == ')' {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
