package generate

import (
	"fmt"
	"strings"
)

// editorialRules are the newsroom guidelines the model must follow.
// Instructions are in English since small models adhere to English
// instructions better, while the output itself is Gujarati.
const editorialRules = `
1. **Headline (શીર્ષક):**
   - **Length:** 8 to 18 words.
   - **Structure (L-R Rule):** Subject (who) + Event (what happened) + Effect (result).
     * Example: RBI (Who) + Repo Rate Hike (Event) + Loans Expensive (Effect).
   - **Punch Line (The Hook):** Start with 2-3 words setting the mood.

2. **Intro (First Paragraph):**
   - **Length:** 40-60 words.
   - **Content:** Must cover 5W1H (Who, What, Where, When, Why, How).
   - **Style:** Precise and direct.

3. **Body (Second Paragraph & Details):**
   - **Length:** 100-120 words.
   - **Content:** Detailed explanation, background, reasons, and future implications.
   - **Total Article Length:** 140-180 words (Strict).

4. **Vocabulary (Precision of Verbs):**
   - Use 'ભડકો' (sudden rise) or 'કૂદકે ને ભૂસકે' (continuous rise) instead of simple 'increase'.
   - Use 'ગાબડું' or 'કડાકો' instead of 'decrease'.
   - Use 'સરકારની લાલ આંખ' instead of 'government stopped'.

5. **No Repetition:** Information in the headline or intro should not be blindly repeated.
`

// SystemPrompt instructs the model to act as a Gujarati news editor and
// return the article as JSON.
const SystemPrompt = `You are a Senior Gujarati News Editor following strict editorial guidelines.

**TASK:** Write a Gujarati news report based on the provided SOURCE MATERIAL.

**EDITORIAL RULES:**` + editorialRules + `
**OUTPUT FORMAT:**
Return ONLY valid JSON with 'title' and 'content' fields.
{
  "title": "Punch Line: Subject + Event + Effect (8-18 words)",
  "content": "<p><strong>Intro:</strong> [5W1H summary, 40-60 words]</p><p><strong>Details:</strong> [Background & Implications, 100-120 words]</p>"
}
`

// BuildUserPrompt builds the user prompt containing keypoints and the
// scraped source material.
func BuildUserPrompt(keypoints, sourceContext string) string {
	if sourceContext == "" {
		sourceContext = "No source provided"
	}

	var sb strings.Builder
	sb.WriteString("SOURCE DATA:\n")
	fmt.Fprintf(&sb, "Keypoints: %s\n", keypoints)
	fmt.Fprintf(&sb, "Source Material: %s\n\n", sourceContext)
	sb.WriteString("INSTRUCTION:\n")
	sb.WriteString("Write a news report in GUJARATI following the EDITORIAL RULES.\n")
	sb.WriteString("Return ONLY VALID JSON in the specified format.")
	return sb.String()
}

// TruncateContext caps the source material so the prompt stays inside
// the model's context budget. The cut is made on a rune boundary.
func TruncateContext(sourceContext string, maxRunes int) string {
	runes := []rune(sourceContext)
	if len(runes) <= maxRunes {
		return sourceContext
	}
	return string(runes[:maxRunes]) + "... [TRUNCATED]"
}
