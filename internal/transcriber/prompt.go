package transcriber

import "fmt"

const promptTemplate = `Transcribe this audio recording completely and accurately.

Rules:
- %s
- Write out everything that is said, without summarizing or omitting passages.
- Use proper punctuation and paragraph breaks between speakers or topics.
- Do not add commentary, timestamps or speaker labels.
- Output only the transcript text.`

// buildPrompt renders the fixed transcription instruction with the source
// language hint. "auto" (or empty) lets the model detect the language.
func buildPrompt(sourceLanguage string) string {
	hint := "Detect the spoken language automatically."
	if sourceLanguage != "" && sourceLanguage != "auto" {
		hint = fmt.Sprintf("The audio is in %s.", sourceLanguage)
	}
	return fmt.Sprintf(promptTemplate, hint)
}
