package quizgen

import "fmt"

const systemPrompt = `You are an expert educator and exam creator.
Your task is to generate multiple-choice questions for a given subject.
Return the output strictly as a valid JSON object with the following structure:
{
  "questions": [
    {
      "question": "Question text here. If the question involves code, format it using markdown code blocks (e.g., ` + "```python ... ```" + `).",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Correct Option Text (must match one of the options exactly)"
    }
  ]
}
Do not include any markdown formatting for the JSON itself (like ` + "```json" + `). Just return the raw JSON string.`

// buildUserMessage returns the single user instruction for a request.
func buildUserMessage(req GenerationRequest) string {
	return fmt.Sprintf("Generate %d multiple-choice questions about \"%s\".", req.Count, req.Subject)
}
