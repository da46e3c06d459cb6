package extract

import "github.com/psinha/quizforge/internal/llm"

// QuestionsSchema is the fixed output schema for a chunk extraction call:
// an object with a `questions` array.
var QuestionsSchema = &llm.Schema{
	Name:        "question-extraction",
	Description: "Practice questions extracted from a document segment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt, in the document's original language",
						},
						"type": map[string]any{
							"type":        "string",
							"description": "Question category: single, multiple, or truefalse",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer options without list-marker prefixes",
						},
						"correctIndices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "Zero-based indices of the correct options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct options are correct",
						},
					},
					"required": []any{"text", "type", "options", "correctIndices", "explanation"},
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
