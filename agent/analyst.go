package agent

import "google.golang.org/genai"

const model = "gemini-2.5-flash"

// NewAnalyst creates the statistics analyst, primed with the imported data
// rendered as text tables so it can answer questions without tool calls.
func NewAnalyst(tables string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert statistician for Welsh local authority data.
		He knows the imported datasets by heart and can compare areas, measures
		and years, compute trends, and explain what the figures mean.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert statistician for Welsh local authority open data.
			The user has imported the datasets below; each area lists its measures
			as year/value tables with an average, difference and percentage
			difference column.

			Answer questions strictly from these tables. When a figure is not in
			the data, say so instead of guessing. Keep answers short and cite the
			area code, measure code and years you used.

			` + tables}}},
		},
	}
}
