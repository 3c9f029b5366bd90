package agent

import "google.golang.org/genai"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// newFacilitator creates the expert leading the conversation.
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.
			The user owns a small portfolio of rental properties and plans renovations on them.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They keep the context of your previous questions.

			Devise a plan of questions to ask to each expert and come up with the best response.
			Always check the figures with the Analyst before quoting them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert reading the user's portfolio through the toolbox.
func NewAnalyst(model string, t *Toolbox) *Expert {
	lib := t.Functions()
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst, in charge of the user's properties and renovations.
		Ask the Analyst about values, equity, cash flow, return ratios and renovation budgets.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a real estate analyst in charge of the user's portfolio.
				Use the Tools to read the properties, the renovations and the derived figures.
				Never make up a figure: every amount you quote comes from a tool.
				The Topic tool explains how each figure is computed.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewMarketResearcher creates the expert searching the web for market data.
func NewMarketResearcher(model string) *Expert {
	return &Expert{
		Name: "MarketResearcher",
		Description: `This is a real estate market researcher, aware of rents, prices, mortgage rates
		and renovation costs. Ask whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of the residential real estate market. You Leverage Google Search to
			ground your assertions: local rents and prices, contractor rates, material costs.
			`}}},
		},
	}
}
