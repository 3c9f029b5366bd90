package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/estate"
	"github.com/etnz/estate/docs"
	"github.com/etnz/estate/renderer"
	"github.com/etnz/estate/store"
	"google.golang.org/genai"
)

// Toolbox gives the assistant a read-only view of a portfolio.
type Toolbox struct {
	Store     *store.Store
	Formatter estate.Formatter
	Now       func() time.Time
}

func (t *Toolbox) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

func noParameters() *genai.Schema { return &genai.Schema{Type: genai.TypeObject} }

func idParameter(what string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id": {Type: genai.TypeString, Description: "The " + what + " id."},
		},
		Required: []string{"id"},
	}
}

func markdownResponse(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// Functions lists the tools of the toolbox.
func (t *Toolbox) Functions() []*Func {
	filters := make([]string, 0, len(estate.FilterKeys))
	for _, k := range estate.FilterKeys {
		filters = append(filters, string(k))
	}

	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Dashboard",
				Description: "Dashboard gives the portfolio overview: value, equity, cash flow, renovation status, the renovations that need attention and a line per property.",
				Parameters:  noParameters(),
				Response:    markdownResponse("The dashboard in markdown."),
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				p := t.Store.Portfolio(ctx)
				return renderer.RenderDashboard(estate.NewDashboard(p.Properties, p.Renovations, t.now()), t.Formatter), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Financials",
				Description: "Financials details cap rate, cash-on-cash return, monthly and annual income and expenses, cash flow per property and the renovation budget by category.",
				Parameters:  noParameters(),
				Response:    markdownResponse("The financials report in markdown."),
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				p := t.Store.Portfolio(ctx)
				return renderer.FinancialsMarkdown(p.Properties, p.Renovations, t.Formatter), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Properties",
				Description: "Properties lists every property with its id, type, value, equity, cash flow and number of open renovations.",
				Parameters:  noParameters(),
				Response:    markdownResponse("A markdown table of the properties."),
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				p := t.Store.Portfolio(ctx)
				return renderer.PropertiesMarkdown(p.Properties, p.Renovations, t.Formatter), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Property",
				Description: "Property details a single property and its open renovations. Use Properties first to find the id.",
				Parameters:  idParameter("property"),
				Response:    markdownResponse("The property details in markdown."),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				id, err := stringArg(args, "id")
				if err != nil {
					return "", err
				}
				p := t.Store.Portfolio(ctx)
				prop, ok := p.Properties.Find(id)
				if !ok {
					return "", fmt.Errorf("%w %q", estate.ErrUnknownProperty, id)
				}
				return renderer.PropertyMarkdown(prop, p.Renovations, t.Formatter), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Renovations",
				Description: "Renovations lists renovation projects, optionally selected by a filter and restricted to the open projects of a property.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"filter": {
							Type:        genai.TypeString,
							Description: "all, pending, in_progress, high (open high priority) or completed. Defaults to all.",
							Enum:        filters,
						},
						"property_id": {
							Type:        genai.TypeString,
							Description: "Only list the open renovations of this property.",
						},
					},
				},
				Response: markdownResponse("A markdown table of the renovations, with the count of each filter."),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				f, err := stringArg(args, "filter")
				if err != nil {
					return "", err
				}
				key, err := estate.ParseFilterKey(f)
				if err != nil {
					return "", err
				}
				propertyID, err := stringArg(args, "property_id")
				if err != nil {
					return "", err
				}
				p := t.Store.Portfolio(ctx)
				rs := p.Renovations
				if propertyID != "" {
					rs = rs.ForProperty(propertyID)
				}
				return renderer.RenovationsMarkdown(rs, p.Properties, key, t.Formatter), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Renovation",
				Description: "Renovation details a single renovation project, including its description and notes.",
				Parameters:  idParameter("renovation"),
				Response:    markdownResponse("The renovation details in markdown."),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				id, err := stringArg(args, "id")
				if err != nil {
					return "", err
				}
				p := t.Store.Portfolio(ctx)
				r, ok := p.Renovations.Find(id)
				if !ok {
					return "", fmt.Errorf("%w %q", estate.ErrUnknownRenovation, id)
				}
				return renderer.RenovationMarkdown(r, p.Properties, t.Formatter), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Topic",
				Description: "Topic returns the user manual about a topic: metrics explains how every figure is computed.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString, Description: "The topic name, readme lists them all."},
					},
				},
				Response: markdownResponse("The manual page in markdown."),
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				name, err := stringArg(args, "name")
				if err != nil {
					return "", err
				}
				if name == "" {
					name = "readme"
				}
				return docs.GetTopic(name)
			},
		},
	}
}
