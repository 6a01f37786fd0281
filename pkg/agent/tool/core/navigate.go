package core

import (
	"context"
	"fmt"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
)

// navigateToPageTool signals a client-side route change. It touches no
// storage; an unknown page key falls back to the root route rather than
// failing the turn.
type navigateToPageTool struct{}

func (t *navigateToPageTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "navigate_to_page",
		Description: "Breng de gebruiker naar een pagina in de applicatie, bijvoorbeeld de tijdlijn of het deadline-overzicht.",
		Parameters: map[string]*tool.Parameter{
			"page": {
				Type:        tool.TypeString,
				Description: "De pagina om naartoe te gaan",
				Required:    true,
				Enum:        pageKeyValues(),
			},
		},
	}
}

func (t *navigateToPageTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	page := types.PageKey(stringArg(args, "page"))
	route := page.Route()

	tool.Update(ctx, fmt.Sprintf("Navigeren naar %s", route))

	return &tool.Result{
		Action:   "navigate",
		Navigate: route,
		Message:  fmt.Sprintf("Ik breng je naar de %s (%s).", page.DisplayName(), route),
		Data: map[string]any{
			"page":  page.String(),
			"route": route,
		},
	}, nil
}

func pageKeyValues() []string {
	all := types.AllPageKeys()
	values := make([]string, len(all))
	for i, p := range all {
		values[i] = p.String()
	}
	return values
}
