package http

import "inkwell/internal/modkit/swaggerkit"

// contribute summary paths to the served doc.json skeleton
func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, _ := spec["paths"].(map[string]any)
		if paths == nil {
			paths = map[string]any{}
			spec["paths"] = paths
		}
		paths["/summary/generate"] = map[string]any{
			"post": map[string]any{
				"tags":    []any{"Summary"},
				"summary": "Generate the daily summary",
				"responses": map[string]any{
					"200": map[string]any{"description": "ok"},
				},
			},
		}
		paths["/summary"] = map[string]any{
			"get": map[string]any{
				"tags":    []any{"Summary"},
				"summary": "List daily summaries",
				"responses": map[string]any{
					"200": map[string]any{"description": "ok"},
				},
			},
		}
		paths["/summary/{date}"] = map[string]any{
			"get": map[string]any{
				"tags":    []any{"Summary"},
				"summary": "Get the summary for a date",
				"responses": map[string]any{
					"200": map[string]any{"description": "ok"},
				},
			},
		}
	})
}
