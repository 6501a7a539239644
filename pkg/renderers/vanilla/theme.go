package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext flattens a resolved theme configuration into the map the
// page template reads. A nil config yields an empty context so the template
// skips the theme chrome entirely.
func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}

	ctx := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"tokens":  cfg.Tokens,
	}
	if style := cssVarsStyle(cfg.CSSVars); style != "" {
		ctx["css_vars_style"] = style
	}
	if cfg.AssetURL != nil {
		if href := cfg.AssetURL(StylesheetAssetKey); href != "" {
			ctx["stylesheet"] = href
		}
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
