package api

import "html/template"

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t":             templateTranslate,
		"reading":       templateReading,
		"trendLabel":    templateTrendLabel,
		"isActiveRoute": isActiveTemplateRoute,
	}
}
