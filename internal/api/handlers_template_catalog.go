package api

var pageTemplates = []string{
	"dashboard",
	"diary",
	"summaries",
	"prescriptions",
	"not_found",
}
