package utils

import (
	"html/template"
	"log"
)

func InitTemplate() *template.Template {
	const tmpl = `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Measures</title>
		<style>
			table { border-collapse: collapse; font-family: sans-serif; }
			td, th { border: 1px solid #999; padding: 4px 10px; }
		</style>
	</head>
	<body>
		<h1>Measures</h1>
		<table>
			<tr><th>Metric</th><th>Component</th><th>Value</th><th>Color</th></tr>
			{{range .Rows}}
				<tr>
					<td>{{.Metric}}</td>
					<td>{{.Component}}</td>
					<td style="{{.Style}}">{{.Value}}</td>
					<td>{{.Color}}</td>
				</tr>
			{{end}}
		</table>
	</body>
	</html>
	`
	t, err := template.New("measures").Parse(tmpl)
	if err != nil {
		log.Fatalf("template parsing failed: %v", err)
	}
	return t
}
