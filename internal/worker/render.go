package worker

import (
	"fmt"
	"html/template"
	"strings"

	"cvforge/internal/document"
	"cvforge/internal/style"
)

// renderHTML 把结构化文档渲染成供无头浏览器打印的自包含 HTML。
// 样式表被转成每个区域一个 class 的 <style> 块，避免内联样式重复。
func renderHTML(doc document.Document) (string, error) {
	var builder strings.Builder
	data := printPage{
		Document: doc,
		CSS:      template.CSS(buildStylesheet(doc.Styles)),
	}
	if err := printTemplate.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render print html: %w", err)
	}
	return builder.String(), nil
}

type printPage struct {
	document.Document
	CSS template.CSS
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="page">
<div class="header">
<div class="name">{{.Header.Name}}</div>
{{if .Header.Contacts}}<div class="contactInfo">
{{- range $i, $item := .Header.Contacts}}{{if $i}}<span class="contactItem">|</span>{{end}}{{if $item.Href}}<a class="contactItem link" href="{{$item.Href}}">{{$item.Value}}</a>{{else}}<span class="contactItem">{{$item.Value}}</span>{{end}}{{end -}}
</div>{{end}}
</div>
{{range .Sections}}<div class="section{{if .Atomic}} atomic{{end}}">
{{if .Title}}<div class="sectionTitle">{{.Title}}</div>{{end}}
{{range .Entries}}<div class="entry">
<div class="entryHeader">
<div><span class="title">{{.Title}}</span>{{if .Subtitle}}<span class="subtitle">{{.Subtitle}}</span>{{end}}</div>
{{if .Dates}}<span class="dates">{{.Dates}}</span>{{end}}
</div>
{{range .Lines}}{{if .Bullet}}<div class="listItem"><span class="bulletPoint">&bull;</span><span class="listItemText">{{.Text}}</span></div>
{{else}}<div class="listItem"><span class="listItemText">{{.Text}}</span></div>
{{end}}{{end}}</div>
{{end}}{{if .Text}}<div class="skillsText">{{.Text}}</div>{{end}}
</div>
{{end}}</div>
</body>
</html>
`))

// buildStylesheet 把解析后的样式表转成 CSS。区域名直接作为 class 名。
func buildStylesheet(sheet style.Sheet) string {
	var b strings.Builder
	b.WriteString("@page { size: A4; margin: 0; }\n")
	b.WriteString("* { margin: 0; padding: 0; box-sizing: border-box; }\n")
	b.WriteString("a { color: inherit; }\n")
	b.WriteString(".atomic, .entry { break-inside: avoid; }\n")

	for _, region := range style.Regions {
		props := sheet[region]
		decls := cssDeclarations(props)
		if len(decls) == 0 {
			continue
		}
		fmt.Fprintf(&b, ".%s { %s }\n", region, strings.Join(decls, " "))
	}
	return b.String()
}

func cssDeclarations(p style.Props) []string {
	decls := make([]string, 0, 16)
	add := func(name, value string) {
		decls = append(decls, name+": "+value+";")
	}
	pt := func(v float64) string {
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".") + "pt"
	}

	if p.FontFamily != "" {
		add("font-family", p.FontFamily)
	}
	if p.FontSize != 0 {
		add("font-size", pt(p.FontSize))
	}
	if p.FontWeight != "" {
		add("font-weight", p.FontWeight)
	}
	if p.Color != "" {
		add("color", p.Color)
	}
	if p.BackgroundColor != "" {
		add("background-color", p.BackgroundColor)
	}
	if p.TextAlign != "" {
		add("text-align", p.TextAlign)
	}
	if p.TextTransform != "" {
		add("text-transform", p.TextTransform)
	}
	if p.TextDecoration != "" {
		add("text-decoration", p.TextDecoration)
	}
	if p.LetterSpacing != 0 {
		add("letter-spacing", pt(p.LetterSpacing))
	}
	if p.LineHeight != 0 {
		add("line-height", fmt.Sprintf("%g", p.LineHeight))
	}
	if p.MarginBottom != 0 {
		add("margin-bottom", pt(p.MarginBottom))
	}
	if p.MarginHorizontal != 0 {
		add("margin-left", pt(p.MarginHorizontal))
		add("margin-right", pt(p.MarginHorizontal))
	}
	if p.MarginLeft != 0 {
		add("margin-left", pt(p.MarginLeft))
	}
	if p.MarginRight != 0 {
		add("margin-right", pt(p.MarginRight))
	}
	if p.PaddingTop != 0 {
		add("padding-top", pt(p.PaddingTop))
	}
	if p.PaddingBottom != 0 {
		add("padding-bottom", pt(p.PaddingBottom))
	}
	if p.PaddingLeft != 0 {
		add("padding-left", pt(p.PaddingLeft))
	}
	if p.PaddingHorizontal != 0 {
		add("padding-left", pt(p.PaddingHorizontal))
		add("padding-right", pt(p.PaddingHorizontal))
	}
	if p.BorderBottomWidth != 0 {
		borderStyle := p.BorderBottomStyle
		if borderStyle == "" {
			borderStyle = "solid"
		}
		add("border-bottom", fmt.Sprintf("%s %s %s", pt(p.BorderBottomWidth), borderStyle, p.BorderBottomColor))
	}
	if p.BorderLeftWidth != 0 {
		add("border-left", fmt.Sprintf("%s solid %s", pt(p.BorderLeftWidth), p.BorderLeftColor))
	}
	if p.Width != 0 {
		add("width", pt(p.Width))
	}
	if p.Flex != 0 {
		add("flex", fmt.Sprintf("%g", p.Flex))
	}
	if p.FlexDirection != "" || p.JustifyContent != "" || p.AlignItems != "" || p.FlexWrap != "" {
		add("display", "flex")
	}
	if p.FlexDirection != "" {
		add("flex-direction", p.FlexDirection)
	}
	if p.JustifyContent != "" {
		add("justify-content", p.JustifyContent)
	}
	if p.FlexWrap != "" {
		add("flex-wrap", p.FlexWrap)
	}
	if p.AlignItems != "" {
		add("align-items", p.AlignItems)
	}
	return decls
}
