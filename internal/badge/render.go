package badge

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strconv"

	"onebase/internal/constant"
)

//go:embed templates/badge.svg.tmpl
var templateFS embed.FS

var svgTemplate = template.Must(template.New("badge.svg.tmpl").Funcs(template.FuncMap{
	"num": func(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) },
}).ParseFS(templateFS, "templates/badge.svg.tmpl"))

type svgView struct {
	Badge
	Title         string
	Color         string
	Radius        int
	Circumference float64
}

// RenderSVG writes b as a standalone SVG document.
func RenderSVG(w io.Writer, b Badge) error {
	return svgTemplate.Execute(w, svgView{
		Badge:         b,
		Title:         constant.BadgeTitle,
		Color:         constant.BrandColor,
		Radius:        IndicatorRadius,
		Circumference: Circumference,
	})
}

// SVG renders b into memory.
func SVG(b Badge) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderSVG(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
