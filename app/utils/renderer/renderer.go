package renderer

import (
	"html/template"

	"github.com/unrolled/render"
)

// New builds the shared HTML renderer. The directory is a parameter so
// tests can point it at their own template set.
func New(dir string) *render.Render {
	return render.New(render.Options{
		Directory:  dir,
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
			},
		},
	})
}
