// Package render adapts the host's html templates to Fiber's Views
// contract. Page handlers only ever deal in template names like
// "user/login"; the template files themselves belong to the host app.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Engine struct {
	directory string

	mu        sync.RWMutex
	templates *template.Template
}

func New(directory string) *Engine {
	return &Engine{directory: directory}
}

// Load parses every .html file under the views directory. Template names
// are the file paths relative to the directory, without the extension.
func (e *Engine) Load() error {
	root := template.New("")

	err := filepath.WalkDir(e.directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		rel, err := filepath.Rel(e.directory, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), ".html")

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.templates = root
	e.mu.Unlock()
	return nil
}

func (e *Engine) Render(w io.Writer, name string, bind interface{}, layouts ...string) error {
	e.mu.RLock()
	templates := e.templates
	e.mu.RUnlock()

	if templates == nil {
		if err := e.Load(); err != nil {
			return err
		}
		e.mu.RLock()
		templates = e.templates
		e.mu.RUnlock()
	}

	tmpl := templates.Lookup(name)
	if tmpl == nil {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.Execute(w, bind)
}
