package site

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/everview/everview/pkg/lightbox"
	"github.com/everview/everview/pkg/photo"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

//go:embed assets/index.tmpl
var indexTmpl string

//go:embed assets/view.tmpl
var viewTmpl string

//go:embed assets/style.css
var styleText string

// Render writes the site for a into c.OutDir. The lightbox pages are produced by driving the
// viewer carried by ctx; Render panics if there is none.
func Render(ctx context.Context, c *Config, a *Assembly) error {
	v := lightbox.FromContext(ctx)

	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if err := copyAssets(c.StaticDir, c.OutDir); err != nil {
		return fmt.Errorf("copyAssets: %w", err)
	}

	if err := writeIndex(c, a); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	if err := writeViews(c, a, v); err != nil {
		return fmt.Errorf("write views: %w", err)
	}

	return nil
}

func copyAssets(inDir string, outDir string) error {
	if inDir == "" {
		return nil
	}
	for _, ext := range []string{"png", "svg", "css", "jpg", "webp", "ico"} {
		src := fmt.Sprintf("%s/*.%s", inDir, ext)
		ms, err := filepath.Glob(src)
		if err != nil {
			return err
		}
		klog.V(1).Infof("copying %d assets from %s", len(ms), src)
		for _, m := range ms {
			if err := copy.Copy(m, filepath.Join(outDir, "_", filepath.Base(m))); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeIndex(c *Config, a *Assembly) error {
	klog.V(1).Infof("writing index with %d rooms and %d gallery photos ...", len(a.Rooms), len(a.Gallery))
	bs, err := renderIndex(c, a)
	if err != nil {
		return fmt.Errorf("render index: %w", err)
	}

	p := filepath.Join(c.OutDir, "index.html")
	klog.V(1).Infof("Writing index to %s", p)
	return os.WriteFile(p, bs, 0o644)
}

// viewPath is the page for photo n of a sequence, relative to the output root.
func viewPath(id string, n int) string {
	return fmt.Sprintf("view/%s/%d/", id, n)
}

// anchorFor maps a sequence to the section the lightbox closes back to.
func anchorFor(id string) string {
	section, _, _ := strings.Cut(id, "-")
	return section
}

func writeViews(c *Config, a *Assembly, v *lightbox.Viewer) error {
	tmpl, err := template.New("view").Funcs(tmplFunctions(a)).Parse(viewTmpl)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	klog.Infof("Writing out %d lightbox sequences ...", len(a.Sequences))
	for _, s := range a.Sequences {
		for n := range s.Photos {
			if !v.Open(s.Photos, n) {
				continue
			}

			bs, err := renderView(c, tmpl, s.ID, v)
			if err != nil {
				v.Close()
				return fmt.Errorf("render %s/%d: %w", s.ID, n, err)
			}

			p := filepath.Join(c.OutDir, filepath.FromSlash(viewPath(s.ID, n)), "index.html")
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				v.Close()
				return fmt.Errorf("mkdir: %w", err)
			}
			if err := os.WriteFile(p, bs, 0o644); err != nil {
				v.Close()
				return fmt.Errorf("write file: %w", err)
			}
		}
		klog.V(1).Infof("wrote %d views for %s", len(s.Photos), s.ID)
		v.Close()
	}

	return nil
}

func renderView(c *Config, tmpl *template.Template, id string, v *lightbox.Viewer) ([]byte, error) {
	p, ok := v.Current()
	if !ok {
		return nil, fmt.Errorf("viewer is closed")
	}
	prev, next := v.Neighbors()
	root := "../../../"

	data := struct {
		Collection string
		Root       string
		Photo      lightbox.Photo
		Number     int
		Total      int
		Prev       string
		Next       string
		Close      string
		Fit        lightbox.Fit
		KeyClose   string
		KeyPrev    string
		KeyNext    string
		Style      template.CSS
	}{
		Collection: c.Title,
		Root:       root,
		Photo:      p,
		Number:     v.Index() + 1,
		Total:      len(v.Photos()),
		Prev:       root + viewPath(id, prev),
		Next:       root + viewPath(id, next),
		Close:      root + "#" + anchorFor(id),
		Fit:        v.Fit(),
		KeyClose:   lightbox.KeyClose,
		KeyPrev:    lightbox.KeyPrev,
		KeyNext:    lightbox.KeyNext,
		Style:      template.CSS(styleText),
	}

	var tpl bytes.Buffer
	if err := tmpl.Execute(&tpl, data); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return tpl.Bytes(), nil
}

func renderIndex(c *Config, a *Assembly) ([]byte, error) {
	tmpl, err := template.New("index").Funcs(tmplFunctions(a)).Parse(indexTmpl)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	data := struct {
		Collection     string
		Description    string
		Anchors        []string
		Assembly       *Assembly
		Features       []Feature
		Sustainability []string
		Places         []Place
		ContactMethods []string
		Style          template.CSS
	}{
		Collection:     c.Title,
		Description:    c.Description,
		Anchors:        Anchors,
		Assembly:       a,
		Features:       features,
		Sustainability: sustainability,
		Places:         places,
		ContactMethods: ContactMethods,
		Style:          template.CSS(styleText),
	}

	var tpl bytes.Buffer
	if err = tmpl.Execute(&tpl, data); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	return tpl.Bytes(), nil
}

// tmplFunctions are functions available to our templates.
func tmplFunctions(a *Assembly) template.FuncMap {
	return template.FuncMap{
		"URL": a.URL,
		"View": func(id string, n int) string {
			return viewPath(id, n)
		},
		"Title": photo.TitleCase,
	}
}
