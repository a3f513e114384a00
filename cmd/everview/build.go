package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/everview/everview/pkg/lightbox"
	"github.com/everview/everview/pkg/site"
)

var (
	outDir      string
	title       string
	description string
	staticDir   string
	noThumbs    bool
	listen      bool
	addr        string
	watchFlag   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site into the output directory",
	RunE:  runBuild,
}

func addBuildFlags(cmd *cobra.Command) {
	defaults := site.DefaultConfig()
	cmd.Flags().StringVar(&outDir, "out", env("EVERVIEW_OUT", ""), "location of the output directory")
	cmd.Flags().StringVar(&title, "title", env("EVERVIEW_TITLE", defaults.Title), "site title")
	cmd.Flags().StringVar(&description, "description", defaults.Description, "site description")
	cmd.Flags().StringVar(&staticDir, "static", "", "directory of extra static assets")
	cmd.Flags().BoolVar(&noThumbs, "no-thumbnails", false, "publish originals only")
	cmd.Flags().BoolVar(&listen, "listen", false, "serve content via HTTP")
	cmd.Flags().StringVar(&addr, "addr", env("EVERVIEW_ADDR", "localhost:12800"), "host:port to bind to in listen mode")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "watch the photo directory and rebuild on change")
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	if inDir == "" {
		return fmt.Errorf("--in is a required flag")
	}
	if outDir == "" {
		return fmt.Errorf("--out is a required flag")
	}

	c := config()
	c.OutDir = outDir
	c.Title = title
	c.Description = description
	c.StaticDir = staticDir
	if noThumbs {
		c.Thumbnails = nil
	}

	v := lightbox.New(lightbox.NewPage(c.ViewWidth, c.ViewHeight))
	ctx := lightbox.NewContext(context.Background(), v)

	a, err := build(ctx, c)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	if watchFlag {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := watch(ctx, c, a); err != nil {
				klog.Exitf("watch failed: %v", err)
			}
		}()
	}

	if listen {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serve(c.OutDir, addr)
		}()
	}

	wg.Wait()
	return nil
}

func build(ctx context.Context, c *site.Config) (*site.Assembly, error) {
	a, err := site.Collect(c)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	if err := site.Render(ctx, c, a); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	klog.Infof("built %s with %d photos", c.OutDir, len(a.Photos))
	return a, nil
}

// serve serves a static web directory via HTTP
func serve(path string, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(path)))

	klog.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		klog.Exitf("listen failed: %v", err)
	}
}

// watchDirs returns the photo root and every folder that holds photos.
func watchDirs(c *site.Config, a *site.Assembly) []string {
	dirs := []string{c.InDir}
	for _, p := range a.Photos {
		dir := filepath.Dir(p.InPath)
		for dir != c.InDir && dir != "." && dir != filepath.Dir(dir) {
			dirs = append(dirs, dir)
			dir = filepath.Dir(dir)
		}
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

// watch watches the photo directory for changes and rebuilds
func watch(ctx context.Context, c *site.Config, a *site.Assembly) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	dirs := watchDirs(c, a)
	klog.Infof("watching %d dirs ...", len(dirs))
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}
	if c.CatalogPath != "" {
		if err := w.Add(filepath.Dir(c.CatalogPath)); err != nil {
			klog.Warningf("unable to watch catalog: %v", err)
		}
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			klog.V(1).Infof("event: %v", event)
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			na, err := build(ctx, c)
			if err != nil {
				klog.Errorf("rebuild failed: %v", err)
				continue
			}
			for _, d := range watchDirs(c, na) {
				if !slices.Contains(dirs, d) {
					if err := w.Add(d); err != nil {
						klog.Warningf("unable to watch %s: %v", d, err)
						continue
					}
					dirs = append(dirs, d)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
