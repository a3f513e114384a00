// autotag writes the resolved tags of each villa photo into its EXIF Keywords.
package main

import (
	"flag"
	"os"
	"slices"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"

	"github.com/everview/everview/pkg/catalog"
	"github.com/everview/everview/pkg/photo"
)

var (
	write       = flag.Bool("write", false, "write tags; without this flag autotag only reports what it would do")
	overwrite   = flag.Bool("o", false, "overwrite existing keywords")
	catalogPath = flag.String("catalog", "catalog.yaml", "location of the catalog override file")
	section     = flag.String("section", "gallery", "catalog section to resolve tags for")
	maxTags     = flag.Int("max", 8, "maximum number of keywords to write per photo, negative for no limit")
)

// limitTags returns at most n tags. A negative n means no limit.
func limitTags(tags []string, n int) []string {
	if n < 0 || len(tags) <= n {
		return tags
	}
	return tags[:n]
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if len(flag.Args()) == 0 {
		klog.Exitf("No input directories provided. Usage: %s [-write] <photo_dir> [photo_dir ...]", os.Args[0])
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		klog.Exitf("catalog: %v", err)
	}

	e, err := exiftool.NewExiftool()
	if err != nil {
		klog.Exitf("exiftool: %v", err)
	}
	defer func() {
		if err := e.Close(); err != nil {
			klog.Errorf("Failed to close exiftool: %v", err)
		}
	}()

	total, tagged := 0, 0
	for _, dir := range flag.Args() {
		all, err := photo.Find(dir)
		if err != nil {
			klog.Exitf("find: %v", err)
		}
		klog.Infof("%s: %d photos", dir, len(all))

		for _, b := range all {
			total++
			tags := limitTags(cat.Resolve(b, *section).Tags, *maxTags)

			o := e.ExtractMetadata(b.InPath)
			if o[0].Err != nil {
				klog.Errorf("Failed to read metadata for %s: %v", b.InPath, o[0].Err)
				continue
			}

			existing, _ := o[0].GetStrings("Keywords")
			if slices.Equal(existing, tags) {
				klog.V(1).Infof("%s is up to date", b.InPath)
				continue
			}
			if !*overwrite && len(existing) > 0 {
				klog.Infof("%s has tags: %v", b.InPath, existing)
				continue
			}

			klog.Infof("adding tags to %s: %v", b.InPath, tags)
			if !*write {
				continue
			}
			o[0].SetStrings("Keywords", tags)
			e.WriteMetadata(o)
			if o[0].Err != nil {
				klog.Errorf("Failed to write metadata for %s: %v", b.InPath, o[0].Err)
				continue
			}
			tagged++
		}
	}

	klog.Infof("autotag completed: tagged %d of %d photos (write=%v)", tagged, total, *write)
}
