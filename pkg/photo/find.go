package photo

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

func supported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

func read(root string, path string) (Base, error) {
	b := Base{InPath: path}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return b, fmt.Errorf("rel: %w", err)
	}
	b.Src = filepath.ToSlash(rel)

	hier := strings.Split(b.Src, "/")
	b.Folders = hier[:len(hier)-1]
	b.Subfolder = DefaultSubfolder
	if len(b.Folders) > 0 {
		b.Subfolder = b.Folders[0]
	}

	b.Slug = SlugFor(path)
	b.Title = TitleFromFilename(path)
	b.Category = TitleCase(b.Subfolder)

	fi, err := os.Stat(path)
	if err != nil {
		return b, fmt.Errorf("stat: %w", err)
	}
	b.ModTime = fi.ModTime()

	return b, nil
}

// Find returns every supported photo at any depth beneath root, each grouped by its own
// primary subfolder. Results are ordered numeric-aware by path. A missing root yields no photos.
func Find(root string) ([]Base, error) {
	found := []Base{}

	if _, err := os.Stat(root); os.IsNotExist(err) {
		klog.Warningf("photo root %s does not exist", root)
		return found, nil
	}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != root && strings.HasPrefix(filepath.Base(path), ".") {
				return godirwalk.SkipThis
			}

			if de.IsDir() || !supported(path) {
				return nil
			}

			b, err := read(root, path)
			if err != nil {
				klog.Errorf("read failure: %v", err)
				return err
			}
			klog.V(1).Infof("found %s (slug=%s, folders=%v)", b.Src, b.Slug, b.Folders)
			found = append(found, b)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	SortBySrc(found)
	klog.Infof("found %d photos in %s", len(found), root)
	return found, nil
}

// FromFolder returns the photos filed under folder, sorted by slug. folder may be a
// nested path such as "bedrooms/master". Category is the title-cased folder unless
// category is given.
func FromFolder(all []Base, folder string, category string) []Base {
	want := strings.Split(strings.Trim(filepath.ToSlash(folder), "/"), "/")
	if category == "" {
		category = TitleCase(want[0])
	}

	bs := []Base{}
	for _, b := range all {
		if len(b.Folders) < len(want) || !slices.Equal(b.Folders[:len(want)], want) {
			continue
		}
		b.Subfolder = want[0]
		b.Category = category
		b.Folders = slices.Clone(b.Folders)
		bs = append(bs, b)
	}

	SortBySlug(bs)
	return bs
}

// FromFolders concatenates FromFolder over folders. categories optionally maps folder to a
// category label.
func FromFolders(all []Base, folders []string, categories map[string]string) []Base {
	bs := []Base{}
	for _, f := range folders {
		bs = append(bs, FromFolder(all, f, categories[f])...)
	}
	return bs
}
