package photo

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	extRe        = regexp.MustCompile(`(?i)\.(webp|jpg|jpeg|png)$`)
	trailDigitRe = regexp.MustCompile(`\d+\b`)
	separatorRe  = regexp.MustCompile(`[-_]+`)
	spaceRe      = regexp.MustCompile(`\s+`)
	wordStartRe  = regexp.MustCompile(`\b\w`)
)

// SlugFor returns the filename of p without a supported image extension.
func SlugFor(p string) string {
	return extRe.ReplaceAllString(path.Base(filepathToSlash(p)), "")
}

// TitleCase turns "master-suite_view" into "Master Suite View".
// Only the first letter of each word is changed, so "2b" and "3d" stay lower-case.
func TitleCase(s string) string {
	s = separatorRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	return wordStartRe.ReplaceAllStringFunc(s, strings.ToUpper)
}

// TitleFromFilename turns "bedrooms/bedroom-master-5.webp" into "Bedroom Master".
func TitleFromFilename(p string) string {
	s := trailDigitRe.ReplaceAllString(SlugFor(p), "")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	return TitleCase(s)
}

// Less compares strings the way a numeric-aware locale collation does, so "photo-2" < "photo-10".
type Less func(a, b string) bool

// NumericLess returns a fresh comparator. Collators keep internal buffers, so
// each sort gets its own.
func NumericLess() Less {
	c := collate.New(language.Und, collate.Numeric)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}

// SortBySlug orders bases by slug, numeric-aware. The sort is stable.
func SortBySlug(bs []Base) {
	less := NumericLess()
	sort.SliceStable(bs, func(i, j int) bool {
		return less(bs[i].Slug, bs[j].Slug)
	})
}

// SortBySrc orders bases by their path relative to the root, numeric-aware.
func SortBySrc(bs []Base) {
	less := NumericLess()
	sort.SliceStable(bs, func(i, j int) bool {
		return less(bs[i].Src, bs[j].Src)
	})
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
