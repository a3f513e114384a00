package photo

import (
	"regexp"
	"slices"
	"strings"
)

// folderTags adds a secondary tag based on which folder a photo lives in.
var folderTags = map[string]string{
	"balcony":  "outdoor",
	"patio":    "outdoor",
	"terrace":  "outdoor",
	"bar":      "entertainment",
	"cellar":   "entertainment",
	"interior": "living",
	"exterior": "outdoor",
}

type keywordRule struct {
	re  *regexp.Regexp
	tag string
}

// keywordRules are applied to the lower-cased slug in order. Every match adds its tag.
var keywordRules = []keywordRule{
	{regexp.MustCompile(`exterior|facade|drive`), "exterior"},
	{regexp.MustCompile(`interior|lounge|living|room`), "interior"},
	{regexp.MustCompile(`view|ocean|mountain`), "view"},
	{regexp.MustCompile(`sunset|dusk|golden`), "sunset"},
	{regexp.MustCompile(`sunrise|dawn`), "sunrise"},
	{regexp.MustCompile(`balcony|terrace|patio`), "balcony"},
	{regexp.MustCompile(`fireplace`), "fireplace"},
	{regexp.MustCompile(`bar|cellar`), "bar"},
	{regexp.MustCompile(`island`), "island"},
	{regexp.MustCompile(`detail|close`), "detail"},
}

// AutoTags derives tags for a photo from its slug and primary subfolder.
// The subfolder always comes first; the result has no duplicates.
func AutoTags(slug string, subfolder string) []string {
	sub := strings.ToLower(subfolder)
	tags := []string{}
	tags = AppendUnique(tags, sub)

	if t, ok := folderTags[sub]; ok {
		tags = AppendUnique(tags, t)
	}

	s := strings.ToLower(slug)
	for _, r := range keywordRules {
		if r.re.MatchString(s) {
			tags = AppendUnique(tags, r.tag)
		}
	}

	return tags
}

// AppendUnique appends each value not already present in tags.
func AppendUnique(tags []string, vs ...string) []string {
	for _, v := range vs {
		if !slices.Contains(tags, v) {
			tags = append(tags, v)
		}
	}
	return tags
}
