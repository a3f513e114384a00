package catalog

import (
	"regexp"

	"github.com/everview/everview/pkg/photo"
	"k8s.io/klog/v2"
)

// BedroomFolder is where bedroom photos live under the photo root.
var BedroomFolder = "bedrooms"

// Bucket is a named set of patterns. A photo belongs to the bucket when any pattern matches
// its slug, its title, or one of its tags.
type Bucket struct {
	Name     string
	Patterns []*regexp.Regexp
}

func patterns(ss ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(ss))
	for _, s := range ss {
		res = append(res, regexp.MustCompile(`(?i)`+s))
	}
	return res
}

// BedroomBuckets are evaluated, and filled by fallback, in this order.
var BedroomBuckets = []Bucket{
	{Name: "master", Patterns: patterns(
		`\bmaster\b`,
		`\bmaster[-_ ]?bed(room)?\b`,
		`\bprimary\b`,
		`\bmain\b`,
	)},
	{Name: "oceanking", Patterns: patterns(
		`\boceanking\b`,
		`\bocean[-_ ]?king\b`,
		`\b(ocean|sea|atlantic)[-_ ]?(view)?[-_ ]?king\b`,
		`\bup(stairs|per).*(1|one)\b`,
		`\bbed(room)?[-_ ]?1\b`,
	)},
	{Name: "gardenking", Patterns: patterns(
		`\bgardenking\b`,
		`\bgarden[-_ ]?king\b`,
		`\bgarden[-_ ]?(suite|room)\b`,
		`\bup(stairs|per).*(2|two)\b`,
		`\bbed(room)?[-_ ]?2\b`,
	)},
	{Name: "ground", Patterns: patterns(
		`\bground\b`,
		`\bground[-_ ]?floor\b`,
		`\bdownstairs\b`,
		`\bground[-_ ]?king\b`,
	)},
}

// Matches reports whether r belongs in the bucket.
func (b Bucket) Matches(r Resolved) bool {
	for _, re := range b.Patterns {
		if re.MatchString(r.Slug) || re.MatchString(r.Title) {
			return true
		}
		for _, t := range r.Tags {
			if re.MatchString(t) {
				return true
			}
		}
	}
	return false
}

// Select fills each bucket independently, so a photo may land in several. Afterwards every
// empty bucket, in bucket order, takes the first photo not yet used by any bucket.
func Select(rs []Resolved, buckets []Bucket) [][]Resolved {
	out := make([][]Resolved, len(buckets))
	used := map[string]bool{}

	for i, b := range buckets {
		for _, r := range rs {
			if b.Matches(r) {
				out[i] = append(out[i], r)
				used[r.Slug] = true
			}
		}
	}

	for i, b := range buckets {
		if len(out[i]) > 0 {
			continue
		}
		for _, r := range rs {
			if used[r.Slug] {
				continue
			}
			klog.V(1).Infof("bucket %s: no pattern match, falling back to %s", b.Name, r.Slug)
			out[i] = []Resolved{r}
			used[r.Slug] = true
			break
		}
	}

	return out
}

// Bedrooms holds the photos picked for each bedroom card.
type Bedrooms struct {
	Master     []Resolved
	OceanKing  []Resolved
	GardenKing []Resolved
	Ground     []Resolved
	// All is every photo in the bedrooms folder, sorted by slug.
	All []Resolved
}

// SelectBedrooms resolves the photos under folder for the bedrooms section and sorts them
// into the four bedroom buckets. folder defaults to BedroomFolder.
func (c Catalog) SelectBedrooms(all []photo.Base, folder string) Bedrooms {
	if folder == "" {
		folder = BedroomFolder
	}
	beds := c.ByFolder(all, folder, "bedrooms")
	picks := Select(beds, BedroomBuckets)

	return Bedrooms{
		Master:     picks[0],
		OceanKing:  picks[1],
		GardenKing: picks[2],
		Ground:     picks[3],
		All:        beds,
	}
}
