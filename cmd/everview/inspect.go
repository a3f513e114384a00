package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/everview/everview/pkg/catalog"
)

var bedroomFolder string

var bedroomsCmd = &cobra.Command{
	Use:   "bedrooms",
	Short: "Show which photos each bedroom card would use",
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := photos()
		if err != nil {
			return err
		}
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		beds := cat.SelectBedrooms(all, bedroomFolder)
		picks := [][]catalog.Resolved{beds.Master, beds.OceanKing, beds.GardenKing, beds.Ground}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%d photos in %q\n", len(beds.All), bedroomFolder)
		for i, b := range catalog.BedroomBuckets {
			fmt.Fprintf(w, "%-12s", b.Name)
			if len(picks[i]) == 0 {
				fmt.Fprintln(w, "(none)")
				continue
			}
			slugs := make([]string, 0, len(picks[i]))
			for _, r := range picks[i] {
				slugs = append(slugs, r.Slug)
			}
			fmt.Fprintln(w, strings.Join(slugs, " "))
		}
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Count the resolved tags across the gallery",
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := photos()
		if err != nil {
			return err
		}
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		idx := catalog.TagIndex(cat.ResolveMany(all, "gallery"))
		tags := make([]string, 0, len(idx))
		for t := range idx {
			tags = append(tags, t)
		}
		sort.Slice(tags, func(i, j int) bool {
			if idx[tags[i]] != idx[tags[j]] {
				return idx[tags[i]] > idx[tags[j]]
			}
			return tags[i] < tags[j]
		})

		w := cmd.OutOrStdout()
		for _, t := range tags {
			fmt.Fprintf(w, "%5d %s\n", idx[t], t)
		}
		return nil
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report catalog entries that match no photo",
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := photos()
		if err != nil {
			return err
		}
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		orphans := cat.Lint(all)
		w := cmd.OutOrStdout()
		for _, o := range orphans {
			if o.Distance < 0 {
				fmt.Fprintf(w, "%s: no such photo\n", o.Key)
				continue
			}
			fmt.Fprintf(w, "%s: no such photo (did you mean %q?)\n", o.Key, o.Closest)
		}
		if len(orphans) > 0 {
			return fmt.Errorf("%d orphaned catalog entries in %s", len(orphans), catalogPath)
		}
		fmt.Fprintf(w, "%d catalog entries, all matched\n", len(cat))
		return nil
	},
}

func init() {
	bedroomsCmd.Flags().StringVar(&bedroomFolder, "folder", catalog.BedroomFolder, "folder holding the bedroom photos")
	rootCmd.AddCommand(bedroomsCmd, tagsCmd, lintCmd)
}
