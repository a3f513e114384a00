// everview builds the Everview villa website from a directory of photos.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/everview/everview/pkg/photo"
	"github.com/everview/everview/pkg/site"
)

var (
	inDir       string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "everview",
	Short: "Static website generator for the Everview villa",
	Long: `everview scans a directory of villa photos organised by room, resolves
titles, categories and tags against an optional catalog file, and renders the
single-page site with a full-screen lightbox page for every photo.

Flags default to EVERVIEW_* environment variables, which may be set in a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func env(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// .env is loaded while package variables initialize, ahead of every init that reads
// EVERVIEW_* flag defaults.
var _ = loadDotEnv()

// loadDotEnv loads .env from the working directory. Variables already in the
// environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		klog.Warningf("unable to load .env: %v", err)
	}
	return err
}

func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&inDir, "in", env("EVERVIEW_IN", ""), "location of the photo directory")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", env("EVERVIEW_CATALOG", "catalog.yaml"), "location of the catalog override file")
}

func init() {
	fs := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(fs)
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	addRootFlags(rootCmd)
}

// config returns the site configuration shared by every command.
func config() *site.Config {
	c := site.DefaultConfig()
	c.InDir = inDir
	c.CatalogPath = catalogPath
	return c
}

// photos finds the photos under --in.
func photos() ([]photo.Base, error) {
	if inDir == "" {
		klog.Exitf("--in is a required flag")
	}
	return photo.Find(inDir)
}

func main() {
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		klog.Exitf("%v", err)
	}
}
