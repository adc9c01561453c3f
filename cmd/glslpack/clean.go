package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"glslpack/internal/packcache"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the on-disk pack cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")

		manifest, _, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		dir := ""
		if manifest != nil {
			dir = manifest.Config.Cache.Dir
			if dir != "" && !filepath.IsAbs(dir) {
				dir = filepath.Join(manifest.Root, dir)
			}
		}

		var cache *packcache.Cache
		if dir != "" {
			cache, err = packcache.OpenAt(dir)
		} else {
			cache, err = packcache.Open("glslpack")
		}
		if err != nil {
			return err
		}
		if err := cache.DropAll(); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "pack cache dropped")
		}
		return nil
	},
}
