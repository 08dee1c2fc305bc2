package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/menu"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/schedule"
)

func publishCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload scraped menu documents to the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			store, err := cfg.OpenStore(cmd.Context())
			if err != nil {
				return err
			}

			docs := cfg.Documents()
			for _, h := range schedule.Halls() {
				name, ok := docs[h]
				if !ok {
					continue
				}

				path := filepath.Join(dir, name)
				doc, err := menu.ParseFile(path)
				if errors.Is(err, os.ErrNotExist) {
					logger.Warn("menu document missing", zap.String("hall", string(h)), zap.String("path", path))
					fmt.Fprintf(cmd.OutOrStdout(), "%s skipped\n", name)
					continue
				}
				if err != nil {
					return fmt.Errorf("read %s menu: %w", h, err)
				}
				// reject documents the service would silently read as empty
				if menu.Normalize(doc).IsEmpty() {
					return fmt.Errorf("%s holds no menu data", path)
				}

				f, err := os.Open(path)
				if err != nil {
					return err
				}
				key, err := store.Put(cmd.Context(), name, f)
				f.Close()
				if err != nil {
					return fmt.Errorf("publish %s menu: %w", h, err)
				}

				logger.Info("menu published", zap.String("hall", string(h)), zap.String("key", key))
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "src/data", "directory holding the scraped documents")
	return cmd
}
