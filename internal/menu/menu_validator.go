package menu

import (
	"errors"
	"path/filepath"
	"strings"
)

// ValidateDocumentName checks that a menu document key names a JSON file.
func ValidateDocumentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("document name missing")
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return errors.New("file extension missing")
	}

	if ext != ".json" {
		return errors.New("file type not allowed")
	}

	return nil
}
