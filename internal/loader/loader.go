// Package loader enumerates plain-text documents in a directory and
// supplies their raw text to the extraction pipeline. PDF/OCR front ends
// are out of scope; this is the seam where one would plug in.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"invoiceqc/internal/domain"
)

// Document is one loader-supplied input: an identifier (the file name) and
// the document's full text. Err is set when the file could not be read;
// the text is then empty and downstream extraction emits a placeholder.
type Document struct {
	ID   string
	Text string
	Err  error
}

// DirLoader loads documents from a directory, filtered by extension, in
// sorted file-name order so batches are reproducible.
type DirLoader struct {
	extensions map[string]bool
}

// NewDirLoader creates a loader accepting the given extensions (without
// dot). With none given it defaults to "txt".
func NewDirLoader(extensions ...string) *DirLoader {
	if len(extensions) == 0 {
		extensions = []string{"txt"}
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &DirLoader{extensions: set}
}

// Load reads every matching file in dir. Unreadable files become documents
// with Err set rather than failing the whole batch. A directory with no
// matching files is reported as domain.ErrNoDocuments.
func (l *DirLoader) Load(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if !l.extensions[ext] {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			docs = append(docs, Document{ID: entry.Name(), Err: fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, readErr)})
			continue
		}
		docs = append(docs, Document{ID: entry.Name(), Text: string(data)})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoDocuments, dir)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
