// Package yamlio reads the multi-document YAML configuration files maestro
// operates on. Documents come back as untyped trees; callers decode them
// further where structure matters.
package yamlio

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"maestro/pkg/faults"
)

// ReadDocuments parses every document in the file at path, in order.
// Empty documents are skipped. Read or parse failures are ConfigParse faults.
func ReadDocuments(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, faults.Wrap(faults.ConfigParse, err, "could not read yaml file: %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	var docs []any
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, faults.Wrap(faults.ConfigParse, err, "could not parse yaml file: %s", path)
		}
		if doc == nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// First returns the leading document, or nil for an empty sequence. Several
// operations apply the first-element convention for multi-document files.
func First(docs []any) any {
	if len(docs) == 0 {
		return nil
	}
	return docs[0]
}
