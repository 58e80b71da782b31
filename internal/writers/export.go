package writers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gslice/internal/hits"
	"gslice/internal/output"
)

// Export writes one file per (group, format) under dir, creating or
// overwriting it, and returns the paths written in order. Groups follow
// agg's first-seen order; empty groups produce nothing. The first error
// stops the export.
func Export(dir string, agg *hits.Aggregated, formats []string, o Options) ([]string, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	arts := make([]Artifact, len(formats))
	for i, f := range formats {
		a, err := Lookup(f)
		if err != nil {
			return nil, err
		}
		arts[i] = a
	}

	var written []string
	taken := map[string]bool{}
	for i, key := range agg.Keys() {
		g := Group{Index: i, QueryID: key, Hits: agg.Hits(key)}
		if len(g.Hits) == 0 {
			continue
		}
		for _, a := range arts {
			name := a.Name(o, g)
			if taken[name] {
				alt := disambiguate(name, g.Index)
				if o.Warn != nil {
					o.Warn(fmt.Sprintf("query %q maps to existing file name %s; writing %s instead", key, name, alt))
				}
				name = alt
			}
			taken[name] = true
			path := filepath.Join(dir, name)
			if err := writeArtifact(path, a, o, g); err != nil {
				return written, fmt.Errorf("export %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// disambiguate inserts "-<n>" before the artifact suffix, so query ids that
// sanitise to the same stem do not overwrite each other.
func disambiguate(name string, n int) string {
	if stem, rest, ok := strings.Cut(name, "_"+output.ArtifactSuffix); ok {
		return stem + "-" + strconv.Itoa(n) + "_" + output.ArtifactSuffix + rest
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "-" + strconv.Itoa(n) + ext
}

func writeArtifact(path string, a Artifact, o Options, g Group) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriterSize(fh, 64<<10)
	if err := a.Write(bw, o, g); err != nil {
		return err
	}
	return bw.Flush()
}
