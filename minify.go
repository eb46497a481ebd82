package wad

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Minify reduces the archive in input to a single level and the resources it needs. It either
// returns a complete archive or an error; there is no partial output.
func Minify(input []byte, opts Options) ([]byte, *Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	w, err := Read(input)
	if err != nil {
		return nil, nil, err
	}

	if opts.Level == "" {
		opts.Level = DefaultLevel
	}
	level := strings.ToUpper(opts.Level)
	marker := levelIndex(w.Lumps, level)
	if marker < 0 {
		return nil, nil, configErrorf(ErrLevelNotFound, "%v (archive has %v)", level, strings.Join(LevelNames(w.Lumps), " "))
	}
	logger.Printf("Keeping level %v at lump %v", level, marker)

	p, err := newPolicy(opts, w.Lumps, marker)
	if err != nil {
		return nil, nil, err
	}

	usage := resolveUsage(w.Lumps, marker, p)
	tables, err := rewriteTables(w.Lumps, usage.Textures, p.WallTexture)
	if err != nil {
		return nil, nil, err
	}

	flatNames := FlatNames(w.Lumps)
	for _, f := range []string{p.FloorFlat, p.CeilingFlat} {
		if _, ok := flatNames[f]; f != "" && !ok {
			return nil, nil, configErrorf(ErrUnknownFlat, "%v", f)
		}
	}

	s := &selection{policy: p, marker: marker, tables: tables, flats: usage.Flats}
	out := &WAD{Magic: w.Magic, Lumps: s.run(w.Lumps)}
	output := out.Bytes()

	report := newReport(level, input, output)
	report.TotalLumps = len(w.Lumps)
	report.KeptLumps = len(out.Lumps)
	report.TotalTextures = tables.totalTextures
	report.KeptTextures = tables.keptTextures
	report.TotalPatches = tables.totalPatches
	report.KeptPatches = len(tables.patchNames)
	report.KeptFlats = s.keptFlats
	logger.Printf("Wrote %v", out)
	return output, report, nil
}

// MinifyFile runs Minify on the archive at inPath and writes the result to outPath. The output
// is written to a temporary file next to outPath and renamed into place only on success.
func MinifyFile(inPath, outPath string, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	input, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("read WAD: %w", err)
	}

	output, report, err := Minify(input, opts)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outPath, output); err != nil {
		return nil, err
	}
	return report, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create WAD file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if f != nil {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod WAD file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write WAD file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync WAD file: %w", err)
	}
	if err := f.Close(); err != nil {
		f = nil
		return fmt.Errorf("close WAD file: %w", err)
	}
	f = nil

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename WAD file: %w", err)
	}
	return nil
}
