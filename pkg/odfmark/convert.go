package odfmark

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

// defaultConverter is looked up on PATH when no converter path is configured.
const defaultConverter = "soffice"

// Convert invokes the external document converter on containerPath, writing
// the rendered result into cfg.OutDir (or next to the container when unset).
//
// Conversion is best effort: a missing converter, a non-zero exit, or a
// silent no-op (LibreOffice drops the request when another instance is
// already running) is logged and swallowed. The returned path is where the
// rendered output is expected, or "" when no converter ran.
func Convert(ctx context.Context, cfg *Config, containerPath string) string {
	converter := cfg.ConverterPath
	if converter == "" {
		path, err := exec.LookPath(defaultConverter)
		if err != nil {
			logger.Warn("no document converter found, skipping conversion", "error", err)
			return ""
		}
		converter = path
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = filepath.Dir(containerPath)
	}

	args := converterArgs(cfg.ConvertTo, outDir, containerPath)
	logger.Debug("running converter", "path", converter, "args", args)

	out, err := exec.CommandContext(ctx, converter, args...).CombinedOutput()
	if err != nil {
		logger.Warn("document conversion failed",
			"converter", converter,
			"error", err,
			"output", strings.TrimSpace(string(out)))
		return ""
	}

	return filepath.Join(outDir, convertedName(containerPath, cfg.ConvertTo))
}

// converterArgs builds the fixed headless-conversion argument shape.
func converterArgs(convertTo, outDir, inputPath string) []string {
	return []string{"--headless", "--convert-to", convertTo, "--outdir", outDir, inputPath}
}

// convertedName derives the output filename the converter produces: the
// input base name with the filter's extension (the part before any ':').
func convertedName(inputPath, convertTo string) string {
	ext, _, _ := strings.Cut(convertTo, ":")
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + ext
}
