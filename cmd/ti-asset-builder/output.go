package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calctools/serseg/format"
	"github.com/calctools/serseg/internal/hash"
	"github.com/calctools/serseg/internal/render"
)

// formatFlag adapts format.Output to the pflag.Value interface.
type formatFlag format.Output

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	return format.Output(*f).String()
}

func (f *formatFlag) Set(s string) error {
	v, err := format.ParseOutput(s)
	if err != nil {
		return err
	}
	*f = formatFlag(v)

	return nil
}

func (*formatFlag) Type() string {
	return "format"
}

// assetName derives the symbol name used in source renderings from the
// output file name, extension stripped.
func assetName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeAsset renders the built bytes per --format and writes them to path.
func writeAsset(data []byte, path string) error {
	contents := data
	switch format.Output(flag.Format) {
	case format.OutputC:
		contents = []byte(render.CArray(assetName(path), data))
	case format.OutputAssembly:
		contents = []byte(render.Assembly(assetName(path), data))
	}

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("write asset %s: %w", path, err)
	}

	logger.Info("asset written",
		zap.String("path", path),
		zap.String("format", format.Output(flag.Format).String()),
		zap.String("size", humanize.IBytes(uint64(len(contents)))),
		zap.String("digest", fmt.Sprintf("%016x", hash.Sum(data))),
	)

	return nil
}
