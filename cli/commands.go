package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"loco-savior/index"
	"loco-savior/sawyer"
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/sfile"
	"loco-savior/sawyer/sgraphics"
	"loco-savior/ui"
)

func StartPeeking(logger hclog.Logger, paths []string) error {
	codec := sawyer.NewCodec(logger)
	failed := 0
	for _, path := range paths {
		headers, err := codec.PeekHeader(path)
		if err != nil {
			logger.Warn("could not peek", "error", err)
			failed += 1
			continue
		}
		verified := "unverified"
		if headers.Verified {
			verified = "verified"
		}
		printer.Printf(
			"%s\t%-8s\t%s\t%s\t%s\t%d bytes\t%s\n",
			path,
			headers.Identity.Name.String(),
			headers.Identity.Kind().String(),
			headers.Identity.SourceGame().String(),
			headers.Payload.Encoding.String(),
			headers.Payload.Length,
			verified,
		)
	}
	if failed > 0 {
		return errors.New(printer.Sprintf("%d of %d files could not be read", failed, len(paths)))
	}
	return nil
}

func StartDumping(logger hclog.Logger, cmd DumpCmd) error {
	if err := checkDestination(cmd.From, cmd.To, cmd.Force); err != nil {
		return err
	}
	file, err := sawyer.NewCodec(logger).Load(cmd.From)
	if err != nil {
		return err
	}
	bs, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cli.StartDumping error")
	}
	if err := os.WriteFile(cmd.To, bs, 0644); err != nil {
		return errors.Wrapf(err, `cli.StartDumping error writing "%s"`, cmd.To)
	}
	fmt.Println("Done dumping. Please check your result file at: " + cmd.To)
	return nil
}

func StartBuilding(logger hclog.Logger, cmd BuildCmd) error {
	if err := checkDestination(cmd.From, cmd.To, cmd.Force); err != nil {
		return err
	}
	bs, err := os.ReadFile(cmd.From)
	if err != nil {
		return errors.Wrapf(err, `cli.StartBuilding error reading "%s"`, cmd.From)
	}
	file, err := sfile.FromJSON(bs)
	if err != nil {
		return errors.Wrapf(err, `cli.StartBuilding error reading "%s"`, cmd.From)
	}
	if cmd.Encoding != "" {
		encoding, err := scompress.Parse(cmd.Encoding)
		if err != nil {
			return err
		}
		file.Payload.Encoding = encoding
	}
	if err := sawyer.NewCodec(logger).Save(cmd.To, file); err != nil {
		return err
	}
	fmt.Println("Done building. Please check your result file at: " + cmd.To)
	return nil
}

func StartRepacking(logger hclog.Logger, cmd RepackCmd) error {
	if err := checkDestination(cmd.From, cmd.To, cmd.Force); err != nil {
		return err
	}
	encoding, err := scompress.Parse(cmd.Encoding)
	if err != nil {
		return err
	}
	codec := sawyer.NewCodec(logger)
	file, err := codec.Load(cmd.From)
	if err != nil {
		return err
	}
	logger.Info("repacking", "from", file.Payload.Encoding.String(), "to", encoding.String())
	file.Payload.Encoding = encoding
	return codec.Save(cmd.To, file)
}

func StartScanning(ctx context.Context, logger hclog.Logger, cmd ScanCmd) error {
	idx, err := index.New(index.DefaultSize)
	if cmd.Cache != "" {
		idx, err = index.LoadFile(cmd.Cache, index.DefaultSize)
	}
	if err != nil {
		return err
	}

	paths, err := index.List(cmd.Dir)
	if err != nil {
		return err
	}
	scanner := index.NewScanner(idx, logger)
	scanner.Workers = cmd.Workers
	if cmd.Full {
		scanner.Mode = index.ModeFull
	}

	var results []index.Result
	if cmd.Interactive {
		results, err = ui.RunScan(ctx, scanner, paths)
	} else {
		results, err = scanner.Scan(ctx, paths)
	}
	if err != nil {
		return err
	}

	summary := index.Summarize(results)
	printer.Printf(
		"%d files scanned, %d from cache, %d failed\n",
		summary.Total, summary.Cached, summary.Failed,
	)
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("  %s: %v\n", result.Path, result.Err)
		}
	}
	if cmd.Duplicates {
		for _, group := range idx.Duplicates() {
			printer.Printf("%d identical files:\n", len(group))
			for _, path := range group {
				fmt.Println("  " + path)
			}
		}
	}

	if cmd.Cache != "" {
		if err := idx.SaveFile(cmd.Cache); err != nil {
			return err
		}
		logger.Debug("saved index", "path", cmd.Cache, "entries", idx.Len())
	}
	return nil
}

func loadPalette(path string) (*sgraphics.Palette, error) {
	if path == "" {
		return sgraphics.GrayscalePalette(), nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `cli.loadPalette error reading "%s"`, path)
	}
	return sgraphics.LoadPalette(bs)
}

func StartExporting(logger hclog.Logger, cmd ImagesCmd) error {
	palette, err := loadPalette(cmd.Palette)
	if err != nil {
		return err
	}
	file, err := sawyer.NewCodec(logger).Load(cmd.From)
	if err != nil {
		return err
	}
	if file.Graphics == nil || len(file.Graphics.Images) == 0 {
		fmt.Println("The object has no images.")
		return nil
	}
	if err := os.MkdirAll(cmd.Out, 0755); err != nil {
		return errors.Wrapf(err, `cli.StartExporting error creating "%s"`, cmd.Out)
	}

	exported := 0
	for i, img := range file.Graphics.Images {
		if file.Graphics.Images[img.Canonical].Flags.Has(sgraphics.IsPalette) {
			logger.Debug("skipping palette image", "index", i)
			continue
		}
		picture, err := file.Graphics.Render(i, palette)
		if err != nil {
			return err
		}
		if picture.Rect.Empty() {
			logger.Debug("skipping empty image", "index", i)
			continue
		}
		path := filepath.Join(cmd.Out, fmt.Sprintf("%s_%03d.png", file.Identity.Name.String(), i))
		if err := writePNG(path, picture); err != nil {
			return err
		}
		exported += 1
	}
	printer.Printf("%d images exported to %s\n", exported, cmd.Out)
	return nil
}

func writePNG(path string, picture *image.Paletted) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, `cli.writePNG error creating "%s"`, path)
	}
	defer f.Close()
	if err := png.Encode(f, picture); err != nil {
		return errors.Wrapf(err, `cli.writePNG error encoding "%s"`, path)
	}
	return nil
}
