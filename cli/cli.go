package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"loco-savior/logging"
)

type (
	Args struct {
		LogLevel string     `arg:"--log-level,env:LOCO_LOG_LEVEL" default:"warn" help:"trace, debug, info, warn or error"`
		Peek     *PeekCmd   `arg:"subcommand:peek" help:"print the headers of object files"`
		Dump     *DumpCmd   `arg:"subcommand:dump" help:"convert an object file to JSON"`
		Build    *BuildCmd  `arg:"subcommand:build" help:"convert a JSON dump back to an object file"`
		Repack   *RepackCmd `arg:"subcommand:repack" help:"re-encode an object file with another encoding"`
		Scan     *ScanCmd   `arg:"subcommand:scan" help:"index every object file of a folder"`
		Images   *ImagesCmd `arg:"subcommand:images" help:"export the images of an object file as PNG"`
	}
	PeekCmd struct {
		Paths []string `arg:"positional,required" placeholder:"FILE"`
	}
	DumpCmd struct {
		From  string `arg:"required" help:"path to object file" placeholder:"obj.dat"`
		To    string `arg:"required" help:"path to destination file" placeholder:"obj.json"`
		Force bool   `help:"overwrite the destination file"`
	}
	BuildCmd struct {
		From     string `arg:"required" help:"path to JSON dump" placeholder:"obj.json"`
		To       string `arg:"required" help:"path to destination file" placeholder:"obj.dat"`
		Encoding string `help:"override the encoding of the dump"`
		Force    bool   `help:"overwrite the destination file"`
	}
	RepackCmd struct {
		From     string `arg:"required" help:"path to object file" placeholder:"obj.dat"`
		To       string `arg:"required" help:"path to destination file" placeholder:"new.dat"`
		Encoding string `arg:"required" help:"uncompressed, run_length_single, run_length_multi or rotate"`
		Force    bool   `help:"overwrite the destination file"`
	}
	ScanCmd struct {
		Dir         string `arg:"positional,required" placeholder:"FOLDER"`
		Workers     int    `default:"4" help:"number of files read at once"`
		Cache       string `help:"index snapshot to reuse and update" placeholder:"index.zst"`
		Full        bool   `help:"decode every file completely instead of reading headers only"`
		Duplicates  bool   `help:"list files with identical content"`
		Interactive bool   `help:"show a progress view"`
	}
	ImagesCmd struct {
		From    string `arg:"required" help:"path to object file" placeholder:"obj.dat"`
		Out     string `arg:"required" help:"destination folder" placeholder:"images"`
		Palette string `help:"768 byte RGB palette, grayscale when empty" placeholder:"palette.bin"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"All aboard the command line.\n",
			"A CLI utility to inspect, convert and rebuild Locomotion object files (.dat)",
			"through a JSON form.",
		},
		"\n",
	)
	des += "\n"
	return des
}

var printer = message.NewPrinter(language.English)

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// checkDestination refuses to overwrite an existing file unless forced.
func checkDestination(from string, to string, force bool) error {
	if !CheckExistence(from) {
		return errors.Errorf(`source file "%s" does not exist`, from)
	}
	if CheckExistence(to) && !force {
		return errors.Errorf(
			`destination file "%s" exists; type the command again with --force to overwrite it`,
			to,
		)
	}
	return nil
}

func run(ctx context.Context, args Args, logger hclog.Logger) error {
	switch {
	case args.Peek != nil:
		return StartPeeking(logger, args.Peek.Paths)
	case args.Dump != nil:
		return StartDumping(logger, *args.Dump)
	case args.Build != nil:
		return StartBuilding(logger, *args.Build)
	case args.Repack != nil:
		return StartRepacking(logger, *args.Repack)
	case args.Scan != nil:
		return StartScanning(ctx, logger, *args.Scan)
	case args.Images != nil:
		return StartExporting(logger, *args.Images)
	}
	return nil
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stdout)
		return
	}

	logger := logging.NewLogger("loco-savior", args.LogLevel, nil)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, args, logger); err != nil {
		logger.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
