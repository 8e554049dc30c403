package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/gradient"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const (
	defaultDB     = "gradients.db"
	defaultOutput = "gradient"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// verbose output goes here when enabled
var stderr io.Writer = os.Stderr

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(stderr)
	}
	return logger
}

func options(c *cli.Context) (gradient.Options, error) {
	mode, err := gradient.ParseMode(c.String("mode"))
	if err != nil {
		return gradient.Options{}, err
	}

	format, err := gradient.ParseFormat(c.String("format"))
	if err != nil {
		return gradient.Options{}, err
	}

	return gradient.Options{
		Name:          c.String("name"),
		X:             c.Int("x"),
		Start:         c.Int("start"),
		End:           c.Int("end"),
		Height:        c.Int("height"),
		Mode:          mode,
		CGRAMIndex:    c.Int("cgram"),
		UseCGRAMIndex: c.IsSet("cgram"),
		Colors:        c.Int("colors"),
		Format:        format,
		Store:         c.Bool("store"),
	}, nil
}

// prompt asks for the input image and output file when run from a terminal
// without any arguments
func prompt() (string, string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", errors.New("no input image given")
	}

	fmt.Println("HDMA Gradient Ripper")
	fmt.Println()

	r := bufio.NewReader(os.Stdin)

	fmt.Print("Enter the image to be ripped: ")
	input, err := r.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	fmt.Print("Enter the name of the ASM file: ")
	output, err := r.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(input), strings.TrimSpace(output), nil
}

func rip(c *cli.Context) error {
	opt, err := options(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	files := c.Args().Slice()
	output := c.String("output")
	if len(files) == 0 {
		input, o, err := prompt()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		files, output = []string{input}, o
	}

	var db *gradient.CatalogDB
	if opt.Store {
		db, err = gradient.NewCatalogDB(c.String("db"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer db.Close()
	}

	logger := newLogger(c)
	r := gradient.New(db, logger)

	if len(files) > 1 {
		if output != "" {
			logger.Printf("ignoring output %q when ripping more than one image\n", output)
		}
		if err := r.RipAll(context.Background(), opt, files); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}

	g, err := r.Rip(opt, files[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if output == "" {
		output = defaultOutput + opt.Format.Ext()
	}
	if err := g.WriteFile(output); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func list(c *cli.Context) error {
	db, err := gradient.NewCatalogDB(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	entries, err := db.List()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, e := range entries {
		fmt.Printf("%-24s %-6s %4d %6d %s\n", e.Name, e.Mode, e.Height, e.Size, filepath.Base(e.Source))
	}

	return nil
}

func show(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	db, err := gradient.NewCatalogDB(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	g, err := db.Find(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if g == nil {
		return cli.NewExitError(fmt.Sprintf("no gradient named %q", c.Args().First()), 1)
	}

	if _, err := g.WriteTo(os.Stdout); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func newApp() (*cli.App, error) {
	app := cli.NewApp()

	app.Name = "gradientrip"
	app.Usage = "SNES HDMA gradient ripper"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GRADIENTRIP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "rip",
			Usage:       "Rip a gradient from a column of an image",
			Description: "With more than one image each gradient is written next to its image.",
			ArgsUsage:   "FILE...",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "x",
					Aliases: []string{"xpos"},
					Usage:   "column to rip",
				},
				&cli.IntFlag{
					Name:    "start",
					Aliases: []string{"s"},
					Usage:   "first row to rip",
				},
				&cli.IntFlag{
					Name:    "end",
					Aliases: []string{"e"},
					Usage:   "row after the last to rip (default: image height)",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "number of scanlines of the gradient (default: image height, at least 224)",
				},
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Value:   "auto",
					Usage:   "table layout: single, double, big, cgram or auto",
				},
				&cli.IntFlag{
					Name:    "cgram",
					Aliases: []string{"c"},
					Usage:   "CG-RAM index to write with each colour in cgram mode",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce the column to at most this many colours",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file (default: gradient.asm)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "asm",
					Usage:   "output format: asm or bin",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "name of the gradient in the catalog (default: image name)",
				},
				&cli.BoolFlag{
					Name:  "store",
					Usage: "record the gradient in the catalog",
				},
			},
			Action: rip,
		},
		{
			Name:   "list",
			Usage:  "List gradients in the catalog",
			Action: list,
		},
		{
			Name:      "show",
			Usage:     "Print the listing of a gradient in the catalog",
			ArgsUsage: "NAME",
			Action:    show,
		},
	}

	return app, nil
}

func main() {
	app, err := newApp()
	if err != nil {
		log.Fatal(err)
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
