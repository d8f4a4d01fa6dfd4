package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/tussle/tiler"
	"github.com/tussle/tiler/csvmap"
	"github.com/tussle/tiler/iso"
	"github.com/tussle/tiler/library"
	"github.com/tussle/tiler/ortho"
	"github.com/tussle/tiler/palette"
	"github.com/tussle/tiler/render"
	"github.com/urfave/cli/v2"
)

const defaultDB = "tiler.db"

var log = logrus.New()

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func setupLogging(c *cli.Context) error {
	log.SetOutput(io.Discard)
	if c.Bool("verbose") {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
	}
	if c.Bool("json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

func variantFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "variant",
		EnvVars: []string{"TILER_VARIANT"},
		Value:   tiler.Orthogonal.String(),
		Usage:   "grid projection, orthogonal or isometric",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write to `FILE` instead of stdout",
	}
}

func newEditor(c *cli.Context) (*tiler.Editor, error) {
	v, err := tiler.ParseVariant(c.String("variant"))
	if err != nil {
		return nil, err
	}
	return tiler.New(v, palette.Default, log), nil
}

func openLibrary(c *cli.Context) (library.Storage, error) {
	return library.Open(c.String("driver"), c.String("db"))
}

// create opens file for writing, adding ext if it has no extension. An
// empty name or "-" means stdout.
func create(file, ext string) (io.WriteCloser, error) {
	if file == "" || file == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if filepath.Ext(file) == "" {
		file += ext
	}
	return os.Create(file)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func importCSV(e *tiler.Editor, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return e.ImportCSV(f)
}

func exportCSV(e *tiler.Editor, file string) error {
	w, err := create(file, ".csv")
	if err != nil {
		return err
	}
	if err := e.ExportCSV(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func convertAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	e := tiler.New(tiler.Orthogonal, palette.Default, log)

	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	if err := e.ImportImage(f); err != nil {
		return cli.Exit(err, 1)
	}

	if err := exportCSV(e, c.String("output")); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func batchAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	conv := tiler.Converter{
		Palette: palette.Default,
		Logger:  log,
		Workers: c.Int("workers"),
	}
	if err := conv.Convert(c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func renderAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	e, err := newEditor(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := importCSV(e, c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	if c.IsSet("cell-size") {
		if err := e.Zoom(c.Int("cell-size")); err != nil {
			return cli.Exit(err, 1)
		}
	}

	w, err := create(c.String("output"), ".png")
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer w.Close()

	if err := render.Encode(w, e.Render()); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func newAction(c *cli.Context) error {
	e, err := newEditor(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := e.ResizeFromInput(c.String("width"), c.String("height")); err != nil {
		return cli.Exit(err, 1)
	}

	if err := exportCSV(e, c.String("output")); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func cellAction(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	v, err := tiler.ParseVariant(c.String("variant"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	x, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}
	y, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err, 1)
	}
	p := image.Pt(x, y)

	var col, row int
	var ok bool
	var at image.Point
	switch v {
	case tiler.Isometric:
		m := iso.Mapper{Width: c.Int("width"), Height: c.Int("height"), CellSize: c.Int("cell-size")}
		if col, row, ok = m.Cell(p); ok {
			at = m.Center(col, row)
		}
	default:
		m := ortho.Mapper{Width: c.Int("width"), Height: c.Int("height"), CellSize: c.Int("cell-size")}
		if col, row, ok = m.Cell(p); ok {
			at = m.Origin(col, row)
		}
	}

	if !ok {
		return cli.Exit(fmt.Sprintf("%v is outside the grid", p), 2)
	}

	fmt.Fprintf(c.App.Writer, "X%d Y%d at %d,%d\n", col+1, row+1, at.X, at.Y)

	return nil
}

func paletteAction(c *cli.Context) error {
	p := palette.Default

	if c.IsSet("from") {
		f, err := os.Open(c.String("from"))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer f.Close()

		m, _, err := image.Decode(f)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if p, err = palette.FromImage(m, c.Int("colors")); err != nil {
			return cli.Exit(err, 1)
		}
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, t := range p.Tiles() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Hex(), t.Name)
	}
	return tw.Flush()
}

func saveAction(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	e, err := newEditor(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := importCSV(e, c.Args().Get(1)); err != nil {
		return cli.Exit(err, 1)
	}

	s, err := openLibrary(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	if err := s.Save(&library.Map{Name: c.Args().First(), Variant: e.Variant().String(), Grid: e.Grid()}); err != nil {
		return cli.Exit(err, 1)
	}

	log.WithField("name", c.Args().First()).Info("Saved map")

	return nil
}

func loadAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := openLibrary(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	m, err := s.Load(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	w, err := create(c.String("output"), ".csv")
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer w.Close()

	log.WithFields(logrus.Fields{
		"name":    m.Name,
		"variant": m.Variant,
	}).Debug("Loaded map")

	if err := csvmap.Encode(w, m.Grid); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func listAction(c *cli.Context) error {
	s, err := openLibrary(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	list, err := s.List()
	if err != nil {
		return cli.Exit(err, 1)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, m := range list {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\n", m.Name, m.Variant, m.Width, m.Height, m.Modified.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func deleteAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := openLibrary(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	if err := s.Delete(c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file, using defaults")
	}

	app := cli.NewApp()

	app.Name = "tiler"
	app.Usage = "Tile map painting utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TILER_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to, or connection string for, the map library",
		},
		&cli.StringFlag{
			Name:    "driver",
			EnvVars: []string{"TILER_DRIVER"},
			Value:   "sqlite3",
			Usage:   "map library database, sqlite3 or postgres",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.BoolFlag{
			Name:    "json",
			EnvVars: []string{"TILER_LOG_JSON"},
			Usage:   "log as JSON",
		},
	}

	app.Before = setupLogging

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image to a CSV map",
			ArgsUsage: "IMAGE",
			Flags:     []cli.Flag{outputFlag()},
			Action:    convertAction,
		},
		{
			Name:      "batch",
			Usage:     "Convert every image below a directory to a CSV map",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of images converted at once",
				},
			},
			Action: batchAction,
		},
		{
			Name:      "render",
			Usage:     "Render a CSV map as a PNG",
			ArgsUsage: "CSV",
			Flags: []cli.Flag{
				variantFlag(),
				outputFlag(),
				&cli.IntFlag{
					Name:  "cell-size",
					Usage: "cell size in pixels",
				},
			},
			Action: renderAction,
		},
		{
			Name:  "new",
			Usage: "Create a blank CSV map",
			Flags: []cli.Flag{
				variantFlag(),
				outputFlag(),
				&cli.StringFlag{
					Name:  "width",
					Value: strconv.Itoa(tiler.DefaultWidth),
					Usage: "number of columns",
				},
				&cli.StringFlag{
					Name:  "height",
					Value: strconv.Itoa(tiler.DefaultHeight),
					Usage: "number of rows",
				},
			},
			Action: newAction,
		},
		{
			Name:      "cell",
			Usage:     "Find the cell under a screen position",
			ArgsUsage: "X Y",
			Flags: []cli.Flag{
				variantFlag(),
				&cli.IntFlag{
					Name:  "width",
					Value: tiler.DefaultWidth,
					Usage: "number of columns",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: tiler.DefaultHeight,
					Usage: "number of rows",
				},
				&cli.IntFlag{
					Name:  "cell-size",
					Value: tiler.DefaultCellSize,
					Usage: "cell size in pixels",
				},
			},
			Action: cellAction,
		},
		{
			Name:  "palette",
			Usage: "List palette tiles",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "from",
					Usage: "suggest a palette from `IMAGE`",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: palette.Default.Len(),
					Usage: "number of colors to suggest",
				},
			},
			Action: paletteAction,
		},
		{
			Name:      "save",
			Usage:     "Save a CSV map to the library",
			ArgsUsage: "NAME CSV",
			Flags:     []cli.Flag{variantFlag()},
			Action:    saveAction,
		},
		{
			Name:      "load",
			Usage:     "Export a map from the library as CSV",
			ArgsUsage: "NAME",
			Flags:     []cli.Flag{outputFlag()},
			Action:    loadAction,
		},
		{
			Name:   "list",
			Usage:  "List maps in the library",
			Action: listAction,
		},
		{
			Name:      "delete",
			Usage:     "Delete a map from the library",
			ArgsUsage: "NAME",
			Action:    deleteAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
