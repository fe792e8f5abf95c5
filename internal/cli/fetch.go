package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pion/logging"
	"github.com/spf13/cobra"

	"github.com/fontydev/fonty/internal/config"
	"github.com/fontydev/fonty/internal/fetch"
)

var errNoFontsProvided = errors.New("no fonts specified: pass at least one font family name")

func newFetchCmd() *cobra.Command {
	opts := fetch.Options{}
	cmd := &cobra.Command{
		Use:   "fetch <font1> [font2] [font3] ...",
		Short: "Fetch font families and install them under the base directory",
		Long: `Fetch the given font families from Google Fonts. Quote or escape names
that contain spaces. A single family is installed into its own
subdirectory; multiple families keep the catalog's per-family layout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.Fonts) == 0 && len(args) == 0 {
				return errNoFontsProvided
			}

			if len(args) > 0 {
				opts.Fonts = append(opts.Fonts, args...)
			}
			opts.Fonts = fetch.SplitAndTrim(opts.Fonts)

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if configPath == "" {
				configPath = config.DefaultPath()
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if opts.BaseDir == "" {
				opts.BaseDir = cfg.BasePath
			}
			opts.DownloadListURL = cfg.Catalog.DownloadListURL
			opts.SpecimenURL = cfg.Catalog.SpecimenURL
			opts.LoggerFactory = loggerFactory(cmd)
			opts.Progress = consoleProgress{}

			printInfo("Will download the following fonts: %s", quotedList(opts.Fonts))
			printInfo("Font base dir (installation dir): %s", color.BlueString("'%s'", opts.BaseDir))
			printInfo("Writing text files... (Licenses, READMEs, etc.)")

			if err := fetch.Run(cmd.Context(), opts); err != nil {
				return err
			}

			printInfo("All downloads %s!", color.GreenString("DONE"))

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", "", "base directory to install fonts under")

	return cmd
}

func loggerFactory(cmd *cobra.Command) logging.LoggerFactory {
	factory := logging.NewDefaultLoggerFactory()
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		factory.DefaultLogLevel = logging.LogLevelDebug
	}

	return factory
}

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", color.CyanString("INFO:"), fmt.Sprintf(format, args...))
}

func quotedList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, color.BlueString("'%s'", name))
	}

	return strings.Join(quoted, ", ")
}

// consoleProgress renders per-download progress lines, one per reference.
type consoleProgress struct{}

func (consoleProgress) Start(index, total int, filename string) {
	fmt.Printf("%s Downloading file %s: %s ... ",
		color.CyanString("INFO:"),
		color.YellowString("%d/%d", index+1, total),
		color.BlueString("'%s'", filename))
}

func (consoleProgress) Done(int, int, string) {
	fmt.Println(color.GreenString("DONE!"))
}
