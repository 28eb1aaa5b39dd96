package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sealgen/internal/config"
	"sealgen/internal/errors"
	"sealgen/internal/gen"
	"sealgen/internal/logger"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	dir      string
	settings *config.Settings
}

// flagKeys maps flag names to setting keys.
var flagKeys = map[string]string{
	"manifest":    config.KeyManifest,
	"suffix":      config.KeySuffix,
	"strict":      config.KeyStrict,
	"json-logs":   config.KeyJSONLogs,
	"verbose":     config.KeyVerbose,
	"concurrency": config.KeyConcurrency,
	"dry-run":     config.KeyDryRun,
}

// NewRootCmd builds the sealgen command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "sealgen",
		Short: "Generate sealed sum types from annotated Go interfaces",
		Long: `sealgen turns an interface marked with //sealgen: directives into a closed
sum type: a sealed root interface, a visitor, one wrapper and factory per
permitted type, Map/FlatMap for generic roots, and staged matcher builders
that only compile once every case is handled.

Examples:
  sealgen gen ./...                  # generate every blueprint in the module
  sealgen check ./...                # fail when generated files are stale
  sealgen validate ./examples/pets   # report diagnostics only
  sealgen inspect --blueprint PetDef # show the synthesized graph
  sealgen watch ./...                # regenerate on change`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Sync() },
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.dir, "dir", "C", ".", "Run as if sealgen was started in this directory")
	f.String("manifest", "", "Blueprint manifest (.yaml, .toml or .hcl)")
	f.String("suffix", gen.DefaultSuffix, "Suffix of generated files")
	f.Bool("strict", true, "Override strict mode for every blueprint")
	f.Bool("json-logs", false, "Emit JSON logs")
	f.BoolP("verbose", "v", false, "Enable debug logging")
	f.Int("concurrency", 0, "Blueprints processed in parallel (default GOMAXPROCS)")
	f.Bool("dry-run", false, "Generate without writing files")

	for name, key := range flagKeys {
		// The flags were registered above, so binding cannot fail.
		_ = a.v.BindPFlag(key, f.Lookup(name))
	}

	root.AddCommand(
		newGenCmd(a),
		newCheckCmd(a),
		newValidateCmd(a),
		newInspectCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	settings, err := config.LoadSettings(a.v, a.dir)
	if err != nil {
		return err
	}

	if err := logger.Initialize(settings.JSONLogs, settings.Verbose); err != nil {
		return errors.Wrap(err, "initializing logger")
	}

	if settings.File != "" {
		logger.Logger.Debugw("loaded settings", "file", settings.File)
	}

	a.settings = settings

	return nil
}

// PrintError writes err and its hints to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprint(w, pterm.Error.Sprintln(err.Error()))

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, "  "+pterm.Gray("→")+" "+hint)
	}
}
