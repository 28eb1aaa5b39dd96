package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X sealgen/cmd/sealgen/commands.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show sealgen version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			version := Version
			if info, ok := debug.ReadBuildInfo(); ok && version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
				version = info.Main.Version
			}

			fmt.Fprintf(out, "sealgen %s\n", version)
			fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
