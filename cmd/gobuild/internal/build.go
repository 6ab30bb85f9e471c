package internal

import (
	"fmt"
	"strings"

	"github.com/contriboss/gobuild"
	"github.com/spf13/cobra"
)

var buildFlags struct {
	libName    string
	buildmode  string
	outDir     string
	ldflags    string
	trimPaths  bool
	goarch     string
	goos       string
	env        []string
	noMetadata bool
	configPath string
}

var buildCmd = &cobra.Command{
	Use:   "build [flags] file...",
	Short: "Compile Go source files into a linkable library",
	Long: `Build compiles the given Go source files into a C archive (default) or a
C shared library named lib<name>.<ext> in the output directory, then prints
the linkage directives for the host build.`,
	Args: cobra.ArbitraryArgs,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVarP(&buildFlags.libName, "output", "o", "", "Logical library name (libfoo.a is -o foo)")
	f.StringVar(&buildFlags.buildmode, "buildmode", "c-archive", "Build mode: c-archive or c-shared")
	f.StringVar(&buildFlags.outDir, "out-dir", "", "Output directory (default: $OUT_DIR)")
	f.StringVar(&buildFlags.ldflags, "ldflags", "", "Linker flags passed to the toolchain")
	f.BoolVar(&buildFlags.trimPaths, "trimpath", false, "Remove file system paths from the artifact")
	f.StringVar(&buildFlags.goarch, "goarch", "", "GOARCH override (default: derived from $CARGO_CFG_TARGET_ARCH)")
	f.StringVar(&buildFlags.goos, "goos", "", "GOOS override (default: derived from $CARGO_CFG_TARGET_OS)")
	f.StringArrayVar(&buildFlags.env, "env", nil, "Extra KEY=VALUE environment for the toolchain (repeatable)")
	f.BoolVar(&buildFlags.noMetadata, "no-metadata", false, "Suppress linkage metadata output")
	f.StringVar(&buildFlags.configPath, "config", "", "Read defaults from a gobuild.toml file")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	b := gobuild.NewBuild()

	if buildFlags.configPath != "" {
		cfg, err := loadConfig(buildFlags.configPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", buildFlags.configPath, err)
		}
		if err := cfg.apply(b); err != nil {
			return err
		}
		if buildFlags.libName == "" {
			buildFlags.libName = cfg.Name
		}
	}

	if buildFlags.libName == "" {
		return fmt.Errorf("a library name is required: pass -o <name> or set name in the config file")
	}

	// Flags override anything the config file set.
	if cmd.Flags().Changed("buildmode") || buildFlags.configPath == "" {
		mode, err := parseBuildmode(buildFlags.buildmode)
		if err != nil {
			return err
		}
		b.Buildmode(mode)
	}
	if buildFlags.outDir != "" {
		b.OutDir(buildFlags.outDir)
	}
	if buildFlags.ldflags != "" {
		b.Ldflags(buildFlags.ldflags)
	}
	if buildFlags.trimPaths {
		b.TrimPaths(true)
	}
	if buildFlags.goarch != "" {
		b.Goarch(buildFlags.goarch)
	}
	if buildFlags.goos != "" {
		b.Goos(buildFlags.goos)
	}
	if buildFlags.noMetadata {
		b.CargoMetadata(false)
	}
	for _, kv := range buildFlags.env {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --env value %q, want KEY=VALUE", kv)
		}
		b.Env(key, val)
	}
	b.Files(args)

	return b.TryCompile(buildFlags.libName)
}

// parseBuildmode maps the flag spelling onto the library's enum.
func parseBuildmode(s string) (gobuild.BuildMode, error) {
	switch s {
	case "c-archive":
		return gobuild.CArchive, nil
	case "c-shared":
		return gobuild.CShared, nil
	default:
		return 0, fmt.Errorf("unsupported buildmode %q, want c-archive or c-shared", s)
	}
}
