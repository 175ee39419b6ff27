package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/domify-dev/domify/internal/config"
	"github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/htmldom"
	"github.com/domify-dev/domify/pkg/hyperscript"
	"github.com/domify-dev/domify/pkg/propmap"
	"github.com/domify-dev/domify/pkg/render"
	"github.com/domify-dev/domify/pkg/vdom"
)

func convertCmd() *cobra.Command {
	var (
		format     string
		outPath    string
		pretty     bool
		configPath string
		maxDepth   int
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a markup file to descriptors",
		Long: `Convert markup to an abstract element descriptor tree.

Reads from the given file, or from stdin when no file (or "-") is
given. The registry and props aliases come from domify.json, found
by walking up from the working directory unless --config points at
a file directly.

Examples:
  domify convert page.html
  domify convert page.html --format=html --pretty
  cat page.html | domify convert -o page.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runConvert(input, format, outPath, pretty, configPath, cmd.Flags().Changed("max-depth"), maxDepth)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, msgpack, or html")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent json and html output")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to domify.json")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Recursion bound override (negative disables)")

	return cmd
}

func runConvert(input, format, outPath string, pretty bool, configPath string, depthSet bool, maxDepth int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if depthSet {
		cfg.MaxDepth = maxDepth
	}

	var in io.Reader = os.Stdin
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return errors.New("L001").WithDetailf("tried %s", input).Wrap(err)
		}
		defer f.Close()
		in = f
	}

	node, err := htmldom.ParseFragment(in)
	if err != nil {
		return errors.New("E002").Wrap(err)
	}

	result, err := hyperscript.Convert(node, vdom.H, vdom.Fragment, buildRegistry(cfg),
		hyperscript.WithPropsMapper(buildMapper(cfg)),
		hyperscript.WithMaxDepth(cfg.EffectiveMaxDepth()),
	)
	if err != nil {
		return errors.FromError(err, "E001")
	}
	vn, _ := result.(*vdom.VNode)

	var body []byte
	switch format {
	case "json":
		if pretty {
			body, err = vdom.EncodeJSONIndent(vn)
		} else {
			body, err = vdom.EncodeJSON(vn)
		}
	case "msgpack":
		body, err = vdom.EncodeMsgpack(vn)
	case "html":
		var out string
		out, err = render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(vn)
		body = []byte(out)
	default:
		return errors.New("L002").WithDetailf("format %q", format)
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		os.Stdout.Write(body)
		if format != "msgpack" {
			os.Stdout.Write([]byte{'\n'})
		}
		return nil
	}
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return errors.New("L003").WithDetailf("tried %s", outPath).Wrap(err)
	}
	success("Wrote %s", outPath)
	return nil
}

// loadConfig loads an explicit config file, or finds one from the working
// directory with a fall back to defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	return config.Find(wd)
}

// buildRegistry turns the config's tag → component-name map into converter
// registry entries.
func buildRegistry(cfg *config.Config) hyperscript.Registry {
	registry := hyperscript.Registry{}
	for tag, name := range cfg.Registry {
		registry.Register(tag, vdom.ComponentRef{Name: name})
	}
	return registry
}

// buildMapper builds the reference props mapper with the config's aliases.
func buildMapper(cfg *config.Config) hyperscript.PropsMapper {
	return propmap.New(
		propmap.WithComponentAliases(cfg.Props.ComponentAliases),
		propmap.WithIntrinsicAliases(cfg.Props.IntrinsicAliases),
	)
}
