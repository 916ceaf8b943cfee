package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shaban/audiofx/chain"
	"github.com/shaban/audiofx/components"
	"github.com/shaban/audiofx/engine/algodsp"
	"github.com/shaban/audiofx/node"
	"github.com/shaban/audiofx/render"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an effect chain offline to a wav file",
	Long: `Render a sine source through a chain of effects and capture the
output as a mono 16-bit wav file.

The chain is given as a list of effect subtypes in processing order, e.g.:

  audiofx render --effects hpas,dely --output out.wav

Each effect comes up with its documented parameter defaults; defaults can
be overridden per effect type in the config file under render.params, e.g.:

  render:
    params:
      hpas:
        halfPowerPoint: 100`,
	Run: func(cmd *cobra.Command, args []string) {
		runRender()
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringSlice("effects", []string{}, "effect subtypes in processing order")
	renderCmd.Flags().String("output", "chain.wav", "output wav file path")
	renderCmd.Flags().Duration("duration", time.Second, "render duration")
	renderCmd.Flags().Float64("sample-rate", 44100, "render sample rate in Hz")
	renderCmd.Flags().Float64("source-frequency", 440, "sine source frequency in Hz")
	renderCmd.Flags().Float64("source-amplitude", 0.5, "sine source amplitude")
	renderCmd.Flags().String("preset", "", "chain preset file to load (replaces --effects)")
	renderCmd.Flags().String("save-preset", "", "write the configured chain to a preset file")

	viper.BindPFlag("render.effects", renderCmd.Flags().Lookup("effects"))
	viper.BindPFlag("render.preset", renderCmd.Flags().Lookup("preset"))
	viper.BindPFlag("render.save_preset", renderCmd.Flags().Lookup("save-preset"))
	viper.BindPFlag("render.output", renderCmd.Flags().Lookup("output"))
	viper.BindPFlag("render.duration", renderCmd.Flags().Lookup("duration"))
	viper.BindPFlag("render.sample_rate", renderCmd.Flags().Lookup("sample-rate"))
	viper.BindPFlag("render.source_frequency", renderCmd.Flags().Lookup("source-frequency"))
	viper.BindPFlag("render.source_amplitude", renderCmd.Flags().Lookup("source-amplitude"))
}

func runRender() {
	sampleRate := viper.GetFloat64("render.sample_rate")
	eng := algodsp.New(algodsp.WithSampleRate(sampleRate))

	c := chain.New(chain.Config{Name: "render", Engine: eng})
	defer c.Release()

	if presetPath := viper.GetString("render.preset"); presetPath != "" {
		loadPreset(c, presetPath)
	} else {
		subtypes := viper.GetStringSlice("render.effects")
		if len(subtypes) == 0 {
			log.Fatal("no effects given; use --effects, --preset or the config file (audiofx units lists the available subtypes)")
		}
		for _, subtype := range subtypes {
			desc, err := components.Lookup(subtype)
			if err != nil {
				log.Fatal(err)
			}
			n, err := node.New(eng, desc, nil, paramOptions(subtype, desc)...)
			if err != nil {
				log.Fatal(err)
			}
			if err := c.Append(n); err != nil {
				log.Fatal(err)
			}
		}
	}

	if savePath := viper.GetString("render.save_preset"); savePath != "" {
		savePreset(c, savePath)
	}

	spec := render.Spec{
		SampleRate: sampleRate,
		Duration:   viper.GetDuration("render.duration"),
		BlockSize:  512,
	}
	src := render.Sine(
		viper.GetFloat64("render.source_frequency"),
		viper.GetFloat64("render.source_amplitude"),
		sampleRate,
	)

	samples, err := render.Render(c, src, spec)
	if err != nil {
		log.Fatal(err)
	}

	output := viper.GetString("render.output")
	if err := render.WriteWAV(output, samples, int(sampleRate)); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: wrote %d samples (%s)\n", output, len(samples), c.Summary())
}

func loadPreset(c *chain.Chain, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := c.LoadPreset(f); err != nil {
		log.Fatal(err)
	}
}

func savePreset(c *chain.Chain, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := c.SavePreset(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote chain preset:", path)
}

// paramOptions reads per-effect parameter overrides from the config file.
func paramOptions(subtype string, desc components.Description) []node.Option {
	overrides := viper.GetStringMap(fmt.Sprintf("render.params.%s", subtype))
	opts := make([]node.Option, 0, len(overrides))
	for identifier := range overrides {
		p, err := desc.ParameterByIdentifier(identifier)
		if err != nil {
			log.Fatal(err)
		}
		value := viper.GetFloat64(fmt.Sprintf("render.params.%s.%s", subtype, identifier))
		opts = append(opts, node.WithParameter(p.Identifier, float32(value)))
	}
	return opts
}
