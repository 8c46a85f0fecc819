package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mandykoh/go-markov/pkg/markov"
	"github.com/mandykoh/go-markov/pkg/textgen"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:     "markovgen",
		Short:   "Train Markov chain models on text and generate from them",
		Long:    "markovgen trains a variable-order Markov chain model on the given corpus files (or stdin) and generates, completes, or inspects text with it. Models are held in memory for the duration of one invocation.",
		Version: fmt.Sprintf("%s (%s)", Version, Commit),
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "markovgen.json", "path to the config file")

	root.AddCommand(newGenerateCmd(&configPath))
	root.AddCommand(newCompleteCmd(&configPath))
	root.AddCommand(newStatsCmd(&configPath))

	return root
}

// setup loads the config and returns a generator trained on the corpus
// files given as args, or on the command's stdin when no files are given.
func setup(cmd *cobra.Command, configPath string, args []string) (*textgen.Generator, *Config, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	model := markov.NewModel[string](config.Order)
	tokenizer := textgen.NewWordTokenizer(
		textgen.WithSeparator(config.Separator),
		textgen.WithEOC(config.EOC),
	)

	g := textgen.NewGenerator(model, tokenizer, nil)
	g.SetLogger(setupLogger(config.LogLevel))

	if len(args) == 0 {
		if err = g.Train(cmd.Context(), cmd.InOrStdin()); err != nil {
			return nil, nil, fmt.Errorf("training from stdin: %w", err)
		}
		return g, config, nil
	}

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		err = g.Train(cmd.Context(), f)
		_ = f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("training from %s: %w", path, err)
		}
	}
	return g, config, nil
}

func newGenerateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [corpus files...]",
		Short: "Generate random text from a model trained on the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, config, err := setup(cmd, *configPath, args)
			if err != nil {
				return err
			}

			for i := 0; i < config.Count; i++ {
				cmd.Println(g.Generate(textgen.WithMaxLength(config.MaxLength)))
			}
			return nil
		},
	}
}

func newCompleteCmd(configPath *string) *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "complete --seed TEXT [corpus files...]",
		Short: "Deterministically complete a seed using the most probable continuation",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, config, err := setup(cmd, *configPath, args)
			if err != nil {
				return err
			}

			completed, err := g.Complete(seed, textgen.WithMaxLength(config.MaxLength))
			if err != nil {
				return err
			}
			cmd.Println(completed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "text to complete")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}

func newStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [corpus files...]",
		Short: "Train on the corpus and print model statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, config, err := setup(cmd, *configPath, args)
			if err != nil {
				return err
			}

			stats := g.Model().Stats()
			cmd.Printf("order:              %d\n", config.Order)
			cmd.Printf("contexts:           %d\n", stats.Contexts)
			cmd.Printf("links:              %d\n", stats.TotalLinks)
			cmd.Printf("observations:       %d\n", stats.TotalObservations)
			cmd.Printf("vocabulary size:    %d\n", stats.VocabSize)
			cmd.Printf("starting symbols:   %d\n", stats.StartingSymbols)
			return nil
		},
	}
}
