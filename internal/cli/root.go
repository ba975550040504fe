package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Adriftdev/gemini-client/gemini"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// Generator defines the dependencies required to run the commands.
type Generator interface {
	GenerateContent(ctx context.Context, model string, req *gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)
	ListModels(ctx context.Context) ([]gemini.Model, error)
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Client       Generator
	Args         Arguments
	DefaultModel string
	Version      string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "gemini",
		Short: "Gemini generative language CLI",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(generateCommand(deps.Client, deps.DefaultModel))
	root.AddCommand(modelsCommand(deps.Client))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.PreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func generateCommand(client Generator, defaultModel string) *cobra.Command {
	var model string
	var system string
	var grounded bool
	var groundingThreshold float64
	var temperature float64
	var maxOutputTokens int

	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Generate a model response for a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			req := &gemini.GenerateContentRequest{
				Contents: []gemini.Content{
					{Role: gemini.RoleUser, Parts: []gemini.Part{gemini.TextPart(prompt)}},
				},
			}
			if system != "" {
				req.SystemInstruction = &gemini.Content{
					Role:  gemini.RoleSystem,
					Parts: []gemini.Part{gemini.TextPart(system)},
				}
			}
			if grounded {
				req.Tools = []gemini.Tool{
					gemini.GoogleSearchRetrievalTool(gemini.DynamicRetrievalModeDynamic, groundingThreshold),
				}
			}
			if cmd.Flags().Changed("temperature") || cmd.Flags().Changed("max-output-tokens") {
				config := &gemini.GenerationConfig{}
				if cmd.Flags().Changed("temperature") {
					config.Temperature = &temperature
				}
				if cmd.Flags().Changed("max-output-tokens") {
					config.MaxOutputTokens = &maxOutputTokens
				}
				req.GenerationConfig = config
			}

			resp, err := client.GenerateContent(cmd.Context(), model, req)
			if err != nil {
				return err
			}
			if len(resp.Candidates) == 0 {
				return fmt.Errorf("no candidates returned for model %s", model)
			}

			candidate := resp.Candidates[0]
			if candidate.FinishReason != "" && candidate.FinishReason != "STOP" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: generation finished with reason %s\n", candidate.FinishReason)
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != nil {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), *part.Text)
				}
			}
			if usage := resp.UsageMetadata; usage != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "tokens: %d in, %d out\n", usage.PromptTokenCount, usage.CandidatesTokenCount)
			}
			return nil
		},
	}

	if defaultModel == "" {
		defaultModel = "gemini-2.5-flash"
	}
	cmd.Flags().StringVar(&model, "model", defaultModel, "Model to generate with")
	cmd.Flags().StringVar(&system, "system", "", "System instruction to steer the model")
	cmd.Flags().BoolVar(&grounded, "grounded", false, "Ground the response with Google Search retrieval")
	cmd.Flags().Float64Var(&groundingThreshold, "grounding-threshold", 0.3, "Dynamic retrieval threshold (0.0-1.0)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "Sampling temperature")
	cmd.Flags().IntVar(&maxOutputTokens, "max-output-tokens", 0, "Maximum tokens in the response")

	return cmd
}

func modelsCommand(client Generator) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := client.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.BaseModelID, m.DisplayName)
			}
			return nil
		},
	}
}
