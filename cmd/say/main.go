// Command say prompts for one line of text and synthesizes it into a
// WAV file from SP0256-AL2 allophone recordings.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	speak "github.com/ieee0824/speak-go"
)

var rootCmd = &cobra.Command{
	Use:   "say",
	Short: "Concatenative allophone speech synthesizer",
	Long: `say converts a line of text into a speech waveform by looking up each
word in a CMU-format pronunciation dictionary, mapping the phonetic
labels onto SP0256-AL2 allophone recordings, and concatenating the
recordings into a single WAV file.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("dict", "cmudict.dict", "CMU-format pronunciation dictionary")
	flags.String("fragments", "modified_wav", "directory of allophone WAV files")
	flags.String("out", "output.wav", "output WAV file")
	flags.String("text", "", "text to speak (skips the interactive prompt)")
	flags.Bool("ignore-spaces", true, "drop space fragments from the output")
	flags.Bool("ignore-periods", true, "drop period fragments from the output")
	flags.Bool("ignore-commas", true, "drop comma fragments from the output")
	flags.BoolP("verbose", "v", false, "verbose logging")

	viper.SetEnvPrefix("SAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	syn, err := speak.NewSynthesizer(
		viper.GetString("dict"),
		viper.GetString("fragments"),
		speak.WithConfig(speak.Config{
			IgnoreSpaces:  viper.GetBool("ignore-spaces"),
			IgnorePeriods: viper.GetBool("ignore-periods"),
			IgnoreCommas:  viper.GetBool("ignore-commas"),
		}),
	)
	if err != nil {
		return err
	}
	slog.Debug("dictionary loaded", "words", len(syn.Dict.Entries))

	text := viper.GetString("text")
	if text == "" {
		prompt := promptui.Prompt{Label: "say"}
		text, err = prompt.Run()
		if err != nil {
			return err
		}
	}

	result, err := syn.Synthesize(text, viper.GetString("out"))
	if err != nil {
		return err
	}

	printReport(result)
	return nil
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

func printReport(r *speak.Result) {
	rows := []struct {
		label, value string
	}{
		{"Input string:", r.Input},
		{"Identified allophones:", formatWords(r)},
		{"Corresponding WAV files:", strings.Join(r.Fragments, ", ")},
		{"Output file:", r.OutputFile},
	}

	width := 0
	for _, row := range rows {
		if len(row.label) > width {
			width = len(row.label)
		}
	}
	for _, row := range rows {
		padded := fmt.Sprintf("%*s", width, row.label)
		fmt.Printf("%s %s\n", labelStyle.Render(padded), row.value)
	}
}

func formatWords(r *speak.Result) string {
	words := make([]string, 0, len(r.Words))
	for w := range r.Words {
		words = append(words, w)
	}
	sort.Strings(words)

	parts := make([]string, len(words))
	for i, w := range words {
		labels := make([]string, len(r.Words[w]))
		for j, l := range r.Words[w] {
			labels[j] = string(l)
		}
		parts[i] = fmt.Sprintf("%s: [%s]", w, strings.Join(labels, " "))
	}
	return strings.Join(parts, "  ")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
