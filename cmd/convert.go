package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
)

var (
	inputFile    string
	outputFile   string
	verbose      bool
	finalComma   bool
	singleDash   bool
	whitespace   bool
	uppercaseTag bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Convert bibliographic references between formats",
	Long: `Convert bibliographic references from one exchange format to another.

Arguments:
  from    Source format identifier (e.g. bibtexin, risin, modsin)
  to      Target format identifier (e.g. bibtexout, risout, modsout)

Input defaults to stdin, output defaults to stdout.

Examples:
  bibconv convert bibtexin risout -i refs.bib -o refs.ris
  cat refs.bib | bibconv convert bibtexin modsout`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&verbose, "verbose", false, "Warn about unknown tags and reftypes")
	convertCmd.Flags().BoolVar(&finalComma, "final-comma", false, "Emit a trailing comma after the last field (BibTeX)")
	convertCmd.Flags().BoolVar(&singleDash, "single-dash", false, "Use a single dash in page ranges instead of double")
	convertCmd.Flags().BoolVar(&whitespace, "whitespace", false, "Pad tag names for column alignment")
	convertCmd.Flags().BoolVar(&uppercaseTag, "uppercase-tags", false, "Emit tag names in uppercase")
}

func runConvert(_ *cobra.Command, args []string) (err error) {
	fromName, toName := args[0], args[1]

	fromID, ok := reftype.ParseFormatID(fromName)
	if !ok {
		return fmt.Errorf("unknown source format %q", fromName)
	}
	toID, ok := reftype.ParseFormatID(toName)
	if !ok {
		return fmt.Errorf("unknown target format %q", toName)
	}

	var input io.Reader = os.Stdin
	inputName := "stdin"
	if inputFile != "" {
		f, oerr := os.Open(inputFile)
		if oerr != nil {
			return fmt.Errorf("opening input file: %w", oerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		inputName = inputFile
	}

	var output io.Writer = os.Stdout
	if outputFile != "" {
		f, cerr := os.Create(outputFile)
		if cerr != nil {
			return fmt.Errorf("creating output file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	}

	param := pipeline.NewParam(fromID, toID)
	var opts reftype.FormatOptions
	if verbose {
		opts |= reftype.OptVerbose
	}
	if finalComma {
		opts |= reftype.OptFinalComma
	}
	if singleDash {
		opts |= reftype.OptSingleDashRange
	}
	if whitespace {
		opts |= reftype.OptWhitespacePad
	}
	if uppercaseTag {
		opts |= reftype.OptUppercaseTags
	}
	param.Options = opts

	collection, err := pipeline.Read(input, inputName, param)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintf(os.Stderr, "parsed %d references\n", collection.Len())

	if err := pipeline.Write(collection, output, param); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	for _, rec := range param.Diag.Records {
		fmt.Fprintln(os.Stderr, rec.String())
	}

	return nil
}
