package main

import (
	"github.com/osu-libraries/bibconv/cmd"

	// Register format plugins.
	_ "github.com/osu-libraries/bibconv/format/ads"
	_ "github.com/osu-libraries/bibconv/format/biblatex"
	_ "github.com/osu-libraries/bibconv/format/bibtex"
	_ "github.com/osu-libraries/bibconv/format/copac"
	_ "github.com/osu-libraries/bibconv/format/ebi"
	_ "github.com/osu-libraries/bibconv/format/endnote"
	_ "github.com/osu-libraries/bibconv/format/endnotexml"
	_ "github.com/osu-libraries/bibconv/format/isi"
	_ "github.com/osu-libraries/bibconv/format/mods"
	_ "github.com/osu-libraries/bibconv/format/nbib"
	_ "github.com/osu-libraries/bibconv/format/ris"
	_ "github.com/osu-libraries/bibconv/format/word"
)

func main() {
	cmd.Execute()
}
