package reftype

import (
	_ "embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osu-libraries/bibconv/store"
)

//go:embed genres.yaml
var genresYAML []byte

type genreAuthority struct {
	MARC     []string `yaml:"marc"`
	Bibutils []string `yaml:"bibutils"`
}

var (
	genreOnce sync.Once
	genreData genreAuthority
	genreSets map[string]map[string]bool
)

func loadGenres() {
	genreOnce.Do(func() {
		if err := yaml.Unmarshal(genresYAML, &genreData); err != nil {
			genreData = genreAuthority{}
		}
		genreSets = map[string]map[string]bool{
			"marc":     toSet(genreData.MARC),
			"bibutils": toSet(genreData.Bibutils),
		}
	})
}

func toSet(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[strings.ToLower(v)] = true
	}
	return m
}

// IsKnownGenre reports whether name is a recognised genre string in the
// given authority ("marc" or "bibutils"). The full MARC/bibutils genre
// authority lists are out of scope for this module; callers needing the
// complete list should supply their own authority and consult it through
// this same contract.
func IsKnownGenre(kind, name string) bool {
	loadGenres()
	set, ok := genreSets[strings.ToLower(kind)]
	if !ok {
		return false
	}
	return set[strings.ToLower(name)]
}

// genreTags lists the qualified internal genre tags, in the authority
// priority order a lookup should consult.
var genreTags = []string{"GENRE:MARC", "GENRE:BIBUTILS", "GENRE:UNKNOWN"}

// GenreTag returns the qualified internal tag a genre value should be
// emitted under: GENRE:MARC or GENRE:BIBUTILS when the value is recognised
// by that authority, GENRE:UNKNOWN otherwise. Unknown values are tagged,
// never dropped, so the data survives even when neither authority lists it.
func GenreTag(value string) string {
	switch {
	case IsKnownGenre("marc", value):
		return "GENRE:MARC"
	case IsKnownGenre("bibutils", value):
		return "GENRE:BIBUTILS"
	default:
		return "GENRE:UNKNOWN"
	}
}

// FindGenre looks up a genre value at level across the three qualified
// genre tags, in MARC/bibutils/unknown priority order, returning both the
// value and the tag it was found under.
func FindGenre(ref *store.Reference, level store.Level) (value, tag string) {
	for _, t := range genreTags {
		if v := ref.FindValue(level, t); v != "" {
			return v, t
		}
	}
	return "", ""
}
