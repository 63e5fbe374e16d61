package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Genre is one tag from the closed set of musical styles offered on the
// venue and artist forms.
type Genre string

const (
	GenreAlternative    Genre = "Alternative"
	GenreBlues          Genre = "Blues"
	GenreClassical      Genre = "Classical"
	GenreCountry        Genre = "Country"
	GenreElectronic     Genre = "Electronic"
	GenreFolk           Genre = "Folk"
	GenreFunk           Genre = "Funk"
	GenreHipHop         Genre = "Hip-Hop"
	GenreHeavyMetal     Genre = "Heavy Metal"
	GenreInstrumental   Genre = "Instrumental"
	GenreJazz           Genre = "Jazz"
	GenreMusicalTheatre Genre = "Musical Theatre"
	GenrePop            Genre = "Pop"
	GenrePunk           Genre = "Punk"
	GenreRnB            Genre = "R&B"
	GenreReggae         Genre = "Reggae"
	GenreRockNRoll      Genre = "Rock n Roll"
	GenreSoul           Genre = "Soul"
	GenreOther          Genre = "Other"
)

// AllGenres lists every valid genre in form display order.
var AllGenres = []Genre{
	GenreAlternative,
	GenreBlues,
	GenreClassical,
	GenreCountry,
	GenreElectronic,
	GenreFolk,
	GenreFunk,
	GenreHipHop,
	GenreHeavyMetal,
	GenreInstrumental,
	GenreJazz,
	GenreMusicalTheatre,
	GenrePop,
	GenrePunk,
	GenreRnB,
	GenreReggae,
	GenreRockNRoll,
	GenreSoul,
	GenreOther,
}

var genreSet = func() map[Genre]struct{} {
	m := make(map[Genre]struct{}, len(AllGenres))
	for _, g := range AllGenres {
		m[g] = struct{}{}
	}
	return m
}()

// Valid reports whether g is a member of the closed genre set.
func (g Genre) Valid() bool {
	_, ok := genreSet[g]
	return ok
}

// GenreList is the ordered set of genres attached to a venue or artist.
// The domain layer always works with the typed slice; the comma-joined
// text encoding exists only at the storage boundary below.
type GenreList []Genre

// genreSeparator joins genres in the text column. No genre value contains
// a comma, so the encoding is unambiguous.
const genreSeparator = ","

// Value serializes the list for storage. Values outside the closed set are
// rejected so a malformed row can never be written.
func (l GenreList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(l))
	for _, g := range l {
		if !g.Valid() {
			return nil, fmt.Errorf("unknown genre %q", string(g))
		}
		parts = append(parts, string(g))
	}
	return strings.Join(parts, genreSeparator), nil
}

// Scan decodes the comma-joined column back into a typed list.
func (l *GenreList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into GenreList", src)
	}
	if raw == "" {
		*l = nil
		return nil
	}
	parts := strings.Split(raw, genreSeparator)
	out := make(GenreList, 0, len(parts))
	for _, p := range parts {
		out = append(out, Genre(strings.TrimSpace(p)))
	}
	*l = out
	return nil
}

// ParseGenres converts submitted form values into a GenreList, rejecting
// anything outside the closed set.
func ParseGenres(values []string) (GenreList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(GenreList, 0, len(values))
	for _, v := range values {
		g := Genre(strings.TrimSpace(v))
		if !g.Valid() {
			return nil, fmt.Errorf("unknown genre %q", v)
		}
		out = append(out, g)
	}
	return out, nil
}
