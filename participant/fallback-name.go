package participant

import (
	"fmt"
	"hash/fnv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackName synthesizes a display name for a participant without one on
// file. The name is a pure function of (id, locale): the generator is seeded
// with a hash of both, so entries are never unnamed and fixtures stay stable
// across runs.
func FallbackName(id uuid.UUID, locale string) string {
	h := fnv.New64a()
	h.Write([]byte(locale))
	h.Write(id[:])

	faker := gofakeit.New(h.Sum64())

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	title := cases.Title(tag)
	return fmt.Sprintf("%s %s", title.String(faker.AdjectiveDescriptive()), title.String(faker.Animal()))
}
