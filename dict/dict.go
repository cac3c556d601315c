package dict

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

//go:embed words.txt
var raw string

// logger receives the one-shot load event; silent unless SetLogger is
// called before the list is first touched.
var logger = zerolog.Nop()

// SetLogger directs the package's diagnostic events to l. The library is
// silent by default; call this before the first Words/Index/Len if the
// load event should be observed.
func SetLogger(l zerolog.Logger) { logger = l }

// load parses the embedded list exactly once per process. The words and
// the text→index lookup are built together so both views always agree.
var load = sync.OnceValues(func() ([]string, map[string]int) {
	words := strings.Fields(raw)
	index := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := index[w]; !ok {
			index[w] = i
		}
	}
	logger.Debug().Int("words", len(words)).Msg("dict: built-in word list loaded")

	return words, index
})

// Words returns the built-in word list in its embedded order.
// The returned slice is shared by every caller and must not be mutated.
func Words() []string {
	words, _ := load()

	return words
}

// Index returns the list position of word (first occurrence, exact
// case-sensitive match) and whether word is in the list at all.
func Index(word string) (int, bool) {
	_, index := load()
	i, ok := index[word]

	return i, ok
}

// Len returns the number of words in the built-in list.
func Len() int {
	return len(Words())
}
