package utils

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeWordlist(t *testing.T, content string) string {
	f, err := ioutil.TempFile("", "wordlist")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func TestWordlistBlocks(t *testing.T) {
	path := writeWordlist(t, "# blocked words\nscam\nspam\n\n")
	w := NewWordlist(path)

	assert.Equal(t, "scam", w.FirstBlockedWord("total SCAM, avoid"))
	assert.Equal(t, "", w.FirstBlockedWord("someone left flowers at the bus stop"))
}

func TestWordlistMatchesWholeTokens(t *testing.T) {
	path := writeWordlist(t, "ham\n")
	w := NewWordlist(path)

	assert.Equal(t, "", w.FirstBlockedWord("thanks for the hamper"), "substrings are not matches")
	assert.Equal(t, "ham", w.FirstBlockedWord("free ham sandwiches!"))
}

func TestWordlistMissingFile(t *testing.T) {
	w := NewWordlist("/nonexistent/wordlist.txt")
	assert.Equal(t, "", w.FirstBlockedWord("anything at all"), "missing list disables moderation")
}

func TestWordlistEmptyPath(t *testing.T) {
	w := NewWordlist("")
	assert.Equal(t, "", w.FirstBlockedWord("anything at all"))
}
