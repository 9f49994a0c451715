package utils

import (
	"bufio"
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Wordlist is a case-insensitive blocked-word list used to screen post
// messages before they are saved.
type Wordlist struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewWordlist loads the blocked-word file, one word per line, '#' comments
// allowed. Loading is best-effort: a missing or unreadable file yields an
// empty list and moderation silently passes everything.
func NewWordlist(filePath string) *Wordlist {
	w := &Wordlist{words: map[string]struct{}{}}

	if filePath == "" {
		return w
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "moderation",
			"path":   filePath,
			"error":  err,
		}).Warn("wordlist unavailable, moderation disabled")
		return w
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		w.words[strings.ToLower(word)] = struct{}{}
	}

	log.WithFields(log.Fields{
		"prefix": "moderation",
		"words":  len(w.words),
	}).Info("loaded blocked-word list")

	return w
}

// FirstBlockedWord returns the first blocked word found in the message, or
// an empty string when the message is clean.
func (w *Wordlist) FirstBlockedWord(message string) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if len(w.words) == 0 {
		return ""
	}

	for _, token := range strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if _, blocked := w.words[token]; blocked {
			return token
		}
	}

	return ""
}
