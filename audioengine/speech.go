package audioengine

import (
	"fmt"
	"hash/fnv"
	"os"

	htgotts "github.com/hegedustibor/htgo-tts"
)

// synthesizeSpeech turns text into an MP3 file under dir and returns its
// path. Files are keyed by language and a hash of the text, so repeating a
// demo phrase does not refetch it.
func synthesizeSpeech(dir, text, lang string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("speech cache dir: %w", err)
	}

	h := fnv.New32a()
	h.Write([]byte(text))
	name := fmt.Sprintf("speech-%s-%08x", lang, h.Sum32())

	// CreateSpeechFile appends the .mp3 extension itself.
	cached := fmt.Sprintf("%s/%s.mp3", dir, name)
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	speech := htgotts.Speech{Folder: dir, Language: lang}
	path, err := speech.CreateSpeechFile(text, name)
	if err != nil {
		return "", fmt.Errorf("text-to-speech (%s): %w", lang, err)
	}
	return path, nil
}
