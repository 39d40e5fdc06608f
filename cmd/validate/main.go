// Command validate checks a catalog JSON file: strict decoding, id
// formats, and the structural rules content.Parse enforces.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dmarulanda/atraco/internal/audio"
	"github.com/dmarulanda/atraco/pkg/content"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <catalog.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &CatalogValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog file is valid!")
}

type CatalogValidator struct {
	errors []string
}

func (v *CatalogValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("catalog file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidID(nameWithoutExt) {
		return fmt.Errorf("catalog filename '%s' must be lowercase snake_case (e.g., banco_cali.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	// Strict pass first: unknown fields are authoring mistakes.
	var c content.Catalog
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&c); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("file %s: %w", filename, err)
	}

	v.validateCatalog(&c)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *CatalogValidator) validateCatalog(c *content.Catalog) {
	v.validateIDFormat("entry room", c.Entry)

	for roomKey, room := range c.Rooms {
		v.validateIDFormat("room key", roomKey)

		for dir := range room.Exits {
			if !validDirections[dir] {
				v.addError(fmt.Sprintf("room '%s' has unknown direction '%s'", roomKey, dir))
			}
		}

		if room.Ambient != "" && !strings.HasSuffix(room.Ambient, ".wav") {
			v.addError(fmt.Sprintf("room '%s' ambient cue '%s' should name a .wav asset", roomKey, room.Ambient))
		}
		if room.Narration != nil && room.Narration.Cue != "" && !strings.HasSuffix(room.Narration.Cue, ".wav") {
			v.addError(fmt.Sprintf("room '%s' narration cue '%s' should name a .wav asset", roomKey, room.Narration.Cue))
		}
		// Radio scripts must play the cue registered for their room, or
		// the playback tables and the catalog drift apart.
		if room.Narration != nil && strings.HasPrefix(room.Narration.Cue, "radio_") {
			if want := audio.RadioCue(roomKey); room.Narration.Cue != want {
				v.addError(fmt.Sprintf("room '%s' narration cue '%s' does not match its registered radio cue '%s'", roomKey, room.Narration.Cue, want))
			}
		}
	}

	for _, digit := range c.VaultCode {
		if digit < '0' || digit > '9' {
			v.addError(fmt.Sprintf("vault code '%s' should be numeric", c.VaultCode))
			break
		}
	}
}

func (v *CatalogValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}
	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *CatalogValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validDirections = map[string]bool{
	"norte": true,
	"sur":   true,
	"este":  true,
	"oeste": true,
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
