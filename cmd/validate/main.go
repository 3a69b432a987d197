package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/craft-engine/pkg/rotation"
)

func main() {
	level := flag.Uint("level", 90, "character level to validate action gates against")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-level N] <rotation.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := flag.Arg(0)
	validator := &RotationValidator{level: uint8(*level)}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Rotation file is valid!")
}

type RotationValidator struct {
	level  uint8
	errors []string
}

func (v *RotationValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("rotation file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidRotationFilename(nameWithoutExt) {
		return fmt.Errorf("rotation filename '%s' must be lowercase snake_case (e.g., my_rotation.json, not my-rotation.json or MyRotation.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var r rotation.Rotation
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&r); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateRotation(&r)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *RotationValidator) validateRotation(r *rotation.Rotation) {
	if len(r.Actions) == 0 {
		v.addError("rotation has no actions")
		return
	}

	for _, problem := range r.Validate(v.level) {
		v.addError(problem)
	}

	if r.Recipe != nil {
		if _, err := r.Recipe.Stats(); err != nil {
			v.addError(fmt.Sprintf("recipe: %v", err))
		}
	}
}

func (v *RotationValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidRotationFilename(name string) bool {
	// Allow 'x.' prefix for experimental rotations
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
