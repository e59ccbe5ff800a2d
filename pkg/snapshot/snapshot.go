// Package snapshot is the save/load format of a panel tree: controller values
// keyed by name and nested folders keyed by title.
//
//	controllers:
//	  speed: 1.5
//	  tint: '#ff00ff'
//	folders:
//	  Physics:
//	    controllers:
//	      gravity: 9.8
//
// There is no version field. Loading matches names and skips everything
// else, which keeps old snapshots usable after controllers are added or
// removed.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tweakpanel/pkg/diff"
	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
)

// Snapshot is the persisted state of one panel or folder.
type Snapshot struct {
	Controllers map[string]any      `json:"controllers" yaml:"controllers"`
	Folders     map[string]Snapshot `json:"folders" yaml:"folders"`
}

// New returns an empty Snapshot with allocated maps.
func New() Snapshot {
	return Snapshot{
		Controllers: make(map[string]any),
		Folders:     make(map[string]Snapshot),
	}
}

// Format selects the encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks YAML for .yaml and .yml paths and JSON otherwise.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Encode serialises s.
func Encode(s Snapshot, format Format) ([]byte, error) {
	s = s.normalized()
	switch format {
	case YAML:
		return yaml.Marshal(s)
	case JSON:
		return json.MarshalIndent(s, "", "  ")
	}
	return nil, fmt.Errorf("snapshot: unknown format %q", format)
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Decode parses data. name labels parse errors.
func Decode(data []byte, format Format, name string) (Snapshot, error) {
	var s Snapshot
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &s)
	case JSON:
		err = json.Unmarshal(data, &s)
	default:
		return Snapshot{}, fmt.Errorf("snapshot: unknown format %q", format)
	}
	if err != nil {
		return Snapshot{}, tperrors.NewParseError(name, extractLine(err), err)
	}
	return s.normalized(), nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// normalized returns s with non-nil maps throughout.
func (s Snapshot) normalized() Snapshot {
	out := Snapshot{Controllers: s.Controllers, Folders: make(map[string]Snapshot, len(s.Folders))}
	if out.Controllers == nil {
		out.Controllers = make(map[string]any)
	}
	for title, folder := range s.Folders {
		out.Folders[title] = folder.normalized()
	}
	return out
}

// ReadFile loads a snapshot, choosing the format from the extension.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, tperrors.NewParseError(path, 0, err)
	}
	return Decode(data, FormatFor(path), path)
}

// WriteFile stores s atomically, choosing the format from the extension.
func WriteFile(path string, s Snapshot) error {
	data, err := Encode(s, FormatFor(path))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Walk visits every controller value with its slash-separated path, in
// sorted order, folders after the controllers of their parent.
func (s Snapshot) Walk(fn func(path string, value any)) {
	s.walk("", fn)
}

func (s Snapshot) walk(prefix string, fn func(string, any)) {
	for _, name := range sortedKeys(s.Controllers) {
		fn(prefix+name, s.Controllers[name])
	}
	for _, title := range sortedKeys(s.Folders) {
		s.Folders[title].walk(prefix+title+"/", fn)
	}
}

// Count returns the number of controller values in s and its folders.
func (s Snapshot) Count() int {
	n := 0
	s.Walk(func(string, any) { n++ })
	return n
}

// Diff renders a unified diff between the YAML forms of a and b. Identical
// snapshots yield an empty string.
func Diff(a, b Snapshot, labelA, labelB string) (string, error) {
	left, err := Encode(a, YAML)
	if err != nil {
		return "", err
	}
	right, err := Encode(b, YAML)
	if err != nil {
		return "", err
	}
	return diff.GenerateUnifiedDiff(left, right, labelA, labelB), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
