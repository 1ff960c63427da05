package savefile

import (
	"fmt"
	"regexp"
	"strings"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
)

const (
	// Captures indent, checkbox state and text.
	// Example: "  - [x] [Hornet]" -> groups: ["  ", "x", "[Hornet]"]
	CheckboxPattern = `^(\s*)- \[([ xX])\] (.+)$`
	SectionPattern  = `^##\s+(\S+)\s*$`
	GamePattern     = `^#\s+(\S+)\s*$`
)

var (
	checkboxRe = regexp.MustCompile(CheckboxPattern)
	sectionRe  = regexp.MustCompile(SectionPattern)
	gameRe     = regexp.MustCompile(GamePattern)

	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
)

// sanitizeContent removes code blocks before checkbox parsing so examples
// inside them are not taken for checks.
func sanitizeContent(content string) string {
	sanitized := fencedCodeRe.ReplaceAllString(content, "")
	return inlineCodeRe.ReplaceAllString(sanitized, "")
}

// ParseMarkdown reads a checkbox list grouped under "## <section>" headings.
// An optional "# <game>" heading names the game.
func ParseMarkdown(content string) (checklist.SaveFile, error) {
	sf := checklist.SaveFile{Sections: map[string]map[string]bool{}}
	section := ""

	for i, line := range strings.Split(sanitizeContent(content), "\n") {
		line = strings.TrimRight(line, "\r")

		if m := gameRe.FindStringSubmatch(line); m != nil {
			if sf.Game != "" {
				return checklist.SaveFile{}, fmt.Errorf("%w: line %d: second game heading", ErrMalformed, i+1)
			}
			sf.Game = catalog.Game(m[1])
			continue
		}
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			if sf.Sections[section] == nil {
				sf.Sections[section] = map[string]bool{}
			}
			continue
		}

		m := checkboxRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if section == "" {
			return checklist.SaveFile{}, fmt.Errorf("%w: line %d: checkbox outside a section", ErrMalformed, i+1)
		}
		sf.Sections[section][strings.TrimSpace(m[3])] = strings.ToLower(m[2]) == "x"
	}

	return sf, nil
}
