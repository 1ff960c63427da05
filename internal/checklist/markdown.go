package checklist

import (
	"fmt"
	"strconv"
	"strings"

	"completion-planner/internal/catalog"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
)

// Markdown renders st as a checkbox list: a "# <game>" heading, then one
// "## <section>" heading per section followed by its checks.
func Markdown(c *catalog.Catalog, st State) string {
	var b strings.Builder

	percent, _ := st.Counters.Number(catalog.PercentField)
	fmt.Fprintf(&b, "# %s\n\n", c.Game)
	fmt.Fprintf(&b, "%s: %s%%\n", c.Title, strconv.FormatFloat(percent, 'f', -1, 64))

	for _, sec := range c.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sec.Name)
		for _, chk := range sec.Checks {
			box := CheckboxUnchecked
			if st.Checks[sec.Name][chk.Name] {
				box = CheckboxChecked
			}
			fmt.Fprintf(&b, "%s %s\n", box, chk.Name)
		}
	}
	return b.String()
}

// Markdown renders the current state, see Markdown.
func (e *Engine) Markdown() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Markdown(e.catalog, e.state)
}
