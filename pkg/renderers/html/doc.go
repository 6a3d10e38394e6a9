// Package html renders bound widgets as a static HTML page. A Document owns
// named slots that satisfy binding.Finder; each slot is a Panel that
// satisfies binding.Container. Rendering reads the widgets' current views,
// so a page rendered after an edit or push shows the new values.
package html
