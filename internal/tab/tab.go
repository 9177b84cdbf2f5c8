// Package tab defines the tabs shown by the rotated tab bar.
package tab

// Tab pairs an id, an icon and a label with the content shown while the tab
// is selected. A Tab is immutable once built.
type Tab struct {
	id      int
	icon    Icon
	label   string
	content Content
}

// New creates a tab. build is called once, here.
func New(id int, icon Icon, label string, build func() Content) Tab {
	var content Content
	if build != nil {
		content = build()
	}
	if content == nil {
		content = Text("")
	}
	return Tab{id: id, icon: icon, label: label, content: content}
}

// ID returns the tab's id.
func (t Tab) ID() int { return t.id }

// Icon returns the tab's icon.
func (t Tab) Icon() Icon { return t.icon }

// Label returns the tab's label.
func (t Tab) Label() string { return t.label }

// Content returns the tab's body.
func (t Tab) Content() Content { return t.content }
