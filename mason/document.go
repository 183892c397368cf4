package mason

import "fmt"

// MediaType is the content type of every hypermedia response body.
const MediaType = "application/vnd.mason+json"

// Reserved document keys. Everything else in a Document is resource data.
const (
	ErrorKey      = "@error"
	NamespacesKey = "@namespaces"
	ControlsKey   = "@controls"
	ItemsKey      = "items"
)

// Control describes one available next action: where it points, how to
// invoke it and, for write actions, what the request body must look like.
// A control without a method implies GET.
type Control struct {
	Href     string         `json:"href"`
	Method   string         `json:"method,omitempty"`
	Encoding string         `json:"encoding,omitempty"`
	Title    string         `json:"title,omitempty"`
	Schema   map[string]any `json:"schema,omitempty"`
}

// Document is a Mason response body under construction: resource data
// fields plus the reserved hypermedia keys. Documents are built fresh per
// request and thrown away after serialization.
type Document map[string]any

// New returns a document seeded with the given data fields.
func New(initial map[string]any) Document {
	d := make(Document, len(initial)+2)
	for k, v := range initial {
		d[k] = v
	}
	return d
}

// AddError marks the document as an error response. Error documents are
// sent as the whole body of a failure response and never mix with data
// fields or items meant for success flows.
func (d Document) AddError(title string, details ...string) {
	messages := make([]string, len(details))
	copy(messages, details)
	d[ErrorKey] = map[string]any{
		"@message":  title,
		"@messages": messages,
	}
}

// AddNamespace registers a link-relation namespace. Registering the same
// namespace again overwrites the previous URI.
func (d Document) AddNamespace(namespace, uri string) {
	namespaces, ok := d[NamespacesKey].(map[string]any)
	if !ok {
		namespaces = make(map[string]any)
		d[NamespacesKey] = namespaces
	}
	namespaces[namespace] = map[string]any{
		"name": uri,
	}
}

// AddControl attaches a named control. Adding a control under an existing
// name overwrites it.
func (d Document) AddControl(name string, ctrl Control) {
	d.Controls()[name] = ctrl
}

// AddControlPost attaches a POST control with JSON encoding.
func (d Document) AddControlPost(name, title, href string, schema map[string]any) {
	d.AddControl(name, Control{
		Href:     href,
		Method:   "POST",
		Encoding: "json",
		Title:    title,
		Schema:   schema,
	})
}

// AddControlPut attaches the edit control of the given namespace.
// Name, method and encoding are fixed to "<ns>:edit", PUT and json.
func (d Document) AddControlPut(namespace, title, href string, schema map[string]any) {
	d.AddControl(namespace+":edit", Control{
		Href:     href,
		Method:   "PUT",
		Encoding: "json",
		Title:    title,
		Schema:   schema,
	})
}

// AddControlDelete attaches the delete control of the given namespace.
func (d Document) AddControlDelete(namespace, title, href string) {
	d.AddControl(namespace+":delete", Control{
		Href:   href,
		Method: "DELETE",
		Title:  title,
	})
}

// Controls returns the control map, creating it on first use.
func (d Document) Controls() map[string]Control {
	controls, ok := d[ControlsKey].(map[string]Control)
	if !ok {
		controls = make(map[string]Control)
		d[ControlsKey] = controls
	}
	return controls
}

// Items returns the item list of a collection document.
func (d Document) Items() []Document {
	items, _ := d[ItemsKey].([]Document)
	return items
}

// HasError reports whether the document carries an @error field.
func (d Document) HasError() bool {
	_, ok := d[ErrorKey]
	return ok
}

// AddItem appends an item to the collection and surfaces the item's
// controls on the collection itself. A control whose name is already taken
// on the collection (an item's "self" against the collection's own "self")
// is renamed with the item's ordinal so nothing is silently overwritten.
func (d Document) AddItem(item Document) {
	items := d.Items()
	items = append(items, item)
	d[ItemsKey] = items

	ordinal := len(items)
	parent := d.Controls()
	for name, ctrl := range item.Controls() {
		if _, taken := parent[name]; taken {
			name = fmt.Sprintf("%s-%d", name, ordinal)
		}
		parent[name] = ctrl
	}
}
